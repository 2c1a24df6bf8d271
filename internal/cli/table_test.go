package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTableAlignsColumns(t *testing.T) {
	var out bytes.Buffer
	err := writeTable(&out, []string{"PID", "PORT"}, [][]string{
		{"1", "9222"},
		{"12345", "9223"},
	})
	if err != nil {
		t.Fatalf("write table: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "PID") {
		t.Fatalf("unexpected header line: %q", lines[0])
	}

	// PORT values line up under the PORT header.
	headerCol := strings.Index(lines[0], "PORT")
	for _, line := range lines[1:] {
		if strings.Index(line, "92") != headerCol {
			t.Errorf("misaligned row: %q", line)
		}
	}
}

func TestWriteTableEmptyIsNoOp(t *testing.T) {
	var out bytes.Buffer
	if err := writeTable(&out, nil, nil); err != nil {
		t.Fatalf("write table: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
