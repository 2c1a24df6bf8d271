package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List running managed Chrome instances",
		Long:  "Show a point-in-time snapshot of Chrome processes started by a chromectl launcher script.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			instances, err := listInstancesFunc(appConfig.Chrome.ProcessName)
			if err != nil {
				return fmt.Errorf("failed to list Chrome processes: %w", err)
			}
			if len(instances) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no managed Chrome instances running")
				return nil
			}

			rows := make([][]string, 0, len(instances))
			for _, in := range instances {
				port := in.DebugPort()
				if port == "" {
					port = "-"
				}
				rows = append(rows, []string{
					strconv.Itoa(int(in.PID)),
					port,
					in.DataDir(),
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"PID", "PORT", "DATA DIR"}, rows)
		},
	}
}
