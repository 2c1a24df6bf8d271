package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tOgg1/chromectl/internal/chromeproc"
	"github.com/tOgg1/chromectl/internal/logging"
	"github.com/tOgg1/chromectl/internal/window"
)

// Swappable for tests.
var (
	listInstancesFunc = chromeproc.List
	newAutomatorFunc  = func(appName string) window.Automator {
		return &window.OsascriptAutomator{AppName: appName}
	}
)

func newArrangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arrange COLUMNS",
		Short: "Grid-arrange running managed Chrome windows",
		Long: "Tile all open windows of managed Chrome instances into a grid with the\n" +
			"given number of columns. Does nothing when no managed instance is running.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid COLUMNS %q: %w", args[0], err)
			}
			if columns < 1 {
				return fmt.Errorf("%w: %d", window.ErrInvalidColumns, columns)
			}

			instances, err := listInstancesFunc(appConfig.Chrome.ProcessName)
			if err != nil {
				return fmt.Errorf("failed to list Chrome processes: %w", err)
			}
			if len(instances) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no managed Chrome instances running, nothing to arrange")
				return nil
			}

			grid := window.Grid{
				Columns:    columns,
				CellWidth:  appConfig.Grid.CellWidth,
				CellHeight: appConfig.Grid.CellHeight,
			}
			if err := window.ArrangeGrid(newAutomatorFunc(appConfig.Chrome.AppName), grid); err != nil {
				if errors.Is(err, window.ErrInvalidColumns) {
					return err
				}
				// Automation denial or a vanished window must not undo a
				// provisioning step that already succeeded.
				logging.Warn().Err(err).Msg("window arrangement failed")
				return nil
			}
			return nil
		},
	}
}
