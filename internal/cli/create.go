package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tOgg1/chromectl/internal/config"
	"github.com/tOgg1/chromectl/internal/provision"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create START END DIR",
		Short: "Provision data directories and launcher scripts",
		Long: "Create one isolated data directory and one executable launcher script per\n" +
			"instance index in START..END under DIR. Each script starts Chrome with its\n" +
			"own user data directory and remote debugging port.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid START %q: %w", args[0], err)
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid END %q: %w", args[1], err)
			}
			baseDir := config.ExpandTilde(args[2])

			opts := provision.Options{
				ChromePath:    appConfig.Chrome.BinaryPath,
				BaseDebugPort: appConfig.Provision.BaseDebugPort,
				ScriptPrefix:  appConfig.Provision.ScriptPrefix,
			}
			return provision.Create(opts, start, end, baseDir, cmd.OutOrStdout())
		},
	}
}
