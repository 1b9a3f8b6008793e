package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/logscope/internal/config"
	"github.com/livp123/logscope/internal/runtime"
	"github.com/livp123/logscope/internal/utils/fileutil"
	"github.com/livp123/logscope/internal/utils/logger"
)

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration file",
		// Short: 写入默认配置文件
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: skipSetup,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigPath
			switch {
			case len(args) == 1:
				path = args[0]
			case runtime.ConfigPath != "":
				path = runtime.ConfigPath
			}

			if fileutil.Exists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := fileutil.AtomicWriteFile(path, []byte(config.DefaultConfigTemplate), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Get(cmd.Context()).Infof("[INIT] wrote %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
