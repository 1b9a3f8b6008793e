package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/livp123/logscope/internal/config"
	"github.com/livp123/logscope/internal/metrics"
	"github.com/livp123/logscope/internal/runtime"
	"github.com/livp123/logscope/internal/utils/logger"
)

// RootCmd is the logscope command tree used by Execute.
var RootCmd = NewRootCmd()

// NewRootCmd builds a fresh command tree. Flag variables are reset to their
// defaults each time.
// NewRootCmd 构建新的命令树，标志变量会被重置为默认值。
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "logscope",
		Short: "Query structured event logs",
		// Short: 查询结构化事件日志
		Long: `logscope ingests event log files into memory and answers queries over
origin, user, date, event and status, optionally bounded to a time range.
logscope 将事件日志导入内存，并按来源、用户、日期、事件和状态进行查询。`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()
			cfg := configFrom(cmd.Context())
			if cfg == nil || !cfg.Metrics.TextfileEnabled {
				return nil
			}
			return metrics.WriteTextfile(cfg.Metrics.TextfilePath)
		},
	}

	// Config file path
	// 配置文件路径
	root.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	// Ingest overrides
	// 导入参数覆盖
	root.PersistentFlags().StringVar(&runtime.Root, "root", "", "Directory to scan for log files (overrides ingest.root)")
	root.PersistentFlags().StringVar(&runtime.Pattern, "pattern", "", "Doublestar glob relative to root (overrides ingest.pattern)")

	root.AddCommand(newInitCmd())
	root.AddCommand(newIngestCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newSelectCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newVersionCmd())

	root.CompletionOptions.DisableDescriptions = true
	return root
}

// setup loads the configuration, initializes logging and injects both into
// the command context.
// setup 加载配置、初始化日志，并将二者注入命令 Context。
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging); err != nil {
		return err
	}

	ctx := logger.WithContext(cmd.Context(), logger.Global())
	ctx = withConfig(ctx, cfg)
	cmd.SetContext(ctx)
	return nil
}

// skipSetup is used by commands that must run without a valid configuration.
func skipSetup(cmd *cobra.Command, args []string) error {
	cmd.SetContext(logger.WithContext(cmd.Context(), logger.Global()))
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
