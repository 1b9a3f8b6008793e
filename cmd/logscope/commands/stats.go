package commands

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var after, before string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize entries and per-task attempts and completions",
		// Short: 汇总条目及各任务的尝试与完成次数
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			rng, err := s.timeRange(after, before)
			if err != nil {
				return err
			}
			p, err := s.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			p.summary(s.engine.Summary(rng))
			p.rule()
			p.tasks("Attempts", s.engine.AttemptsPerTask(rng))
			p.tasks("Completions", s.engine.CompletionsPerTask(rng))
			return nil
		},
	}
	cmd.Flags().StringVar(&after, "after", "", "Inclusive lower bound, dd.mm.yyyy HH:MM:SS")
	cmd.Flags().StringVar(&before, "before", "", "Inclusive upper bound, dd.mm.yyyy HH:MM:SS")
	return cmd
}
