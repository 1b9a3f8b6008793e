package commands

import (
	"github.com/spf13/cobra"

	"github.com/livp123/logscope/internal/query"
)

func newSelectCmd() *cobra.Command {
	var where, after, before string
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Print entries matching a filter expression",
		// Short: 打印匹配过滤表达式的条目
		Long: `Print entries matching an expression over IP, User, Event, Status, Task,
HasTask, Date and HasDate. Helpers: InCIDR(cidr), Like(s, "pat*"), Contains(s, sub).`,
		Example: `  logscope select --where 'Event == "LOGIN" && InCIDR("10.0.0.0/8")'
  logscope select --where 'Like(User, "Vasya*")' --after "01.01.2028 00:00:00"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := query.CompileFilter(where)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			rng, err := s.timeRange(after, before)
			if err != nil {
				return err
			}
			entries, err := s.engine.Select(f, rng)
			if err != nil {
				return err
			}

			p, err := s.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, e := range entries {
				p.entry(e)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&where, "where", "w", "", "Filter expression (default: every entry)")
	cmd.Flags().StringVar(&after, "after", "", "Inclusive lower bound, dd.mm.yyyy HH:MM:SS")
	cmd.Flags().StringVar(&before, "before", "", "Inclusive upper bound, dd.mm.yyyy HH:MM:SS")
	return cmd
}
