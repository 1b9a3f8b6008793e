package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/logscope/internal/ql"
	"github.com/livp123/logscope/internal/utils/fileutil"
)

func newQueryCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   `query "<statement>"...`,
		Short: "Run query language statements",
		// Short: 执行查询语句
		Long: `Run one or more statements of the form

  get <field> [for <field> = "<value>" [and date between "<after>" and "<before>"]]

where <field> is one of ip, user, date, event, status. Dates use dd.mm.yyyy HH:MM:SS.
A declined statement is reported and the next one still runs.`,
		Example: `  logscope query 'get ip for user = "Amigo"'
  logscope query --file queries.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			statements := append([]string{}, args...)
			if file != "" {
				lines, err := fileutil.ReadStatements(file)
				if err != nil {
					return err
				}
				statements = append(statements, lines...)
			}
			if len(statements) == 0 {
				return fmt.Errorf("no statements given")
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			p, err := s.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			in := ql.NewInterpreter(s.engine, s.parser)
			declined := 0
			for i, stmt := range statements {
				if len(statements) > 1 {
					if i > 0 {
						p.rule()
					}
					fmt.Fprintf(p.w, "> %s\n", stmt)
				}
				res, err := in.ExecuteContext(cmd.Context(), stmt)
				if err != nil {
					declined++
					fmt.Fprintf(cmd.ErrOrStderr(), "declined: %s: %v\n", stmt, err)
					continue
				}
				p.values(res)
			}
			if declined > 0 {
				return fmt.Errorf("%d of %d statements declined", declined, len(statements))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read statements from a file, one per line")
	return cmd
}
