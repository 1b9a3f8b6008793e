package commands

import (
	"github.com/spf13/cobra"
)

func newIngestCmd() *cobra.Command {
	var failures bool
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest the log root and print the ingestion report",
		// Short: 导入日志目录并打印导入报告
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			p, err := s.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			p.report(s.report, failures)
			return nil
		},
	}
	cmd.Flags().BoolVar(&failures, "failures", false, "List every rejected and undated line")
	return cmd
}
