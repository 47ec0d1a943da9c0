package commands

import (
	"github.com/spf13/cobra"

	"github.com/finance-tracker/smartfinance/internal/infra/dependency"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

func newStatsCommand(a *app) *cobra.Command {
	var query dto.StatsQuery

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print transaction statistics as JSON",
		Long:  "Print income, expense and category totals. Without --start and --end the current month is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withInjector(cmd.Context(), func(injector *dependency.Injector) error {
				window, err := query.ToRange(injector.Clock.Now())
				if err != nil {
					return err
				}

				stats, err := injector.Ledger.Stats(window)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.ToTransactionStatsResponse(stats))
			})
		},
	}

	cmd.Flags().StringVar(&query.StartDate, "start", "", "window start (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&query.EndDate, "end", "", "window end (YYYY-MM-DD or RFC3339)")

	return cmd
}
