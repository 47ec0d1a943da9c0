package commands

import (
	"github.com/spf13/cobra"

	"github.com/finance-tracker/smartfinance/internal/infra/dependency"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

func newBudgetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budgets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "recompute",
		Short: "Recompute budget spending from the ledger and print the budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withInjector(cmd.Context(), func(injector *dependency.Injector) error {
				budgets := injector.Budgets.RecomputeSpending(cmd.Context())
				return writeJSON(cmd.OutOrStdout(), dto.ToBudgetListResponse(budgets))
			})
		},
	})

	return cmd
}
