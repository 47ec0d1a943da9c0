package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/smartfinance/internal/infra/dependency"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

func newCategorizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <description>",
		Short: "Suggest a category for a transaction description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInjector(cmd.Context(), func(injector *dependency.Injector) error {
				result, err := injector.Categorization.Categorize(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.ToCategorizeResponse(result))
			})
		},
	}
}

func newCacheCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the categorization cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "evict",
		Short: "Remove expired categorization cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withInjector(cmd.Context(), func(injector *dependency.Injector) error {
				evicted := injector.Cache.EvictExpired(cmd.Context())
				return writeJSON(cmd.OutOrStdout(), dto.EvictCacheResponse{
					Evicted:   evicted,
					Remaining: injector.Cache.Len(),
				})
			})
		},
	})

	return cmd
}
