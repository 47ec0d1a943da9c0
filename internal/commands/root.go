// Package commands implements the smartfinance command line.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/smartfinance/config"
	"github.com/finance-tracker/smartfinance/internal/buildinfo"
	"github.com/finance-tracker/smartfinance/internal/infra/dependency"
)

// app carries what every subcommand needs to build the component graph.
type app struct {
	cfg  *config.Config
	opts []dependency.Option
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// opts are forwarded to every injector the subcommands build.
func NewRootCommand(cfg *config.Config, opts ...dependency.Option) *cobra.Command {
	a := &app{cfg: cfg, opts: opts}

	rootCmd := &cobra.Command{
		Use:     "smartfinance",
		Short:   "Personal finance tracking with budgets, goals and portfolio",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCommand(a),
		newStatsCommand(a),
		newBudgetsCommand(a),
		newCacheCommand(a),
		newCategorizeCommand(a),
	)

	return rootCmd
}

// withInjector builds the components, runs fn and releases the storage.
func (a *app) withInjector(ctx context.Context, fn func(*dependency.Injector) error) error {
	injector, err := dependency.NewInjector(ctx, a.cfg, a.opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := injector.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	return fn(injector)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
