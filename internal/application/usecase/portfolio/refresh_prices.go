package portfolio

import (
	"context"
	"errors"
	"log/slog"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// RefreshPrices fetches a price for every asset from feed and applies each
// success through UpdatePrice. Failures are returned joined as
// *domainerror.PriceFeedError values; the refresh time is recorded either way.
// The core never retries a failed lookup.
func (t *Tracker) RefreshPrices(ctx context.Context, feed adapter.PriceFeed) (int, error) {
	var errs []error
	updated := 0

	for _, asset := range t.All() {
		quote, err := feed.FetchPrice(ctx, asset.Symbol, asset.Type)
		if err != nil {
			errs = append(errs, asPriceFeedError(asset.Symbol, err))
			slog.Warn("Failed to fetch price", "symbol", asset.Symbol, "error", err)
			continue
		}

		result, err := t.UpdatePrice(ctx, asset.ID, quote.Price)
		if err != nil {
			errs = append(errs, domainerror.NewPriceFeedError(
				domainerror.ErrCodePriceUnavailable,
				asset.Symbol,
				"feed returned an unusable price",
				false,
				err,
			))
			continue
		}
		if result != nil {
			updated++
		}
	}

	now := t.clock.Now()
	t.mu.Lock()
	t.lastUpdated = &now
	t.repo.SaveLastUpdated(ctx, now)
	t.mu.Unlock()

	slog.Info("Portfolio prices refreshed", "updated", updated, "failed", len(errs))

	return updated, errors.Join(errs...)
}

func asPriceFeedError(symbol string, err error) error {
	var feedErr *domainerror.PriceFeedError
	if errors.As(err, &feedErr) {
		return feedErr
	}
	return domainerror.NewPriceFeedError(
		domainerror.ErrCodePriceFeedRequestFailed,
		symbol,
		"price request failed",
		true,
		err,
	)
}
