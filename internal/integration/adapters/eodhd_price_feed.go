package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// DefaultEODHDBaseURL is the public EODHD API root.
const DefaultEODHDBaseURL = "https://eodhd.com/api"

// EODHDPriceFeed implements adapter.PriceFeed with the EODHD real-time API.
type EODHDPriceFeed struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ adapter.PriceFeed = (*EODHDPriceFeed)(nil)

// NewEODHDPriceFeed creates a new price feed instance.
func NewEODHDPriceFeed(apiKey, baseURL string, timeout time.Duration) *EODHDPriceFeed {
	if baseURL == "" {
		baseURL = DefaultEODHDBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EODHDPriceFeed{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// realTimeQuote is the subset of the real-time response we read. close is
// "NA" when the exchange has no quote.
type realTimeQuote struct {
	Code      string          `json:"code"`
	Timestamp int64           `json:"timestamp"`
	Close     json.RawMessage `json:"close"`
}

// Ticker returns the EODHD ticker for symbol.
func Ticker(symbol string, assetType entity.AssetType) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if assetType == entity.AssetTypeCrypto {
		return symbol + "-USD.CC"
	}
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + ".US"
}

// FetchPrice returns the latest close for symbol.
func (f *EODHDPriceFeed) FetchPrice(ctx context.Context, symbol string, assetType entity.AssetType) (*entity.PriceQuote, error) {
	if f.apiKey == "" {
		return nil, domainerror.NewPriceFeedError(
			domainerror.ErrCodePriceFeedNotConfigured,
			symbol,
			"price feed is not configured",
			false,
			domainerror.ErrPriceFeedNotConfigured,
		)
	}

	addr := fmt.Sprintf("%s/real-time/%s?%s", f.baseURL, url.PathEscape(Ticker(symbol, assetType)), url.Values{
		"api_token": {f.apiKey},
		"fmt":       {"json"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, domainerror.NewPriceFeedError(domainerror.ErrCodePriceFeedRequestFailed, symbol, "cannot build request", false, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domainerror.NewPriceFeedError(domainerror.ErrCodePriceFeedRequestFailed, symbol, "price request failed", true, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
		return nil, domainerror.NewPriceFeedError(
			domainerror.ErrCodePriceFeedRequestFailed,
			symbol,
			fmt.Sprintf("cannot http GET %v: %v", req.URL.Path, resp.Status),
			retryable,
			nil,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerror.NewPriceFeedError(domainerror.ErrCodePriceFeedRequestFailed, symbol, "cannot read response", true, err)
	}

	var quote realTimeQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, domainerror.NewPriceFeedError(domainerror.ErrCodePriceUnavailable, symbol, "unreadable response", false, err)
	}

	price, err := decimal.NewFromString(strings.Trim(string(quote.Close), `"`))
	if err != nil || price.IsNegative() {
		return nil, domainerror.NewPriceFeedError(
			domainerror.ErrCodePriceUnavailable,
			symbol,
			"no price available",
			false,
			domainerror.ErrPriceUnavailable,
		)
	}

	fetchedAt := time.Now()
	if quote.Timestamp > 0 {
		fetchedAt = time.Unix(quote.Timestamp, 0)
	}

	return &entity.PriceQuote{
		Symbol:    symbol,
		Price:     price,
		FetchedAt: fetchedAt,
	}, nil
}
