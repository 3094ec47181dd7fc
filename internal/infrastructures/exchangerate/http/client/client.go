package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/exchangerate/dto"
	"github.com/tripdeck/concierge/internal/secrets"
)

// KeyVariable names the environment secret for the exchange-rate provider.
const KeyVariable = "EXCHANGE_RATE_API_KEY"

// genericFailure is the only failure text this client ever returns for a
// transport problem. The real error would carry the request URL, and the URL
// embeds the API key as a path segment, so the original is discarded.
const genericFailure = "currency conversion request failed; verify currency codes and try again"

// Client converts amounts through the exchange-rate provider. The key rides
// in the URL path, which makes every failure path here credential-bearing:
// no upstream error detail may reach the returned error.
type Client struct {
	baseURL    string
	resolver   secrets.Resolver
	httpClient *http.Client
}

func NewClient(baseURL string, resolver secrets.Resolver, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://v6.exchangerate-api.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		resolver:   resolver,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Convert(ctx context.Context, params models.CurrencyParams) (models.CurrencyConversion, error) {
	if err := params.Validate(); err != nil {
		return models.CurrencyConversion{}, err
	}

	key, err := c.resolver.Resolve(KeyVariable)
	if err != nil {
		return models.CurrencyConversion{}, err
	}

	from := strings.ToUpper(strings.TrimSpace(params.FromCurrency))
	to := strings.ToUpper(strings.TrimSpace(params.ToCurrency))
	reqURL := fmt.Sprintf("%s/v6/%s/pair/%s/%s", c.baseURL, key, from, to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.CurrencyConversion{}, fmt.Errorf("%w: %s", derr.ErrSourceUnavailable, genericFailure)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.CurrencyConversion{}, fmt.Errorf("%w: %s", derr.ErrSourceUnavailable, genericFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.CurrencyConversion{}, fmt.Errorf("%w: %s", derr.ErrSourceUnavailable, genericFailure)
	}

	var payload dto.PairConversionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.CurrencyConversion{}, fmt.Errorf("%w: %s", derr.ErrProviderPayload, genericFailure)
	}

	if payload.Result != "success" || payload.ConversionRate <= 0 {
		return models.CurrencyConversion{}, fmt.Errorf("%w: %s", derr.ErrProviderPayload, genericFailure)
	}

	return models.CurrencyConversion{
		Provider:        models.ProviderExchangeRate,
		FromCurrency:    from,
		ToCurrency:      to,
		Amount:          params.Amount,
		ExchangeRate:    payload.ConversionRate,
		ConvertedAmount: roundCents(params.Amount * payload.ConversionRate),
		SearchTimestamp: time.Now().UTC(),
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
