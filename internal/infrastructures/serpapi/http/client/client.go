package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/serpapi/dto"
	"github.com/tripdeck/concierge/internal/infrastructures/serpapi/mappers"
	"github.com/tripdeck/concierge/internal/sanitize"
	"github.com/tripdeck/concierge/internal/secrets"
)

// KeyVariable names the environment secret for the consumer search provider.
const KeyVariable = "SERPAPI_KEY"

// Client issues signed, stateless requests against the consumer search
// aggregator. Each call is independent; the key is resolved lazily so a
// missing credential surfaces only when the provider is actually used.
type Client struct {
	baseURL    string
	resolver   secrets.Resolver
	httpClient *http.Client
}

func NewClient(baseURL string, resolver secrets.Resolver, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://serpapi.com"
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

func (c *Client) SearchFlights(ctx context.Context, params models.FlightSearchParams) (models.FlightResult, error) {
	if err := params.Validate(); err != nil {
		return models.FlightResult{}, err
	}

	q := url.Values{}
	q.Set("engine", "google_flights")
	q.Set("departure_id", strings.ToUpper(strings.TrimSpace(params.DepartureID)))
	q.Set("arrival_id", strings.ToUpper(strings.TrimSpace(params.ArrivalID)))
	q.Set("outbound_date", params.OutboundDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("children", strconv.Itoa(params.Children))
	q.Set("infants_in_seat", strconv.Itoa(params.InfantsInSeat))
	q.Set("infants_on_lap", strconv.Itoa(params.InfantsOnLap))
	q.Set("travel_class", strconv.Itoa(params.TravelClass))
	q.Set("currency", strings.ToUpper(params.Currency))
	q.Set("hl", orDefault(params.Language, "en"))
	q.Set("gl", orDefault(params.Country, "us"))
	q.Set("emissions", "1")
	if strings.TrimSpace(params.ReturnDate) != "" {
		q.Set("type", "1")
		q.Set("return_date", params.ReturnDate)
	} else {
		q.Set("type", "2")
	}

	var payload dto.FlightSearchResponse
	if err := c.do(ctx, q, &payload); err != nil {
		return models.FlightResult{}, err
	}
	if payload.Error != "" {
		return models.FlightResult{}, fmt.Errorf("%w: consumer search rejected the flight query", derr.ErrProviderPayload)
	}

	return mappers.MapFlightResult(payload, params.Currency, params.MaxResults, time.Now().UTC()), nil
}

func (c *Client) SearchHotels(ctx context.Context, params models.HotelSearchParams) (models.HotelResult, error) {
	if err := params.Validate(); err != nil {
		return models.HotelResult{}, err
	}

	q := url.Values{}
	q.Set("engine", "google_hotels")
	q.Set("q", strings.TrimSpace(params.Location))
	q.Set("check_in_date", params.CheckInDate)
	q.Set("check_out_date", params.CheckOutDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("children", strconv.Itoa(params.Children))
	q.Set("currency", strings.ToUpper(params.Currency))
	q.Set("hl", orDefault(params.Language, "en"))
	q.Set("gl", orDefault(params.Country, "us"))
	if len(params.ChildrenAges) > 0 {
		q.Set("children_ages", joinInts(params.ChildrenAges))
	}
	if params.SortBy > 0 {
		q.Set("sort_by", strconv.Itoa(params.SortBy))
	}
	if len(params.HotelClass) > 0 {
		q.Set("hotel_class", joinInts(params.HotelClass))
	}
	if params.FreeCancellation {
		q.Set("free_cancellation", "true")
	}
	if params.VacationRentals {
		q.Set("vacation_rentals", "true")
	}

	var payload dto.HotelSearchResponse
	if err := c.do(ctx, q, &payload); err != nil {
		return models.HotelResult{}, err
	}
	if payload.Error != "" {
		return models.HotelResult{}, fmt.Errorf("%w: consumer search rejected the hotel query", derr.ErrProviderPayload)
	}

	return mappers.MapHotelResult(payload, params.Currency, params.MaxResults, time.Now().UTC()), nil
}

func (c *Client) SearchEvents(ctx context.Context, params models.EventSearchParams) (models.EventResult, error) {
	if err := params.Validate(); err != nil {
		return models.EventResult{}, err
	}

	query := strings.TrimSpace(params.Query)
	if strings.TrimSpace(params.Location) != "" {
		query += " in " + strings.TrimSpace(params.Location)
	}

	q := url.Values{}
	q.Set("engine", "google_events")
	q.Set("q", query)
	q.Set("hl", orDefault(params.Language, "en"))
	q.Set("gl", orDefault(params.Country, "us"))
	if params.DateFilter != "" {
		q.Set("htichips", "date:"+params.DateFilter)
	}

	var payload dto.EventSearchResponse
	if err := c.do(ctx, q, &payload); err != nil {
		return models.EventResult{}, err
	}
	if payload.Error != "" {
		return models.EventResult{}, fmt.Errorf("%w: consumer search rejected the event query", derr.ErrProviderPayload)
	}

	return mappers.MapEventResult(payload, params.MaxResults, time.Now().UTC()), nil
}

// do signs the query with the resolved key and decodes the response. Error
// text never carries the raw request URL; it passes the sanitizer first.
func (c *Client) do(ctx context.Context, q url.Values, out any) error {
	key, err := c.resolver.Resolve(KeyVariable)
	if err != nil {
		return err
	}
	q.Set("api_key", key)

	reqURL := c.baseURL + "/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: consumer search request to %s failed", derr.ErrSourceUnavailable, sanitize.URL(reqURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: consumer search status %s", derr.ErrSourceUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode consumer search response", derr.ErrProviderPayload)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}
