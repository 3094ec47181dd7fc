package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/nominatim/dto"
	"github.com/tripdeck/concierge/internal/sanitize"
)

// Client geocodes through a shared-fair-use lookup service. A single gate
// spaces out requests so the upstream minimum inter-call interval holds even
// when callers are concurrent.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client

	gateMu   sync.Mutex
	lastCall time.Time
	spacing  time.Duration
}

func NewClient(baseURL string, spacing, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	if spacing <= 0 {
		spacing = time.Second
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  fmt.Sprintf("trip-concierge/%s", uuid.NewString()),
		httpClient: &http.Client{Timeout: timeout},
		spacing:    spacing,
	}
}

func (c *Client) Geocode(ctx context.Context, params models.GeocodeParams) (models.GeocodeResult, error) {
	if err := params.Validate(); err != nil {
		return models.GeocodeResult{}, err
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("q", strings.TrimSpace(params.Location))
	q.Set("accept-language", orDefault(params.Language, "en"))
	q.Set("addressdetails", "1")
	if params.ExactlyOne {
		q.Set("limit", "1")
	} else {
		q.Set("limit", "10")
	}
	if params.CountryCodes != "" {
		q.Set("countrycodes", strings.ToLower(params.CountryCodes))
	}

	var places []dto.Place
	if err := c.do(ctx, "/search", q, &places); err != nil {
		return models.GeocodeResult{}, err
	}
	if len(places) == 0 {
		return models.GeocodeResult{}, fmt.Errorf("%w: location %q", derr.ErrNotFound, params.Location)
	}

	result := models.GeocodeResult{
		Provider:        models.ProviderNominatim,
		Location:        params.Location,
		Matches:         make([]models.GeocodeMatch, 0, len(places)),
		SearchTimestamp: time.Now().UTC(),
	}
	for _, place := range places {
		lat, latErr := strconv.ParseFloat(place.Lat, 64)
		lon, lonErr := strconv.ParseFloat(place.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		result.Matches = append(result.Matches, models.GeocodeMatch{
			Latitude:    lat,
			Longitude:   lon,
			Address:     place.DisplayName,
			BoundingBox: parseBoundingBox(place.BoundingBox),
		})
	}
	if len(result.Matches) == 0 {
		return models.GeocodeResult{}, fmt.Errorf("%w: geocoder returned no usable coordinates", derr.ErrProviderPayload)
	}
	return result, nil
}

func (c *Client) ReverseGeocode(ctx context.Context, params models.ReverseGeocodeParams) (models.ReverseGeocodeResult, error) {
	if err := params.Validate(); err != nil {
		return models.ReverseGeocodeResult{}, err
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	q.Set("accept-language", orDefault(params.Language, "en"))

	var place dto.ReversePlace
	if err := c.do(ctx, "/reverse", q, &place); err != nil {
		return models.ReverseGeocodeResult{}, err
	}
	if place.Error != "" || strings.TrimSpace(place.DisplayName) == "" {
		return models.ReverseGeocodeResult{}, fmt.Errorf("%w: no location at %v, %v", derr.ErrNotFound, params.Latitude, params.Longitude)
	}

	return models.ReverseGeocodeResult{
		Provider:        models.ProviderNominatim,
		Latitude:        params.Latitude,
		Longitude:       params.Longitude,
		Address:         place.DisplayName,
		SearchTimestamp: time.Now().UTC(),
	}, nil
}

func (c *Client) do(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.waitTurn(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: geocoding request to %s failed", derr.ErrSourceUnavailable, sanitize.URL(reqURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: geocoder status %s", derr.ErrSourceUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode geocoder response", derr.ErrProviderPayload)
	}
	return nil
}

// waitTurn serializes callers through the rate gate. Each caller reserves its
// slot before sleeping so concurrent calls stay spaced apart.
func (c *Client) waitTurn(ctx context.Context) error {
	c.gateMu.Lock()
	now := time.Now()
	next := c.lastCall.Add(c.spacing)
	if next.Before(now) {
		next = now
	}
	c.lastCall = next
	c.gateMu.Unlock()

	wait := time.Until(next)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parseBoundingBox(values []string) *models.BoundingBox {
	if len(values) != 4 {
		return nil
	}
	south, err1 := strconv.ParseFloat(values[0], 64)
	north, err2 := strconv.ParseFloat(values[1], 64)
	west, err3 := strconv.ParseFloat(values[2], 64)
	east, err4 := strconv.ParseFloat(values[3], 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil
	}
	return &models.BoundingBox{South: south, North: north, West: west, East: east}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
