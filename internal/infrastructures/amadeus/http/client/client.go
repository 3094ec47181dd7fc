package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/amadeus/dto"
	"github.com/tripdeck/concierge/internal/infrastructures/amadeus/mappers"
	"github.com/tripdeck/concierge/internal/sanitize"
)

// Client calls the distribution system over its authenticated session. A
// request rejected with 401 is retried exactly once after a forced refresh;
// all other failures surface immediately.
type Client struct {
	session    *Session
	httpClient *http.Client
}

func NewClient(session *Session, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		session:    session,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) SearchFlightOffers(ctx context.Context, params models.GDSFlightSearchParams, access *models.AccessibilityRequest) (models.FlightResult, error) {
	if err := params.Validate(); err != nil {
		return models.FlightResult{}, err
	}

	q := url.Values{}
	q.Set("originLocationCode", strings.ToUpper(strings.TrimSpace(params.OriginLocationCode)))
	q.Set("destinationLocationCode", strings.ToUpper(strings.TrimSpace(params.DestinationLocationCode)))
	q.Set("departureDate", params.DepartureDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("max", strconv.Itoa(params.Max))
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	if params.Children > 0 {
		q.Set("children", strconv.Itoa(params.Children))
	}
	if params.Infants > 0 {
		q.Set("infants", strconv.Itoa(params.Infants))
	}
	if params.TravelClass != "" {
		q.Set("travelClass", strings.ToUpper(params.TravelClass))
	}
	if params.IncludedAirlineCodes != "" {
		q.Set("includedAirlineCodes", params.IncludedAirlineCodes)
	}
	if params.ExcludedAirlineCodes != "" {
		q.Set("excludedAirlineCodes", params.ExcludedAirlineCodes)
	}
	if params.NonStop {
		q.Set("nonStop", "true")
	}
	if params.CurrencyCode != "" {
		q.Set("currencyCode", strings.ToUpper(params.CurrencyCode))
	}
	if params.MaxPrice > 0 {
		q.Set("maxPrice", strconv.Itoa(params.MaxPrice))
	}

	var payload dto.FlightOffersResponse
	if err := c.do(ctx, "/v2/shopping/flight-offers", q, &payload); err != nil {
		return models.FlightResult{}, err
	}
	return mappers.MapFlightOffers(payload, params.Adults, access, time.Now().UTC()), nil
}

func (c *Client) ListHotels(ctx context.Context, params models.GDSHotelListParams) (models.HotelResult, error) {
	if err := params.Validate(); err != nil {
		return models.HotelResult{}, err
	}

	q := url.Values{}
	path := "/v1/reference-data/locations/hotels/by-city"
	if params.ByGeocode {
		path = "/v1/reference-data/locations/hotels/by-geocode"
		q.Set("latitude", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
		q.Set("longitude", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	} else {
		q.Set("cityCode", strings.ToUpper(strings.TrimSpace(params.CityCode)))
	}
	if params.Radius > 0 {
		q.Set("radius", strconv.Itoa(params.Radius))
	}
	if params.Ratings != "" {
		q.Set("ratings", params.Ratings)
	}
	if params.Amenities != "" {
		q.Set("amenities", params.Amenities)
	}

	var payload dto.HotelListResponse
	if err := c.do(ctx, path, q, &payload); err != nil {
		return models.HotelResult{}, err
	}
	return mappers.MapHotelList(payload, time.Now().UTC()), nil
}

func (c *Client) SearchHotelOffers(ctx context.Context, params models.GDSHotelOfferParams) (models.HotelResult, error) {
	if err := params.Validate(); err != nil {
		return models.HotelResult{}, err
	}

	q := url.Values{}
	if params.CityCode != "" {
		q.Set("cityCode", strings.ToUpper(strings.TrimSpace(params.CityCode)))
	}
	if params.HotelIDs != "" {
		q.Set("hotelIds", params.HotelIDs)
	}
	if params.CheckInDate != "" {
		q.Set("checkInDate", params.CheckInDate)
	}
	if params.CheckOutDate != "" {
		q.Set("checkOutDate", params.CheckOutDate)
	}
	q.Set("adults", strconv.Itoa(params.Adults))
	if params.RoomQuantity > 0 {
		q.Set("roomQuantity", strconv.Itoa(params.RoomQuantity))
	}
	if params.Currency != "" {
		q.Set("currency", strings.ToUpper(params.Currency))
	}
	if params.BestRateOnly {
		q.Set("bestRateOnly", "true")
	}

	var payload dto.HotelOffersResponse
	if err := c.do(ctx, "/v3/shopping/hotel-offers", q, &payload); err != nil {
		return models.HotelResult{}, err
	}
	return mappers.MapHotelOffers(payload, time.Now().UTC()), nil
}

func (c *Client) SearchActivities(ctx context.Context, params models.ActivitySearchParams) (models.ActivityResult, error) {
	if err := params.Validate(); err != nil {
		return models.ActivityResult{}, err
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	if params.Radius > 0 {
		q.Set("radius", strconv.Itoa(params.Radius))
	}

	var payload dto.ActivitiesResponse
	if err := c.do(ctx, "/v1/shopping/activities", q, &payload); err != nil {
		return models.ActivityResult{}, err
	}
	return mappers.MapActivities(payload, time.Now().UTC()), nil
}

func (c *Client) ActivityByID(ctx context.Context, id string) (models.Activity, error) {
	if strings.TrimSpace(id) == "" {
		return models.Activity{}, fmt.Errorf("%w: activity id is required", derr.ErrInvalidParams)
	}

	var payload dto.ActivityResponse
	if err := c.do(ctx, "/v1/shopping/activities/"+url.PathEscape(id), url.Values{}, &payload); err != nil {
		return models.Activity{}, err
	}
	if payload.Data.ID == "" {
		return models.Activity{}, fmt.Errorf("%w: activity %s", derr.ErrNotFound, id)
	}
	return mappers.MapActivity(payload.Data), nil
}

func (c *Client) do(ctx context.Context, path string, q url.Values, out any) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.issue(ctx, path, q, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// Expired mid-flight: refresh once and retry.
		_ = resp.Body.Close()
		c.session.Invalidate(token)
		token, err = c.session.Token(ctx)
		if err != nil {
			return err
		}
		resp, err = c.issue(ctx, path, q, token)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return classifyStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode distribution system response", derr.ErrProviderPayload)
	}
	return nil
}

func (c *Client) issue(ctx context.Context, path string, q url.Values, token string) (*http.Response, error) {
	reqURL := c.session.baseURL + path
	if encoded := q.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: distribution system request to %s failed", derr.ErrSourceUnavailable, sanitize.URL(reqURL))
	}
	return resp, nil
}

// classifyStatus translates SDK-level rejections into the shared error
// taxonomy so callers see one shape regardless of the failure origin.
func classifyStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode == http.StatusBadRequest {
		var payload dto.ErrorResponse
		if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
			return fmt.Errorf("%w: distribution system rejected the request: %s", derr.ErrProviderPayload, payload.Errors[0].Title)
		}
		return fmt.Errorf("%w: distribution system rejected the request", derr.ErrProviderPayload)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: distribution system resource", derr.ErrNotFound)
	}
	return fmt.Errorf("%w: distribution system status %s", derr.ErrSourceUnavailable, resp.Status)
}
