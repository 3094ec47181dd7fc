package weathergov

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/weathergov/dto"
	"github.com/tripdeck/concierge/internal/sanitize"
)

const userAgent = "trip-concierge/1.0 (support@tripdeck.example)"

// Client fetches forecasts in two hops: a points lookup resolves the
// forecast URL for a coordinate, then the forecast itself is fetched. No
// credential is involved; the service requires only a contactable User-Agent.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.weather.gov"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Forecast(ctx context.Context, params models.WeatherParams) (models.WeatherForecast, error) {
	if err := params.Validate(); err != nil {
		return models.WeatherForecast{}, err
	}

	pointsURL := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, params.Latitude, params.Longitude)
	var points dto.PointsResponse
	if err := c.get(ctx, pointsURL, &points); err != nil {
		return models.WeatherForecast{}, err
	}

	forecastURL := points.Properties.Forecast
	forecastType := "daily"
	if params.Hourly {
		forecastURL = points.Properties.ForecastHourly
		forecastType = "hourly"
	}
	if strings.TrimSpace(forecastURL) == "" {
		return models.WeatherForecast{}, fmt.Errorf("%w: points lookup carries no forecast link", derr.ErrProviderPayload)
	}

	var forecast dto.ForecastResponse
	if err := c.get(ctx, forecastURL, &forecast); err != nil {
		return models.WeatherForecast{}, err
	}

	result := models.WeatherForecast{
		Provider:        models.ProviderWeatherGov,
		Latitude:        params.Latitude,
		Longitude:       params.Longitude,
		ForecastType:    forecastType,
		Periods:         make([]models.ForecastPeriod, 0, len(forecast.Properties.Periods)),
		SearchTimestamp: time.Now().UTC(),
	}
	for _, period := range forecast.Properties.Periods {
		result.Periods = append(result.Periods, models.ForecastPeriod{
			Name:          period.Name,
			StartTime:     period.StartTime,
			EndTime:       period.EndTime,
			Temperature:   period.Temperature,
			Unit:          period.TemperatureUnit,
			WindSpeed:     period.WindSpeed,
			WindDirection: period.WindDirection,
			ShortForecast: period.ShortForecast,
		})
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: weather request to %s failed", derr.ErrSourceUnavailable, sanitize.URL(reqURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: weather service status %s", derr.ErrSourceUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode weather response", derr.ErrProviderPayload)
	}
	return nil
}
