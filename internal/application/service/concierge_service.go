package service

import (
	"context"
	"math"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/domain/ports"
	"github.com/tripdeck/concierge/internal/sanitize"
)

const earthRadiusKm = 6371.0

// ConciergeService fronts every provider client. Each operation validates
// input before any network call, delegates to the owning client, and folds
// any failure into a sanitized ErrorResult; no raw transport error crosses
// this boundary.
type ConciergeService struct {
	log        *zap.Logger
	flights    ports.FlightSource
	gdsFlights ports.GDSFlightSource
	hotels     ports.HotelSource
	gdsHotels  ports.GDSHotelSource
	activities ports.ActivitySource
	events     ports.EventSource
	currency   ports.CurrencyConverter
	geocoder   ports.Geocoder
	weather    ports.WeatherSource
}

func NewConciergeService(
	log *zap.Logger,
	flights ports.FlightSource,
	gdsFlights ports.GDSFlightSource,
	hotels ports.HotelSource,
	gdsHotels ports.GDSHotelSource,
	activities ports.ActivitySource,
	events ports.EventSource,
	currency ports.CurrencyConverter,
	geocoder ports.Geocoder,
	weather ports.WeatherSource,
) *ConciergeService {
	if log == nil {
		log = zap.NewNop()
	}

	return &ConciergeService{
		log:        log,
		flights:    flights,
		gdsFlights: gdsFlights,
		hotels:     hotels,
		gdsHotels:  gdsHotels,
		activities: activities,
		events:     events,
		currency:   currency,
		geocoder:   geocoder,
		weather:    weather,
	}
}

func (s *ConciergeService) SearchFlights(ctx context.Context, params models.FlightSearchParams) (models.FlightResult, *models.ErrorResult) {
	const op = "service.SearchFlights"
	ctx, span := s.startSpan(ctx, op,
		attribute.String("flight.departure", params.DepartureID),
		attribute.String("flight.arrival", params.ArrivalID),
	)
	defer span.End()

	result, err := s.flights.SearchFlights(ctx, params)
	if err != nil {
		return models.FlightResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) SearchFlightsGDS(ctx context.Context, params models.GDSFlightSearchParams, access *models.AccessibilityRequest) (models.FlightResult, *models.ErrorResult) {
	const op = "service.SearchFlightsGDS"
	ctx, span := s.startSpan(ctx, op,
		attribute.String("flight.origin", params.OriginLocationCode),
		attribute.String("flight.destination", params.DestinationLocationCode),
	)
	defer span.End()

	result, err := s.gdsFlights.SearchFlightOffers(ctx, params, access)
	if err != nil {
		return models.FlightResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) SearchHotels(ctx context.Context, params models.HotelSearchParams) (models.HotelResult, *models.ErrorResult) {
	const op = "service.SearchHotels"
	ctx, span := s.startSpan(ctx, op, attribute.String("hotel.location", params.Location))
	defer span.End()

	result, err := s.hotels.SearchHotels(ctx, params)
	if err != nil {
		return models.HotelResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) ListHotelsGDS(ctx context.Context, params models.GDSHotelListParams) (models.HotelResult, *models.ErrorResult) {
	const op = "service.ListHotelsGDS"
	ctx, span := s.startSpan(ctx, op, attribute.String("hotel.city_code", params.CityCode))
	defer span.End()

	result, err := s.gdsHotels.ListHotels(ctx, params)
	if err != nil {
		return models.HotelResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) SearchHotelOffersGDS(ctx context.Context, params models.GDSHotelOfferParams) (models.HotelResult, *models.ErrorResult) {
	const op = "service.SearchHotelOffersGDS"
	ctx, span := s.startSpan(ctx, op)
	defer span.End()

	result, err := s.gdsHotels.SearchHotelOffers(ctx, params)
	if err != nil {
		return models.HotelResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) SearchActivities(ctx context.Context, params models.ActivitySearchParams) (models.ActivityResult, *models.ErrorResult) {
	const op = "service.SearchActivities"
	ctx, span := s.startSpan(ctx, op)
	defer span.End()

	result, err := s.activities.SearchActivities(ctx, params)
	if err != nil {
		return models.ActivityResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) ActivityDetails(ctx context.Context, id string) (models.Activity, *models.ErrorResult) {
	const op = "service.ActivityDetails"
	ctx, span := s.startSpan(ctx, op, attribute.String("activity.id", id))
	defer span.End()

	result, err := s.activities.ActivityByID(ctx, id)
	if err != nil {
		return models.Activity{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) SearchEvents(ctx context.Context, params models.EventSearchParams) (models.EventResult, *models.ErrorResult) {
	const op = "service.SearchEvents"
	ctx, span := s.startSpan(ctx, op)
	defer span.End()

	result, err := s.events.SearchEvents(ctx, params)
	if err != nil {
		return models.EventResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) ConvertCurrency(ctx context.Context, params models.CurrencyParams) (models.CurrencyConversion, *models.ErrorResult) {
	const op = "service.ConvertCurrency"
	ctx, span := s.startSpan(ctx, op,
		attribute.String("currency.from", params.FromCurrency),
		attribute.String("currency.to", params.ToCurrency),
	)
	defer span.End()

	result, err := s.currency.Convert(ctx, params)
	if err != nil {
		return models.CurrencyConversion{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) Geocode(ctx context.Context, params models.GeocodeParams) (models.GeocodeResult, *models.ErrorResult) {
	const op = "service.Geocode"
	ctx, span := s.startSpan(ctx, op)
	defer span.End()

	result, err := s.geocoder.Geocode(ctx, params)
	if err != nil {
		return models.GeocodeResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) ReverseGeocode(ctx context.Context, params models.ReverseGeocodeParams) (models.ReverseGeocodeResult, *models.ErrorResult) {
	const op = "service.ReverseGeocode"
	ctx, span := s.startSpan(ctx, op)
	defer span.End()

	result, err := s.geocoder.ReverseGeocode(ctx, params)
	if err != nil {
		return models.ReverseGeocodeResult{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

func (s *ConciergeService) WeatherForecast(ctx context.Context, params models.WeatherParams) (models.WeatherForecast, *models.ErrorResult) {
	const op = "service.WeatherForecast"
	ctx, span := s.startSpan(ctx, op)
	defer span.End()

	result, err := s.weather.Forecast(ctx, params)
	if err != nil {
		return models.WeatherForecast{}, s.fail(op, span, err)
	}
	span.SetStatus(otelcodes.Ok, "ok")
	return result, nil
}

// Distance is a pure great-circle calculation; no provider involved.
func (s *ConciergeService) Distance(params models.DistanceParams) (models.DistanceResult, *models.ErrorResult) {
	if err := params.Validate(); err != nil {
		return models.DistanceResult{}, toErrorResult(err)
	}

	lat1 := params.Lat1 * math.Pi / 180
	lat2 := params.Lat2 * math.Pi / 180
	dLat := (params.Lat2 - params.Lat1) * math.Pi / 180
	dLon := (params.Lon2 - params.Lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	km := earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	unit := strings.ToLower(strings.TrimSpace(params.Unit))
	distance := km
	switch unit {
	case "miles":
		distance = km * 0.621371
	case "nm":
		distance = km * 0.539957
	default:
		unit = "km"
	}

	return models.DistanceResult{
		DistanceKm: km,
		Distance:   distance,
		Unit:       unit,
	}, nil
}

func (s *ConciergeService) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.Tracer("concierge/service")
	ctx, span := tracer.Start(ctx, op)
	span.SetAttributes(attrs...)
	return ctx, span
}

// fail logs the original error with its URL content redacted and returns the
// caller-facing ErrorResult. The raw error never leaves this method.
func (s *ConciergeService) fail(op string, span trace.Span, err error) *models.ErrorResult {
	result := toErrorResult(err)
	s.log.Warn("operation failed",
		zap.String("op", op),
		zap.String("kind", string(result.Kind)),
		zap.String("cause", sanitize.URL(err.Error())),
	)
	span.SetStatus(otelcodes.Error, string(result.Kind))
	return result
}

// toErrorResult collapses an error onto the four-kind taxonomy. Validation
// and configuration messages are safe to surface (they name fields and
// variable names, never values); transport and provider detail is replaced
// with a generic description.
func toErrorResult(err error) *models.ErrorResult {
	kind := derr.Classify(err)
	switch kind {
	case derr.KindValidation, derr.KindConfiguration:
		return &models.ErrorResult{Kind: kind, Message: sanitize.URL(err.Error())}
	case derr.KindProvider:
		return &models.ErrorResult{Kind: kind, Message: "provider returned an unexpected response; try again later"}
	default:
		return &models.ErrorResult{Kind: kind, Message: "request failed; verify parameters and try again"}
	}
}
