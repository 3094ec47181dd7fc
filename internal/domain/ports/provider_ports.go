package ports

import (
	"context"

	"github.com/tripdeck/concierge/internal/domain/models"
)

// FlightSource searches priced itineraries on one provider.
type FlightSource interface {
	SearchFlights(ctx context.Context, params models.FlightSearchParams) (models.FlightResult, error)
}

// GDSFlightSource searches the distribution system, optionally attaching the
// traveler's accessibility request to each offer.
type GDSFlightSource interface {
	SearchFlightOffers(ctx context.Context, params models.GDSFlightSearchParams, access *models.AccessibilityRequest) (models.FlightResult, error)
}

type HotelSource interface {
	SearchHotels(ctx context.Context, params models.HotelSearchParams) (models.HotelResult, error)
}

type GDSHotelSource interface {
	ListHotels(ctx context.Context, params models.GDSHotelListParams) (models.HotelResult, error)
	SearchHotelOffers(ctx context.Context, params models.GDSHotelOfferParams) (models.HotelResult, error)
}

type ActivitySource interface {
	SearchActivities(ctx context.Context, params models.ActivitySearchParams) (models.ActivityResult, error)
	ActivityByID(ctx context.Context, id string) (models.Activity, error)
}

type EventSource interface {
	SearchEvents(ctx context.Context, params models.EventSearchParams) (models.EventResult, error)
}

type CurrencyConverter interface {
	Convert(ctx context.Context, params models.CurrencyParams) (models.CurrencyConversion, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, params models.GeocodeParams) (models.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, params models.ReverseGeocodeParams) (models.ReverseGeocodeResult, error)
}

type WeatherSource interface {
	Forecast(ctx context.Context, params models.WeatherParams) (models.WeatherForecast, error)
}
