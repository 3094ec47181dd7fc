package models

import "time"

// Provider tags which upstream produced a result.
type Provider string

const (
	ProviderConsumerSearch Provider = "consumer-search"
	ProviderDistribution   Provider = "distribution-system"
	ProviderExchangeRate   Provider = "exchangerate-api"
	ProviderNominatim      Provider = "nominatim"
	ProviderWeatherGov     Provider = "weather-gov"
)

// FlightEmissions carries per-flight CO2 data where the consumer source
// exposes it. A negative DifferencePercent means lower than typical.
type FlightEmissions struct {
	ThisFlightGrams      int `json:"this_flight_grams,omitempty"`
	TypicalForRouteGrams int `json:"typical_for_route_grams,omitempty"`
	DifferencePercent    int `json:"difference_percent,omitempty"`
}

// CabinEmissions carries per-cabin CO2 weight from the distribution system.
type CabinEmissions struct {
	Cabin          string  `json:"cabin"`
	WeightKg       float64 `json:"weight_kg"`
	PerPassengerKg float64 `json:"per_passenger_kg"`
}

type FlightSegment struct {
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flight_number"`
	DurationMinutes  int    `json:"duration_minutes"`
}

// FlightOption is one priced itinerary from either provider.
type FlightOption struct {
	Price         float64              `json:"price"`
	Currency      string               `json:"currency"`
	Segments      []FlightSegment      `json:"segments"`
	TotalDuration int                  `json:"total_duration_minutes,omitempty"`
	Emissions     *FlightEmissions     `json:"carbon_emissions,omitempty"`
	CabinCO2      []CabinEmissions     `json:"co2_by_cabin,omitempty"`
	Accessibility *FlightAccessibility `json:"accessibility,omitempty"`
	BookingToken  string               `json:"booking_token,omitempty"`
}

// FlightResult is the provider-agnostic flight search outcome.
type FlightResult struct {
	Provider        Provider       `json:"provider"`
	SearchTimestamp time.Time      `json:"search_timestamp"`
	BestOptions     []FlightOption `json:"best_options"`
	OtherOptions    []FlightOption `json:"other_options,omitempty"`
}

// HotelProperty is one normalized accommodation entry.
type HotelProperty struct {
	ID            string              `json:"id,omitempty"`
	Name          string              `json:"name"`
	Rating        float64             `json:"rating,omitempty"`
	Price         float64             `json:"price,omitempty"`
	Currency      string              `json:"currency,omitempty"`
	Latitude      float64             `json:"latitude,omitempty"`
	Longitude     float64             `json:"longitude,omitempty"`
	Amenities     []string            `json:"amenities,omitempty"`
	Accessibility *HotelAccessibility `json:"accessibility,omitempty"`
}

// HotelResult is the provider-agnostic hotel search outcome.
type HotelResult struct {
	Provider        Provider        `json:"provider"`
	SearchTimestamp time.Time       `json:"search_timestamp"`
	Properties      []HotelProperty `json:"properties"`
}

// ActivityResult is one tour or activity near a point.
type ActivityResult struct {
	Provider        Provider   `json:"provider"`
	SearchTimestamp time.Time  `json:"search_timestamp"`
	Activities      []Activity `json:"activities"`
}

type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	BookingLink string  `json:"booking_link,omitempty"`
}

// EventResult is the consumer-search events outcome.
type EventResult struct {
	Provider        Provider  `json:"provider"`
	SearchTimestamp time.Time `json:"search_timestamp"`
	Events          []Event   `json:"events"`
}

type Event struct {
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Address     string `json:"address,omitempty"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
}

// CurrencyConversion is a completed exchange-rate lookup.
type CurrencyConversion struct {
	Provider        Provider  `json:"provider"`
	FromCurrency    string    `json:"from_currency"`
	ToCurrency      string    `json:"to_currency"`
	Amount          float64   `json:"amount"`
	ExchangeRate    float64   `json:"exchange_rate"`
	ConvertedAmount float64   `json:"converted_amount"`
	SearchTimestamp time.Time `json:"search_timestamp"`
}

// BoundingBox is optional geocoder extent metadata, [south north west east].
type BoundingBox struct {
	South float64 `json:"south"`
	North float64 `json:"north"`
	West  float64 `json:"west"`
	East  float64 `json:"east"`
}

type GeocodeMatch struct {
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Address     string       `json:"address"`
	BoundingBox *BoundingBox `json:"bounding_box,omitempty"`
}

// GeocodeResult resolves a free-form location to coordinates.
type GeocodeResult struct {
	Provider        Provider       `json:"provider"`
	Location        string         `json:"location"`
	Matches         []GeocodeMatch `json:"matches"`
	SearchTimestamp time.Time      `json:"search_timestamp"`
}

// ReverseGeocodeResult resolves coordinates to an address.
type ReverseGeocodeResult struct {
	Provider        Provider  `json:"provider"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Address         string    `json:"address"`
	SearchTimestamp time.Time `json:"search_timestamp"`
}

type ForecastPeriod struct {
	Name          string `json:"name,omitempty"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time,omitempty"`
	Temperature   int    `json:"temperature"`
	Unit          string `json:"temperature_unit"`
	WindSpeed     string `json:"wind_speed,omitempty"`
	WindDirection string `json:"wind_direction,omitempty"`
	ShortForecast string `json:"short_forecast,omitempty"`
}

// WeatherForecast is a normalized daily or hourly forecast.
type WeatherForecast struct {
	Provider        Provider         `json:"provider"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	ForecastType    string           `json:"forecast_type"`
	Periods         []ForecastPeriod `json:"forecast_periods"`
	SearchTimestamp time.Time        `json:"search_timestamp"`
}

// DistanceResult is a great-circle distance between two points.
type DistanceResult struct {
	DistanceKm float64 `json:"distance_km"`
	Distance   float64 `json:"distance"`
	Unit       string  `json:"unit"`
}
