package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
)

const dateLayout = "2006-01-02"

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

func parseSearchDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format", derr.ErrInvalidParams, field)
	}
	return t, nil
}

func validateCurrencyCode(field, code string) error {
	if !currencyCodePattern.MatchString(strings.TrimSpace(code)) {
		return fmt.Errorf("%w: %s must be a 3-letter currency code", derr.ErrInvalidParams, field)
	}
	return nil
}

func validateLatLon(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be within [-90, 90]", derr.ErrInvalidParams)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude must be within [-180, 180]", derr.ErrInvalidParams)
	}
	return nil
}

// FlightSearchParams describes a consumer-search flight query.
type FlightSearchParams struct {
	DepartureID   string `json:"departure_id"`
	ArrivalID     string `json:"arrival_id"`
	OutboundDate  string `json:"outbound_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	InfantsInSeat int    `json:"infants_in_seat"`
	InfantsOnLap  int    `json:"infants_on_lap"`
	TravelClass   int    `json:"travel_class"`
	Currency      string `json:"currency"`
	Country       string `json:"country"`
	Language      string `json:"language"`
	MaxResults    int    `json:"max_results"`
}

func (p FlightSearchParams) Validate() error {
	if strings.TrimSpace(p.DepartureID) == "" {
		return fmt.Errorf("%w: departure_id is required", derr.ErrInvalidParams)
	}
	if strings.TrimSpace(p.ArrivalID) == "" {
		return fmt.Errorf("%w: arrival_id is required", derr.ErrInvalidParams)
	}
	outbound, err := parseSearchDate("outbound_date", p.OutboundDate)
	if err != nil {
		return err
	}
	if strings.TrimSpace(p.ReturnDate) != "" {
		ret, err := parseSearchDate("return_date", p.ReturnDate)
		if err != nil {
			return err
		}
		if ret.Before(outbound) {
			return fmt.Errorf("%w: return_date must not be earlier than outbound_date", derr.ErrInvalidParams)
		}
	}
	if p.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", derr.ErrInvalidParams)
	}
	if p.Children < 0 || p.InfantsInSeat < 0 || p.InfantsOnLap < 0 {
		return fmt.Errorf("%w: passenger counts must not be negative", derr.ErrInvalidParams)
	}
	if p.TravelClass < 1 || p.TravelClass > 4 {
		return fmt.Errorf("%w: travel_class must be between 1 and 4", derr.ErrInvalidParams)
	}
	if err := validateCurrencyCode("currency", p.Currency); err != nil {
		return err
	}
	if p.MaxResults < 1 || p.MaxResults > 50 {
		return fmt.Errorf("%w: max_results must be between 1 and 50", derr.ErrInvalidParams)
	}
	return nil
}

// GDSFlightSearchParams describes a distribution-system flight offers query.
type GDSFlightSearchParams struct {
	OriginLocationCode      string `json:"origin_location_code"`
	DestinationLocationCode string `json:"destination_location_code"`
	DepartureDate           string `json:"departure_date"`
	ReturnDate              string `json:"return_date,omitempty"`
	Adults                  int    `json:"adults"`
	Children                int    `json:"children"`
	Infants                 int    `json:"infants"`
	TravelClass             string `json:"travel_class,omitempty"`
	IncludedAirlineCodes    string `json:"included_airline_codes,omitempty"`
	ExcludedAirlineCodes    string `json:"excluded_airline_codes,omitempty"`
	NonStop                 bool   `json:"non_stop,omitempty"`
	CurrencyCode            string `json:"currency_code,omitempty"`
	MaxPrice                int    `json:"max_price,omitempty"`
	Max                     int    `json:"max"`
}

func (p GDSFlightSearchParams) Validate() error {
	if len(strings.TrimSpace(p.OriginLocationCode)) != 3 {
		return fmt.Errorf("%w: origin_location_code must be a 3-letter IATA code", derr.ErrInvalidParams)
	}
	if len(strings.TrimSpace(p.DestinationLocationCode)) != 3 {
		return fmt.Errorf("%w: destination_location_code must be a 3-letter IATA code", derr.ErrInvalidParams)
	}
	departure, err := parseSearchDate("departure_date", p.DepartureDate)
	if err != nil {
		return err
	}
	if strings.TrimSpace(p.ReturnDate) != "" {
		ret, err := parseSearchDate("return_date", p.ReturnDate)
		if err != nil {
			return err
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: return_date must not be earlier than departure_date", derr.ErrInvalidParams)
		}
	}
	if p.Adults < 1 || p.Adults > 9 {
		return fmt.Errorf("%w: adults must be between 1 and 9", derr.ErrInvalidParams)
	}
	if p.Children < 0 || p.Infants < 0 {
		return fmt.Errorf("%w: passenger counts must not be negative", derr.ErrInvalidParams)
	}
	if p.Adults+p.Children > 9 {
		return fmt.Errorf("%w: total seated travelers cannot exceed 9", derr.ErrInvalidParams)
	}
	if p.Infants > p.Adults {
		return fmt.Errorf("%w: infants cannot exceed adults", derr.ErrInvalidParams)
	}
	if p.CurrencyCode != "" {
		if err := validateCurrencyCode("currency_code", p.CurrencyCode); err != nil {
			return err
		}
	}
	if p.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price must not be negative", derr.ErrInvalidParams)
	}
	if p.Max < 1 || p.Max > 250 {
		return fmt.Errorf("%w: max must be between 1 and 250", derr.ErrInvalidParams)
	}
	return nil
}

// HotelSearchParams describes a consumer-search hotel query.
type HotelSearchParams struct {
	Location         string `json:"location"`
	CheckInDate      string `json:"check_in_date"`
	CheckOutDate     string `json:"check_out_date"`
	Adults           int    `json:"adults"`
	Children         int    `json:"children"`
	ChildrenAges     []int  `json:"children_ages,omitempty"`
	Currency         string `json:"currency"`
	Country          string `json:"country"`
	Language         string `json:"language"`
	SortBy           int    `json:"sort_by,omitempty"`
	HotelClass       []int  `json:"hotel_class,omitempty"`
	FreeCancellation bool   `json:"free_cancellation,omitempty"`
	VacationRentals  bool   `json:"vacation_rentals,omitempty"`
	MaxResults       int    `json:"max_results"`
}

func (p HotelSearchParams) Validate() error {
	if strings.TrimSpace(p.Location) == "" {
		return fmt.Errorf("%w: location is required", derr.ErrInvalidParams)
	}
	checkIn, err := parseSearchDate("check_in_date", p.CheckInDate)
	if err != nil {
		return err
	}
	checkOut, err := parseSearchDate("check_out_date", p.CheckOutDate)
	if err != nil {
		return err
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check_out_date must be after check_in_date", derr.ErrInvalidParams)
	}
	if p.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", derr.ErrInvalidParams)
	}
	if p.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", derr.ErrInvalidParams)
	}
	if err := validateCurrencyCode("currency", p.Currency); err != nil {
		return err
	}
	if p.MaxResults < 1 || p.MaxResults > 50 {
		return fmt.Errorf("%w: max_results must be between 1 and 50", derr.ErrInvalidParams)
	}
	return nil
}

// GDSHotelListParams locates distribution-system hotels by city or by
// coordinates; exactly one addressing mode must be supplied.
type GDSHotelListParams struct {
	CityCode  string  `json:"city_code,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	ByGeocode bool    `json:"by_geocode,omitempty"`
	Radius    int     `json:"radius,omitempty"`
	Ratings   string  `json:"ratings,omitempty"`
	Amenities string  `json:"amenities,omitempty"`
}

func (p GDSHotelListParams) Validate() error {
	if p.ByGeocode {
		if err := validateLatLon(p.Latitude, p.Longitude); err != nil {
			return err
		}
	} else if len(strings.TrimSpace(p.CityCode)) != 3 {
		return fmt.Errorf("%w: city_code must be a 3-letter IATA code", derr.ErrInvalidParams)
	}
	if p.Radius < 0 {
		return fmt.Errorf("%w: radius must not be negative", derr.ErrInvalidParams)
	}
	return nil
}

// GDSHotelOfferParams describes a distribution-system availability query.
type GDSHotelOfferParams struct {
	CityCode     string `json:"city_code,omitempty"`
	HotelIDs     string `json:"hotel_ids,omitempty"`
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	Adults       int    `json:"adults"`
	RoomQuantity int    `json:"room_quantity,omitempty"`
	Currency     string `json:"currency,omitempty"`
	BestRateOnly bool   `json:"best_rate_only,omitempty"`
}

func (p GDSHotelOfferParams) Validate() error {
	if strings.TrimSpace(p.CityCode) == "" && strings.TrimSpace(p.HotelIDs) == "" {
		return fmt.Errorf("%w: either city_code or hotel_ids must be provided", derr.ErrInvalidParams)
	}
	if p.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", derr.ErrInvalidParams)
	}
	if p.RoomQuantity < 0 {
		return fmt.Errorf("%w: room_quantity must not be negative", derr.ErrInvalidParams)
	}
	if p.CheckInDate != "" && p.CheckOutDate != "" {
		checkIn, err := parseSearchDate("check_in_date", p.CheckInDate)
		if err != nil {
			return err
		}
		checkOut, err := parseSearchDate("check_out_date", p.CheckOutDate)
		if err != nil {
			return err
		}
		if !checkOut.After(checkIn) {
			return fmt.Errorf("%w: check_out_date must be after check_in_date", derr.ErrInvalidParams)
		}
	}
	if p.Currency != "" {
		if err := validateCurrencyCode("currency", p.Currency); err != nil {
			return err
		}
	}
	return nil
}

// ActivitySearchParams describes a distribution-system tours query around a point.
type ActivitySearchParams struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Radius     int     `json:"radius"`
	RadiusUnit string  `json:"radius_unit"`
}

func (p ActivitySearchParams) Validate() error {
	if err := validateLatLon(p.Latitude, p.Longitude); err != nil {
		return err
	}
	if p.Radius < 0 {
		return fmt.Errorf("%w: radius must not be negative", derr.ErrInvalidParams)
	}
	switch strings.ToUpper(strings.TrimSpace(p.RadiusUnit)) {
	case "", "KM", "MI":
	default:
		return fmt.Errorf("%w: radius_unit must be KM or MI", derr.ErrInvalidParams)
	}
	return nil
}

// EventSearchParams describes a consumer-search events query.
type EventSearchParams struct {
	Query      string `json:"query"`
	Location   string `json:"location,omitempty"`
	DateFilter string `json:"date_filter,omitempty"`
	Language   string `json:"language"`
	Country    string `json:"country"`
	MaxResults int    `json:"max_results"`
}

func (p EventSearchParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return fmt.Errorf("%w: query is required", derr.ErrInvalidParams)
	}
	if p.MaxResults < 1 || p.MaxResults > 50 {
		return fmt.Errorf("%w: max_results must be between 1 and 50", derr.ErrInvalidParams)
	}
	return nil
}

// CurrencyParams describes a currency conversion request.
type CurrencyParams struct {
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	Amount       float64 `json:"amount"`
}

func (p CurrencyParams) Validate() error {
	if err := validateCurrencyCode("from_currency", p.FromCurrency); err != nil {
		return err
	}
	if err := validateCurrencyCode("to_currency", p.ToCurrency); err != nil {
		return err
	}
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than 0", derr.ErrInvalidParams)
	}
	return nil
}

// GeocodeParams describes a forward geocoding request.
type GeocodeParams struct {
	Location     string `json:"location"`
	ExactlyOne   bool   `json:"exactly_one"`
	Language     string `json:"language"`
	CountryCodes string `json:"country_codes,omitempty"`
}

func (p GeocodeParams) Validate() error {
	if strings.TrimSpace(p.Location) == "" {
		return fmt.Errorf("%w: location is required", derr.ErrInvalidParams)
	}
	return nil
}

// ReverseGeocodeParams describes a reverse geocoding request.
type ReverseGeocodeParams struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Language  string  `json:"language"`
}

func (p ReverseGeocodeParams) Validate() error {
	return validateLatLon(p.Latitude, p.Longitude)
}

// WeatherParams describes a forecast request.
type WeatherParams struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hourly    bool    `json:"hourly"`
}

func (p WeatherParams) Validate() error {
	return validateLatLon(p.Latitude, p.Longitude)
}

// DistanceParams describes a great-circle distance calculation.
type DistanceParams struct {
	Lat1 float64 `json:"lat1"`
	Lon1 float64 `json:"lon1"`
	Lat2 float64 `json:"lat2"`
	Lon2 float64 `json:"lon2"`
	Unit string  `json:"unit"`
}

func (p DistanceParams) Validate() error {
	if err := validateLatLon(p.Lat1, p.Lon1); err != nil {
		return err
	}
	if err := validateLatLon(p.Lat2, p.Lon2); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(p.Unit)) {
	case "", "km", "miles", "nm":
	default:
		return fmt.Errorf("%w: unit must be km, miles or nm", derr.ErrInvalidParams)
	}
	return nil
}
