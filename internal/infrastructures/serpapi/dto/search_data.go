package dto

type CarbonEmissions struct {
	ThisFlight          int `json:"this_flight"`
	TypicalForThisRoute int `json:"typical_for_this_route"`
	DifferencePercent   int `json:"difference_percent"`
}

type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

type FlightLeg struct {
	DepartureAirport Airport `json:"departure_airport"`
	ArrivalAirport   Airport `json:"arrival_airport"`
	Duration         int     `json:"duration"`
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
}

type FlightOffer struct {
	Flights         []FlightLeg      `json:"flights"`
	TotalDuration   int              `json:"total_duration"`
	Price           float64          `json:"price"`
	CarbonEmissions *CarbonEmissions `json:"carbon_emissions"`
	BookingToken    string           `json:"booking_token"`
}

type FlightSearchResponse struct {
	BestFlights  []FlightOffer `json:"best_flights"`
	OtherFlights []FlightOffer `json:"other_flights"`
	Error        string        `json:"error"`
}

type Amenity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GPSCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RatePerNight struct {
	Lowest         string  `json:"lowest"`
	ExtractedPrice float64 `json:"extracted_lowest"`
}

type HotelProperty struct {
	PropertyToken  string         `json:"property_token"`
	Name           string         `json:"name"`
	OverallRating  float64        `json:"overall_rating"`
	RatePerNight   RatePerNight   `json:"rate_per_night"`
	GPSCoordinates GPSCoordinates `json:"gps_coordinates"`
	Amenities      []Amenity      `json:"amenities"`
}

type HotelSearchResponse struct {
	Properties []HotelProperty `json:"properties"`
	Error      string          `json:"error"`
}

type EventDate struct {
	When string `json:"when"`
}

type EventItem struct {
	Title       string    `json:"title"`
	Date        EventDate `json:"date"`
	Address     []string  `json:"address"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
}

type EventSearchResponse struct {
	EventsResults []EventItem `json:"events_results"`
	Error         string      `json:"error"`
}
