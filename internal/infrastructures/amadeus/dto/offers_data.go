package dto

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type APIError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type ErrorResponse struct {
	Errors []APIError `json:"errors"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type SegmentPoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type Segment struct {
	Departure   SegmentPoint `json:"departure"`
	Arrival     SegmentPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
	Duration    string       `json:"duration"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type CO2Emission struct {
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weightUnit"`
	Cabin      string  `json:"cabin"`
}

type FlightOffer struct {
	ID           string        `json:"id"`
	Price        Price         `json:"price"`
	Itineraries  []Itinerary   `json:"itineraries"`
	CO2Emissions []CO2Emission `json:"co2Emissions"`
}

type FlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

type GeoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Facility struct {
	Description string `json:"description"`
}

type Hotel struct {
	HotelID    string     `json:"hotelId"`
	Name       string     `json:"name"`
	Rating     string     `json:"rating"`
	GeoCode    GeoCode    `json:"geoCode"`
	Facilities []Facility `json:"facilities"`
}

type HotelListResponse struct {
	Data []Hotel `json:"data"`
}

type HotelOffer struct {
	Price Price `json:"price"`
}

type HotelOfferItem struct {
	Hotel  Hotel        `json:"hotel"`
	Offers []HotelOffer `json:"offers"`
}

type HotelOffersResponse struct {
	Data []HotelOfferItem `json:"data"`
}

type ActivityPrice struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type Activity struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	ShortDescription string        `json:"shortDescription"`
	GeoCode          GeoCode       `json:"geoCode"`
	Price            ActivityPrice `json:"price"`
	BookingLink      string        `json:"bookingLink"`
}

type ActivitiesResponse struct {
	Data []Activity `json:"data"`
}

type ActivityResponse struct {
	Data Activity `json:"data"`
}
