package mappers

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/amadeus/dto"
)

// MapFlightOffers normalizes distribution-system flight offers. The caller's
// accessibility request, when present, is translated to SSR codes and
// attached to every offer.
func MapFlightOffers(payload dto.FlightOffersResponse, adults int, access *models.AccessibilityRequest, now time.Time) models.FlightResult {
	if adults < 1 {
		adults = 1
	}

	result := models.FlightResult{
		Provider:        models.ProviderDistribution,
		SearchTimestamp: now,
		BestOptions:     make([]models.FlightOption, 0, len(payload.Data)),
	}

	for _, offer := range payload.Data {
		price, err := strconv.ParseFloat(offer.Price.Total, 64)
		if err != nil || price <= 0 {
			continue
		}

		option := models.FlightOption{
			Price:    price,
			Currency: strings.ToUpper(offer.Price.Currency),
		}
		for _, itinerary := range offer.Itineraries {
			option.TotalDuration += parseISODurationMinutes(itinerary.Duration)
			for _, segment := range itinerary.Segments {
				option.Segments = append(option.Segments, models.FlightSegment{
					DepartureAirport: segment.Departure.IATACode,
					ArrivalAirport:   segment.Arrival.IATACode,
					DepartureTime:    segment.Departure.At,
					ArrivalTime:      segment.Arrival.At,
					Airline:          segment.CarrierCode,
					FlightNumber:     segment.CarrierCode + segment.Number,
					DurationMinutes:  parseISODurationMinutes(segment.Duration),
				})
			}
		}
		for _, emission := range offer.CO2Emissions {
			option.CabinCO2 = append(option.CabinCO2, models.CabinEmissions{
				Cabin:          emission.Cabin,
				WeightKg:       emission.Weight,
				PerPassengerKg: math.Round(emission.Weight/float64(adults)*100) / 100,
			})
		}

		record := DefaultFlightAccessibility()
		if access != nil {
			record = BuildFlightAccessibility(*access)
		}
		option.Accessibility = &record

		result.BestOptions = append(result.BestOptions, option)
	}

	return result
}

// MapHotelList normalizes a distribution-system hotel directory response.
func MapHotelList(payload dto.HotelListResponse, now time.Time) models.HotelResult {
	result := models.HotelResult{
		Provider:        models.ProviderDistribution,
		SearchTimestamp: now,
		Properties:      make([]models.HotelProperty, 0, len(payload.Data)),
	}

	for _, hotel := range payload.Data {
		result.Properties = append(result.Properties, mapHotelProperty(hotel, nil))
	}
	return result
}

// MapHotelOffers normalizes a distribution-system availability response.
func MapHotelOffers(payload dto.HotelOffersResponse, now time.Time) models.HotelResult {
	result := models.HotelResult{
		Provider:        models.ProviderDistribution,
		SearchTimestamp: now,
		Properties:      make([]models.HotelProperty, 0, len(payload.Data)),
	}

	for _, item := range payload.Data {
		var offer *dto.HotelOffer
		if len(item.Offers) > 0 {
			offer = &item.Offers[0]
		}
		result.Properties = append(result.Properties, mapHotelProperty(item.Hotel, offer))
	}
	return result
}

func mapHotelProperty(hotel dto.Hotel, offer *dto.HotelOffer) models.HotelProperty {
	access := ExtractHotelAccessibility(hotel.Facilities)
	rating, _ := strconv.ParseFloat(hotel.Rating, 64)

	prop := models.HotelProperty{
		ID:            hotel.HotelID,
		Name:          hotel.Name,
		Rating:        rating,
		Latitude:      hotel.GeoCode.Latitude,
		Longitude:     hotel.GeoCode.Longitude,
		Amenities:     access.FacilityList,
		Accessibility: &access,
	}
	if offer != nil {
		if price, err := strconv.ParseFloat(offer.Price.Total, 64); err == nil {
			prop.Price = price
			prop.Currency = strings.ToUpper(offer.Price.Currency)
		}
	}
	return prop
}

// MapActivities normalizes a distribution-system tours response.
func MapActivities(payload dto.ActivitiesResponse, now time.Time) models.ActivityResult {
	result := models.ActivityResult{
		Provider:        models.ProviderDistribution,
		SearchTimestamp: now,
		Activities:      make([]models.Activity, 0, len(payload.Data)),
	}
	for _, activity := range payload.Data {
		result.Activities = append(result.Activities, MapActivity(activity))
	}
	return result
}

func MapActivity(activity dto.Activity) models.Activity {
	price, _ := strconv.ParseFloat(activity.Price.Amount, 64)
	return models.Activity{
		ID:          activity.ID,
		Name:        activity.Name,
		Description: activity.ShortDescription,
		Price:       price,
		Currency:    strings.ToUpper(activity.Price.CurrencyCode),
		Latitude:    activity.GeoCode.Latitude,
		Longitude:   activity.GeoCode.Longitude,
		BookingLink: activity.BookingLink,
	}
}

// parseISODurationMinutes converts an ISO 8601 duration like "PT2H30M" to
// whole minutes. Unparseable values yield zero.
func parseISODurationMinutes(value string) int {
	value = strings.ToUpper(strings.TrimSpace(value))
	if !strings.HasPrefix(value, "PT") {
		return 0
	}
	value = strings.TrimPrefix(value, "PT")

	minutes := 0
	number := ""
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			number += string(r)
		case r == 'H':
			if n, err := strconv.Atoi(number); err == nil {
				minutes += n * 60
			}
			number = ""
		case r == 'M':
			if n, err := strconv.Atoi(number); err == nil {
				minutes += n
			}
			number = ""
		default:
			number = ""
		}
	}
	return minutes
}
