package mappers

import (
	"strings"
	"time"

	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/serpapi/dto"
)

// MapFlightResult normalizes a consumer-search flight payload. Offers without
// a positive price are dropped; each kept offer carries the static
// accessibility advisory.
func MapFlightResult(payload dto.FlightSearchResponse, currency string, maxResults int, now time.Time) models.FlightResult {
	return models.FlightResult{
		Provider:        models.ProviderConsumerSearch,
		SearchTimestamp: now,
		BestOptions:     mapFlightOffers(payload.BestFlights, currency, maxResults),
		OtherOptions:    mapFlightOffers(payload.OtherFlights, currency, maxResults),
	}
}

func mapFlightOffers(offers []dto.FlightOffer, currency string, maxResults int) []models.FlightOption {
	options := make([]models.FlightOption, 0, len(offers))
	for _, offer := range offers {
		if offer.Price <= 0 {
			continue
		}
		if maxResults > 0 && len(options) >= maxResults {
			break
		}

		access := ExtractFlightAccessibility()
		option := models.FlightOption{
			Price:         offer.Price,
			Currency:      strings.ToUpper(currency),
			TotalDuration: offer.TotalDuration,
			BookingToken:  offer.BookingToken,
			Accessibility: &access,
			Segments:      make([]models.FlightSegment, 0, len(offer.Flights)),
		}
		for _, leg := range offer.Flights {
			option.Segments = append(option.Segments, models.FlightSegment{
				DepartureAirport: leg.DepartureAirport.ID,
				ArrivalAirport:   leg.ArrivalAirport.ID,
				DepartureTime:    leg.DepartureAirport.Time,
				ArrivalTime:      leg.ArrivalAirport.Time,
				Airline:          leg.Airline,
				FlightNumber:     leg.FlightNumber,
				DurationMinutes:  leg.Duration,
			})
		}
		if offer.CarbonEmissions != nil {
			option.Emissions = &models.FlightEmissions{
				ThisFlightGrams:      offer.CarbonEmissions.ThisFlight,
				TypicalForRouteGrams: offer.CarbonEmissions.TypicalForThisRoute,
				DifferencePercent:    offer.CarbonEmissions.DifferencePercent,
			}
		}
		options = append(options, option)
	}
	return options
}

// MapHotelResult normalizes a consumer-search hotel payload, attaching the
// amenity-derived accessibility record to every property.
func MapHotelResult(payload dto.HotelSearchResponse, currency string, maxResults int, now time.Time) models.HotelResult {
	result := models.HotelResult{
		Provider:        models.ProviderConsumerSearch,
		SearchTimestamp: now,
		Properties:      make([]models.HotelProperty, 0, len(payload.Properties)),
	}

	for _, prop := range payload.Properties {
		if maxResults > 0 && len(result.Properties) >= maxResults {
			break
		}

		access := ExtractHotelAccessibility(prop.Amenities)
		amenities := make([]string, 0, len(prop.Amenities))
		for _, amenity := range prop.Amenities {
			if amenity.Name != "" {
				amenities = append(amenities, amenity.Name)
			}
		}

		result.Properties = append(result.Properties, models.HotelProperty{
			ID:            prop.PropertyToken,
			Name:          prop.Name,
			Rating:        prop.OverallRating,
			Price:         prop.RatePerNight.ExtractedPrice,
			Currency:      strings.ToUpper(currency),
			Latitude:      prop.GPSCoordinates.Latitude,
			Longitude:     prop.GPSCoordinates.Longitude,
			Amenities:     amenities,
			Accessibility: &access,
		})
	}

	return result
}

// MapEventResult normalizes a consumer-search events payload.
func MapEventResult(payload dto.EventSearchResponse, maxResults int, now time.Time) models.EventResult {
	result := models.EventResult{
		Provider:        models.ProviderConsumerSearch,
		SearchTimestamp: now,
		Events:          make([]models.Event, 0, len(payload.EventsResults)),
	}

	for _, item := range payload.EventsResults {
		if maxResults > 0 && len(result.Events) >= maxResults {
			break
		}
		result.Events = append(result.Events, models.Event{
			Title:       item.Title,
			Date:        item.Date.When,
			Address:     strings.Join(item.Address, ", "),
			Link:        item.Link,
			Description: item.Description,
		})
	}

	return result
}
