package mappers

import (
	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/serpapi/dto"
)

const flightAccessibilityNote = "Check with airline for wheelchair assistance, accessible lavatories and special service requests; use IATA SSR codes (WCHR, WCHS, STCR, DEAF, BLND, PRMK) when booking."

// ExtractHotelAccessibility reads the amenity list of a consumer-search
// property. The provider marks wheelchair accessible rooms with a fixed
// amenity identifier; absence of the identifier yields false, not unknown.
func ExtractHotelAccessibility(amenities []dto.Amenity) models.HotelAccessibility {
	access := models.HotelAccessibility{
		FacilityList: []string{},
	}

	for _, amenity := range amenities {
		if amenity.Name != "" {
			access.FacilityList = append(access.FacilityList, amenity.Name)
		}
		if amenity.ID == models.WheelchairAmenityID {
			access.WheelchairAccessible = true
			access.AccessibleRoomAvailable = true
		}
	}

	return access
}

// ExtractFlightAccessibility returns the consumer-flight record. The source
// exposes no structured accessibility data, so every boolean stays at its
// conservative default and only the advisory note is carried.
func ExtractFlightAccessibility() models.FlightAccessibility {
	return models.FlightAccessibility{
		SpecialServiceCodes: []string{},
		Notes:               flightAccessibilityNote,
	}
}
