package mappers

import (
	"strings"

	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/amadeus/dto"
)

const gdsFlightAccessibilityNote = "The distribution system does not publish seat-level accessibility data. Contact the airline with the listed SSR codes to arrange assistance before travel."

var accessibilityKeywords = []string{
	"wheelchair",
	"accessible",
	"mobility",
	"elevator",
	"ramp",
	"parking",
	"bathroom",
}

var bathroomKeywords = []string{
	"bathroom",
	"shower",
	"roll-in",
	"grab bar",
	"toilet",
}

// ExtractHotelAccessibility scans the free-text facility descriptions of a
// distribution-system hotel. Keyword hits set the matching structured field;
// every facility is preserved verbatim in FacilityList for auditability.
func ExtractHotelAccessibility(facilities []dto.Facility) models.HotelAccessibility {
	access := models.HotelAccessibility{
		FacilityList: []string{},
	}

	for _, facility := range facilities {
		description := strings.TrimSpace(facility.Description)
		if description == "" {
			continue
		}
		access.FacilityList = append(access.FacilityList, description)

		lower := strings.ToLower(description)
		matched := false
		for _, keyword := range accessibilityKeywords {
			if strings.Contains(lower, keyword) {
				matched = true
				break
			}
		}

		for _, keyword := range bathroomKeywords {
			if strings.Contains(lower, keyword) {
				matched = true
				access.AccessibleBathroom = true
				if access.BathroomType == "" {
					access.BathroomType = description
				}
				break
			}
		}

		if !matched {
			continue
		}

		access.WheelchairAccessible = true
		access.AccessibleRoomAvailable = true
		if strings.Contains(lower, "elevator") {
			access.Elevator = true
		}
		if strings.Contains(lower, "ramp") || strings.Contains(lower, "entrance") {
			access.AccessibleEntrance = true
		}
		if strings.Contains(lower, "parking") {
			access.AccessibleParking = true
		}
	}

	return access
}

// BuildFlightAccessibility maps a traveler's declared needs onto the standard
// SSR code vocabulary. One code per flag, no duplicates.
func BuildFlightAccessibility(req models.AccessibilityRequest) models.FlightAccessibility {
	codes := make([]string, 0, 6)
	add := func(code string) {
		for _, existing := range codes {
			if existing == code {
				return
			}
		}
		codes = append(codes, code)
	}

	if req.WheelchairUser {
		add(models.SSRWheelchair)
	}
	if req.WheelchairStowage {
		add(models.SSRWheelchairStowage)
	}
	if req.StretcherCase {
		add(models.SSRStretcher)
	}
	if req.Deaf {
		add(models.SSRDeaf)
	}
	if req.Blind {
		add(models.SSRBlind)
	}
	if req.ReducedMobility {
		add(models.SSRReducedMobility)
	}

	return models.FlightAccessibility{
		WheelchairAvailable: req.WheelchairUser,
		WheelchairStowage:   req.WheelchairStowage,
		CompanionRequired:   req.CompanionRequired,
		SpecialServiceCodes: codes,
		Notes:               gdsFlightAccessibilityNote,
	}
}

// DefaultFlightAccessibility is the record attached when the caller declared
// no accessibility needs.
func DefaultFlightAccessibility() models.FlightAccessibility {
	return models.FlightAccessibility{
		SpecialServiceCodes: []string{},
		Notes:               gdsFlightAccessibilityNote,
	}
}
