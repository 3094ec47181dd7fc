package mappers

import (
	"testing"
	"time"

	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/infrastructures/serpapi/dto"
)

var mapNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestMapFlightResult_DropsNonPositivePrices(t *testing.T) {
	payload := dto.FlightSearchResponse{
		BestFlights: []dto.FlightOffer{
			{Price: 0, TotalDuration: 300},
			{Price: 412.5, TotalDuration: 420, BookingToken: "tok-1", Flights: []dto.FlightLeg{
				{
					DepartureAirport: dto.Airport{ID: "JFK", Time: "2026-09-10 08:00"},
					ArrivalAirport:   dto.Airport{ID: "CDG", Time: "2026-09-10 20:00"},
					Duration:         420,
					Airline:          "Air France",
					FlightNumber:     "AF 007",
				},
			}},
		},
	}

	result := MapFlightResult(payload, "usd", 10, mapNow)

	if result.Provider != models.ProviderConsumerSearch {
		t.Fatalf("unexpected provider %q", result.Provider)
	}
	if len(result.BestOptions) != 1 {
		t.Fatalf("expected 1 option, got %d", len(result.BestOptions))
	}

	opt := result.BestOptions[0]
	if opt.Currency != "USD" {
		t.Fatalf("expected uppercased currency, got %q", opt.Currency)
	}
	if opt.Accessibility == nil || opt.Accessibility.Notes == "" {
		t.Fatal("expected accessibility advisory on option")
	}
	if len(opt.Segments) != 1 || opt.Segments[0].DepartureAirport != "JFK" {
		t.Fatalf("unexpected segments %#v", opt.Segments)
	}
}

func TestMapFlightResult_Emissions(t *testing.T) {
	payload := dto.FlightSearchResponse{
		OtherFlights: []dto.FlightOffer{
			{Price: 100, CarbonEmissions: &dto.CarbonEmissions{
				ThisFlight:          540000,
				TypicalForThisRoute: 500000,
				DifferencePercent:   8,
			}},
		},
	}

	result := MapFlightResult(payload, "EUR", 10, mapNow)

	if len(result.OtherOptions) != 1 {
		t.Fatalf("expected 1 option, got %d", len(result.OtherOptions))
	}
	em := result.OtherOptions[0].Emissions
	if em == nil {
		t.Fatal("expected emissions record")
	}
	if em.ThisFlightGrams != 540000 || em.DifferencePercent != 8 {
		t.Fatalf("unexpected emissions %#v", em)
	}
}

func TestMapFlightResult_MaxResultsCap(t *testing.T) {
	offers := make([]dto.FlightOffer, 5)
	for i := range offers {
		offers[i] = dto.FlightOffer{Price: float64(100 + i)}
	}

	result := MapFlightResult(dto.FlightSearchResponse{BestFlights: offers}, "USD", 3, mapNow)

	if len(result.BestOptions) != 3 {
		t.Fatalf("expected 3 options, got %d", len(result.BestOptions))
	}
}

func TestMapHotelResult_AccessibilityNeverNil(t *testing.T) {
	payload := dto.HotelSearchResponse{
		Properties: []dto.HotelProperty{
			{
				PropertyToken: "prop-1",
				Name:          "Plain Inn",
				Amenities:     []dto.Amenity{{ID: 1, Name: "Free Wi-Fi"}},
			},
			{
				PropertyToken: "prop-2",
				Name:          "Access Hotel",
				OverallRating: 4.5,
				RatePerNight:  dto.RatePerNight{ExtractedPrice: 180},
				Amenities:     []dto.Amenity{{ID: models.WheelchairAmenityID, Name: "Accessible"}},
			},
		},
	}

	result := MapHotelResult(payload, "eur", 10, mapNow)

	if len(result.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(result.Properties))
	}
	for _, prop := range result.Properties {
		if prop.Accessibility == nil {
			t.Fatalf("property %q has nil accessibility", prop.Name)
		}
	}
	if result.Properties[0].Accessibility.WheelchairAccessible {
		t.Fatal("expected first property to be non-accessible")
	}
	if !result.Properties[1].Accessibility.WheelchairAccessible {
		t.Fatal("expected second property to be accessible")
	}
	if result.Properties[1].Currency != "EUR" {
		t.Fatalf("expected uppercased currency, got %q", result.Properties[1].Currency)
	}
}

func TestMapEventResult_JoinsAddress(t *testing.T) {
	payload := dto.EventSearchResponse{
		EventsResults: []dto.EventItem{
			{
				Title:   "Jazz Night",
				Date:    dto.EventDate{When: "Sat, Sep 12"},
				Address: []string{"12 Rue de Lille", "Paris"},
				Link:    "https://example.com/jazz",
			},
		},
	}

	result := MapEventResult(payload, 10, mapNow)

	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(result.Events))
	}
	if result.Events[0].Address != "12 Rue de Lille, Paris" {
		t.Fatalf("unexpected address %q", result.Events[0].Address)
	}
}
