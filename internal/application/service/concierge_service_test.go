package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
)

const secretValue = "sk_live_0123456789abcdef"

type fakeFlights struct {
	result models.FlightResult
	err    error
}

func (f fakeFlights) SearchFlights(context.Context, models.FlightSearchParams) (models.FlightResult, error) {
	return f.result, f.err
}

type fakeGDSFlights struct {
	result models.FlightResult
	err    error
}

func (f fakeGDSFlights) SearchFlightOffers(context.Context, models.GDSFlightSearchParams, *models.AccessibilityRequest) (models.FlightResult, error) {
	return f.result, f.err
}

type fakeCurrency struct {
	result models.CurrencyConversion
	err    error
}

func (f fakeCurrency) Convert(context.Context, models.CurrencyParams) (models.CurrencyConversion, error) {
	return f.result, f.err
}

func newService(flights fakeFlights, gds fakeGDSFlights, currency fakeCurrency) *ConciergeService {
	return NewConciergeService(zap.NewNop(), flights, gds, nil, nil, nil, nil, currency, nil, nil)
}

func TestSearchFlights_Success(t *testing.T) {
	want := models.FlightResult{Provider: models.ProviderConsumerSearch}
	s := newService(fakeFlights{result: want}, fakeGDSFlights{}, fakeCurrency{})

	result, errResult := s.SearchFlights(context.Background(), models.FlightSearchParams{})
	if errResult != nil {
		t.Fatalf("unexpected error result: %#v", errResult)
	}
	if result.Provider != models.ProviderConsumerSearch {
		t.Fatalf("unexpected provider %q", result.Provider)
	}
}

func TestSearchFlights_ValidationKindAndMessage(t *testing.T) {
	err := fmt.Errorf("%w: outbound_date must be in YYYY-MM-DD format", derr.ErrInvalidParams)
	s := newService(fakeFlights{err: err}, fakeGDSFlights{}, fakeCurrency{})

	_, errResult := s.SearchFlights(context.Background(), models.FlightSearchParams{})
	if errResult == nil {
		t.Fatal("expected error result")
	}
	if errResult.Kind != derr.KindValidation {
		t.Fatalf("expected validation kind, got %q", errResult.Kind)
	}
	if !strings.Contains(errResult.Message, "outbound_date") {
		t.Fatalf("expected field name in message, got %q", errResult.Message)
	}
}

func TestSearchFlights_ConfigurationNamesVariableOnly(t *testing.T) {
	err := fmt.Errorf("%w: SERPAPI_KEY environment variable is required", derr.ErrMissingCredential)
	s := newService(fakeFlights{err: err}, fakeGDSFlights{}, fakeCurrency{})

	_, errResult := s.SearchFlights(context.Background(), models.FlightSearchParams{})
	if errResult.Kind != derr.KindConfiguration {
		t.Fatalf("expected configuration kind, got %q", errResult.Kind)
	}
	if !strings.Contains(errResult.Message, "SERPAPI_KEY") {
		t.Fatalf("expected variable name in message, got %q", errResult.Message)
	}
	if strings.Contains(errResult.Message, secretValue) {
		t.Fatal("message leaks the secret value")
	}
}

func TestSearchFlights_TransportMessageIsGeneric(t *testing.T) {
	err := fmt.Errorf("%w: request to https://api.example.com/search?api_key=%s failed", derr.ErrSourceUnavailable, secretValue)
	s := newService(fakeFlights{err: err}, fakeGDSFlights{}, fakeCurrency{})

	_, errResult := s.SearchFlights(context.Background(), models.FlightSearchParams{})
	if errResult.Kind != derr.KindTransport {
		t.Fatalf("expected transport kind, got %q", errResult.Kind)
	}
	if strings.Contains(errResult.Message, secretValue) {
		t.Fatal("message leaks the secret value")
	}
	if strings.Contains(errResult.Message, "https://") {
		t.Fatal("message leaks the request URL")
	}
}

func TestSearchFlightsGDS_ProviderMessageIsGeneric(t *testing.T) {
	err := fmt.Errorf("%w: distribution system rejected the request", derr.ErrProviderPayload)
	s := newService(fakeFlights{}, fakeGDSFlights{err: err}, fakeCurrency{})

	_, errResult := s.SearchFlightsGDS(context.Background(), models.GDSFlightSearchParams{}, nil)
	if errResult.Kind != derr.KindProvider {
		t.Fatalf("expected provider kind, got %q", errResult.Kind)
	}
	if errResult.Message == "" || strings.Contains(errResult.Message, "distribution") {
		t.Fatalf("expected a generic message, got %q", errResult.Message)
	}
}

func TestConvertCurrency_FailureInjectionNeverLeaks(t *testing.T) {
	failures := []error{
		fmt.Errorf("%w: currency conversion request failed; verify currency codes and try again", derr.ErrSourceUnavailable),
		fmt.Errorf("%w: currency conversion request failed; verify currency codes and try again", derr.ErrProviderPayload),
	}

	for _, failure := range failures {
		s := newService(fakeFlights{}, fakeGDSFlights{}, fakeCurrency{err: failure})

		_, errResult := s.ConvertCurrency(context.Background(), models.CurrencyParams{})
		if errResult == nil {
			t.Fatal("expected error result")
		}
		if strings.Contains(errResult.Message, secretValue) {
			t.Fatalf("message leaks the secret: %q", errResult.Message)
		}
		if strings.Contains(errResult.Message, "http") || strings.Contains(errResult.Message, "/v6/") {
			t.Fatalf("message leaks a URL: %q", errResult.Message)
		}
	}
}

func TestDistance_KnownRoute(t *testing.T) {
	s := newService(fakeFlights{}, fakeGDSFlights{}, fakeCurrency{})

	// JFK to LHR, roughly 5555 km.
	result, errResult := s.Distance(models.DistanceParams{
		Lat1: 40.6413, Lon1: -73.7781,
		Lat2: 51.4700, Lon2: -0.4543,
	})
	if errResult != nil {
		t.Fatalf("unexpected error result: %#v", errResult)
	}
	if math.Abs(result.DistanceKm-5555) > 50 {
		t.Fatalf("unexpected distance %v km", result.DistanceKm)
	}
	if result.Unit != "km" {
		t.Fatalf("expected km default, got %q", result.Unit)
	}
}

func TestDistance_UnitConversion(t *testing.T) {
	s := newService(fakeFlights{}, fakeGDSFlights{}, fakeCurrency{})

	result, errResult := s.Distance(models.DistanceParams{
		Lat1: 0, Lon1: 0, Lat2: 0, Lon2: 1, Unit: "miles",
	})
	if errResult != nil {
		t.Fatalf("unexpected error result: %#v", errResult)
	}
	if result.Unit != "miles" {
		t.Fatalf("expected miles, got %q", result.Unit)
	}
	if math.Abs(result.Distance-result.DistanceKm*0.621371) > 1e-9 {
		t.Fatalf("conversion mismatch: %v miles for %v km", result.Distance, result.DistanceKm)
	}
}

func TestDistance_InvalidCoordinates(t *testing.T) {
	s := newService(fakeFlights{}, fakeGDSFlights{}, fakeCurrency{})

	_, errResult := s.Distance(models.DistanceParams{Lat1: 120})
	if errResult == nil || errResult.Kind != derr.KindValidation {
		t.Fatalf("expected validation error, got %#v", errResult)
	}
}
