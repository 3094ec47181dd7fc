package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tripdeck/concierge/internal/application/service"
	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
)

type fakeCurrency struct {
	result models.CurrencyConversion
	err    error
}

func (f fakeCurrency) Convert(context.Context, models.CurrencyParams) (models.CurrencyConversion, error) {
	return f.result, f.err
}

func newTestMux(currency fakeCurrency) *http.ServeMux {
	svc := service.NewConciergeService(zap.NewNop(), nil, nil, nil, nil, nil, nil, currency, nil, nil)
	mux := http.NewServeMux()
	NewConciergeHandler(zap.NewNop(), svc, time.Second).Register(mux)
	return mux
}

func TestHealth(t *testing.T) {
	mux := newTestMux(fakeCurrency{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestDistance_EndToEnd(t *testing.T) {
	mux := newTestMux(fakeCurrency{})

	payload := `{"lat1":40.6413,"lon1":-73.7781,"lat2":51.47,"lon2":-0.4543,"unit":"miles"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/distance", strings.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var result models.DistanceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Unit != "miles" || result.Distance <= 0 {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestDistance_ValidationStatus(t *testing.T) {
	mux := newTestMux(fakeCurrency{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/distance", strings.NewReader(`{"lat1":120}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var result models.ErrorResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Kind != derr.KindValidation {
		t.Fatalf("unexpected kind %q", result.Kind)
	}
}

func TestConvertCurrency_KindToStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"configuration", fmt.Errorf("%w: EXCHANGE_RATE_API_KEY environment variable is required", derr.ErrMissingCredential), http.StatusServiceUnavailable},
		{"transport", fmt.Errorf("%w: currency conversion request failed", derr.ErrSourceUnavailable), http.StatusBadGateway},
		{"provider", fmt.Errorf("%w: currency conversion request failed", derr.ErrProviderPayload), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux := newTestMux(fakeCurrency{err: tc.err})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/currency/convert", strings.NewReader(`{"from_currency":"USD","to_currency":"EUR","amount":1}`)))

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestDecode_RejectsGetAndBadBody(t *testing.T) {
	mux := newTestMux(fakeCurrency{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/currency/convert", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/currency/convert", strings.NewReader(`{`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestActivityDetails_PathValidation(t *testing.T) {
	mux := newTestMux(fakeCurrency{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/activities/a/b", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
