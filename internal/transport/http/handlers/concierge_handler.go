package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tripdeck/concierge/internal/application/service"
	"github.com/tripdeck/concierge/internal/domain/models"
)

// ConciergeHandler exposes each service operation as one JSON endpoint. It
// is pass-through glue: decode, delegate, encode.
type ConciergeHandler struct {
	log     *zap.Logger
	service *service.ConciergeService
	timeout time.Duration
}

func NewConciergeHandler(log *zap.Logger, svc *service.ConciergeService, timeout time.Duration) *ConciergeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ConciergeHandler{log: log, service: svc, timeout: timeout}
}

func (h *ConciergeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/v1/flights/search", h.SearchFlights)
	mux.HandleFunc("/v1/flights/gds/search", h.SearchFlightsGDS)
	mux.HandleFunc("/v1/hotels/search", h.SearchHotels)
	mux.HandleFunc("/v1/hotels/gds/list", h.ListHotelsGDS)
	mux.HandleFunc("/v1/hotels/gds/offers", h.SearchHotelOffersGDS)
	mux.HandleFunc("/v1/activities/search", h.SearchActivities)
	mux.HandleFunc("/v1/activities/", h.ActivityDetails)
	mux.HandleFunc("/v1/events/search", h.SearchEvents)
	mux.HandleFunc("/v1/currency/convert", h.ConvertCurrency)
	mux.HandleFunc("/v1/geocode", h.Geocode)
	mux.HandleFunc("/v1/geocode/reverse", h.ReverseGeocode)
	mux.HandleFunc("/v1/weather/forecast", h.WeatherForecast)
	mux.HandleFunc("/v1/distance", h.Distance)
}

func (h *ConciergeHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "trip-concierge",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *ConciergeHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	var params models.FlightSearchParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.SearchFlights(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type gdsFlightRequest struct {
	models.GDSFlightSearchParams
	Accessibility *models.AccessibilityRequest `json:"accessibility,omitempty"`
}

func (h *ConciergeHandler) SearchFlightsGDS(w http.ResponseWriter, r *http.Request) {
	var req gdsFlightRequest
	if !h.decode(w, r, &req) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.SearchFlightsGDS(ctx, req.GDSFlightSearchParams, req.Accessibility)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	var params models.HotelSearchParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.SearchHotels(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) ListHotelsGDS(w http.ResponseWriter, r *http.Request) {
	var params models.GDSHotelListParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.ListHotelsGDS(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) SearchHotelOffersGDS(w http.ResponseWriter, r *http.Request) {
	var params models.GDSHotelOfferParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.SearchHotelOffersGDS(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) SearchActivities(w http.ResponseWriter, r *http.Request) {
	var params models.ActivitySearchParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.SearchActivities(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) ActivityDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/activities/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid path, expected /v1/activities/{id}")
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.ActivityDetails(ctx, id)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	var params models.EventSearchParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.SearchEvents(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	var params models.CurrencyParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.ConvertCurrency(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	var params models.GeocodeParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.Geocode(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	var params models.ReverseGeocodeParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.ReverseGeocode(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) WeatherForecast(w http.ResponseWriter, r *http.Request) {
	var params models.WeatherParams
	if !h.decode(w, r, &params) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, errResult := h.service.WeatherForecast(ctx, params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) Distance(w http.ResponseWriter, r *http.Request) {
	var params models.DistanceParams
	if !h.decode(w, r, &params) {
		return
	}

	result, errResult := h.service.Distance(params)
	if errResult != nil {
		writeErrorResult(w, errResult)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ConciergeHandler) decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *ConciergeHandler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}
