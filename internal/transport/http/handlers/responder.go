package handlers

import (
	"encoding/json"
	"net/http"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErrorResult(w http.ResponseWriter, result *models.ErrorResult) {
	writeJSON(w, statusForKind(result.Kind), result)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func statusForKind(kind derr.Kind) int {
	switch kind {
	case derr.KindValidation:
		return http.StatusBadRequest
	case derr.KindConfiguration:
		return http.StatusServiceUnavailable
	case derr.KindProvider:
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
