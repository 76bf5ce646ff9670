package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the body of every error reply.
type Response struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Message: message})
}

// RespondWithKind reports a classified failure, kind being a machine-readable error class.
func RespondWithKind(w http.ResponseWriter, status int, kind, message string) {
	RespondWithJSON(w, status, Response{Message: message, Kind: kind})
}
