package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Error string `json:"error" example:"not found" validate:"required"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResponse{Error: msg})
}

// writeInternal logs err with its attributes and answers 500.
func writeInternal(w http.ResponseWriter, op string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", err.Error()))
	slog.Error(op+" failed", attrs...)
	writeError(w, http.StatusInternalServerError, "internal error")
}
