package rest

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeValidationError(w http.ResponseWriter, ve *domain.ValidationError) {
	resp := errorResponse{
		Error:  "validation failed",
		Fields: make([]fieldErrorResponse, len(ve.Errors)),
	}
	for i, fe := range ve.Errors {
		resp.Fields[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
	}
	writeJSON(w, http.StatusBadRequest, resp)
}
