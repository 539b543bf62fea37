package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// validate checks request bodies against their struct tags.
var validate = validator.New()

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// ValidationErrorResponse represents a failed request-body validation
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Error message
	// default: validation failed
	Error string `json:"error"`

	// Per-field failures, field name to violated rule
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeValidationError maps validator failures to a 422 response.
func writeValidationError(w http.ResponseWriter, err error) {
	resp := ValidationErrorResponse{Error: "validation failed"}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		resp.Fields = make(map[string]string, len(vErrs))
		for _, fe := range vErrs {
			resp.Fields[fe.Field()] = fe.Tag()
		}
	}

	writeJSON(w, http.StatusUnprocessableEntity, resp)
}

// idParam extracts a positive integer id from the named URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
