package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// DataResponse is the envelope for every successful response body.
type DataResponse struct {
	Data any `json:"data"`
}

// Paging describes the pagination block returned alongside search results.
type Paging struct {
	Page      int   `json:"page"`
	TotalPage int64 `json:"total_page"`
	TotalItem int64 `json:"total_item"`
}

// PageResponse is the envelope for paginated list responses.
type PageResponse struct {
	Data   any    `json:"data"`
	Paging Paging `json:"paging"`
}

// ErrorResponse is the envelope for every error response body. Errors is
// a string for most failures and an array of field messages for
// validation failures.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

// RespondWithJSON writes a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData wraps the payload in the {data} envelope.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	RespondWithJSON(w, r, status, DataResponse{Data: data})
}

// RespondWithPage wraps a page of results and its paging block.
func RespondWithPage(w http.ResponseWriter, r *http.Request, data any, paging Paging) {
	RespondWithJSON(w, r, http.StatusOK, PageResponse{Data: data, Paging: paging})
}

// RespondWithError wraps the error detail in the {errors} envelope. The
// trace ID is logged rather than returned, keeping the envelope identical
// across every failure path.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, errs any) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "error response",
		slog.Int("status_code", status),
		slog.Any("errors", errs),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{Errors: errs})
}
