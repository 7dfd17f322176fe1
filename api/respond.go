package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
)

// maxResponseSize caps a JSON body before it is sent.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

type Responder struct {
	logger    zerolog.Logger
	notifyURL string
	client    *http.Client
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger: logger, client: &http.Client{Timeout: 5 * time.Second}}
}

// WithNotifyURL returns a copy that posts unexpected errors to url. An empty url disables notifications.
func (r Responder) WithNotifyURL(url string) Responder {
	r.notifyURL = url
	return r
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large")

		truncatedJSON, _ := json.Marshal(map[string]any{
			"error":        "Response too large",
			"message":      "The requested data exceeds the maximum response size",
			"maxSizeMB":    maxResponseSize / (1024 * 1024),
			"actualSizeMB": len(jsonData) / (1024 * 1024),
			"status":       "error",
		})
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write(truncatedJSON)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// SendErrorNotification posts an unexpected error message to the configured webhook.
func (r Responder) SendErrorNotification(ctx context.Context, errMsg string) {
	if r.notifyURL == "" {
		return
	}

	jsonData, err := json.Marshal(map[string]string{
		"errorMessage": errMsg,
		"requestId":    ctxGetRequestID(ctx),
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("Error marshaling error notification request")
		return
	}

	// the request context may already be cancelled; notification gets its own deadline
	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodPost, r.notifyURL, bytes.NewReader(jsonData))
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building error notification")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error().Err(err).Msg("Error sending error notification")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Error().Msgf("Error notification service returned non-2xx status: %d", resp.StatusCode)
	}
}

// WriteError maps err to a JSON error body. Client errors carry their field and
// details; server errors are logged in full and answered generically.
func (r Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	var apiErr *errs.ApiErr
	ctx := req.Context()

	if !errors.As(err, &apiErr) {
		r.logger.Error().
			Err(err).
			Str("requestId", ctxGetRequestID(ctx)).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Msg("unexpected error")
		r.SendErrorNotification(ctx, err.Error())
		r.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:  "Internal Server Error",
			Status: "error",
		})
		return
	}

	if apiErr.IsServerError() {
		r.logger.Error().
			Str("requestId", ctxGetRequestID(ctx)).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("statusCode", apiErr.StatusCode).
			Msg(apiErr.GetFullError())
		if apiErr.StatusCode == http.StatusInternalServerError {
			r.SendErrorNotification(ctx, apiErr.GetFullError())
		}
		r.WriteJSON(w, apiErr.StatusCode, ErrorResponse{
			Error:  apiErr.Message(),
			Status: "error",
		})
		return
	}

	r.WriteJSON(w, apiErr.StatusCode, ErrorResponse{
		Error:   apiErr.Message(),
		Status:  "error",
		Field:   apiErr.Field,
		Details: apiErr.Details,
	})
}

// WriteTimeoutError writes a standardized timeout error response
func (r Responder) WriteTimeoutError(w http.ResponseWriter, timeout time.Duration, endpoint string) {
	r.WriteJSON(w, http.StatusRequestTimeout, map[string]any{
		"error":           "Request timeout",
		"message":         "The request took too long to process",
		"timeout_seconds": int(timeout.Seconds()),
		"status":          "timeout",
		"endpoint":        endpoint,
	})
}

// WithTimeoutCheck skips the handler when the request context is already done
func (r Responder) WithTimeoutCheck(timeout time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		select {
		case <-req.Context().Done():
			r.WriteTimeoutError(w, timeout, req.URL.Path)
			return
		default:
		}

		handler(w, req)
	}
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
