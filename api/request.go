package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/errs"
)

// maxBodySize bounds request bodies on write endpoints.
const maxBodySize int64 = 1 << 20

// decodeJSON reads a single JSON document into dst. Unknown members are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, payloadName string, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return errs.NewUnsupportedMediaTypeError(ct, []string{"application/json"})
		}
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &maxErr):
			return errs.NewMaxBodySizeExceededError(maxBodySize)
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
			return errs.NewInvalidJSONError(err)
		default:
			// type mismatches and unknown fields
			apiErr := errs.NewMalformedPayloadError(payloadName, err)
			apiErr.Details = err.Error()
			return apiErr
		}
	}
	if dec.More() {
		return errs.NewInvalidJSONError(errors.New("body must contain a single JSON document"))
	}
	return nil
}

// projectIDParam parses the {projectID} URL parameter as a positive integer.
func projectIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "projectID")
	if raw == "" {
		return 0, errs.NewBadRequestError("missing projectID")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewInvalidPathParamError("projectID", raw)
	}
	return id, nil
}
