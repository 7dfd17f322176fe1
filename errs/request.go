package errs

import (
	"fmt"
	"net/http"
)

// NewInvalidPathParamError is returned when a URL parameter cannot be parsed.
func NewInvalidPathParamError(param, value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("Invalid path parameter %s: %q", param, value),
		Field:      param,
	}
}

// NewInvalidQueryParamError is returned when a query parameter has an unusable value.
func NewInvalidQueryParamError(param, value, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("Invalid query parameter %s=%q: %s", param, value, reason),
		Field:      param,
	}
}
