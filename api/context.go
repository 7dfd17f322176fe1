package api

import (
	"context"
)

type keyType string

const (
	requestIDKey keyType = "requestID"
	localeKey    keyType = "locale"
)

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ctxGetRequestID returns the request ID, or "" outside of a request
func ctxGetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}

// ctxWithLocale adds the negotiated display locale to the context
func ctxWithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, localeKey, loc)
}

// ctxGetLocale returns the negotiated locale, or DefaultLocale when none was set
func ctxGetLocale(ctx context.Context) Locale {
	if loc, ok := ctx.Value(localeKey).(Locale); ok {
		return loc
	}
	return DefaultLocale
}
