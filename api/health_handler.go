package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder Responder
}

func newHealthHandler() healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{responder: NewResponder(logger)}
}

func (h healthHandler) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Portfolio Backend API is running"})
	}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, MessageResponse{Message: "OK"})
	}
}
