package controllers

import (
	"net/http"

	"github.com/nexlyn/storefront-backend/api/middleware"
	"github.com/nexlyn/storefront-backend/api/responses"
	"github.com/nexlyn/storefront-backend/api/validators"
	chatsvc "github.com/nexlyn/storefront-backend/internal/chat"
	"github.com/nexlyn/storefront-backend/pkg/logger"
)

type chatSendRequest struct {
	Text string `json:"text" validate:"required"`
}

// ChatMessages returns the session transcript.
func ChatMessages(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		messages, err := svc.Messages(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, messages)
	}
}

// ChatSend relays one visitor message to the assistant.
func ChatSend(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload chatSendRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		messages, err := svc.Send(r.Context(), sessionID, payload.Text)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, messages)
	}
}
