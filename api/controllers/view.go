package controllers

import (
	"net/http"

	"github.com/nexlyn/storefront-backend/api/middleware"
	"github.com/nexlyn/storefront-backend/api/responses"
	"github.com/nexlyn/storefront-backend/api/validators"
	viewsvc "github.com/nexlyn/storefront-backend/internal/view"
	"github.com/nexlyn/storefront-backend/pkg/enums"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/logger"
)

// BannerGet returns the hero rotation snapshot.
func BannerGet(svc viewsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Banner(r.Context()))
	}
}

type navigateRequest struct {
	Action     string `json:"action" validate:"required,oneof=view search category banner"`
	View       string `json:"view,omitempty"`
	Search     string `json:"search,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	SlideIndex int    `json:"slideIndex,omitempty"`
}

// ViewNavigate applies one navigation transition to the visitor session
// and echoes the updated state.
func ViewNavigate(svc viewsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload navigateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := sessions.Fetch(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		switch payload.Action {
		case "view":
			target, parseErr := enums.ParseView(payload.View)
			if parseErr != nil {
				err = pkgerrors.New(pkgerrors.CodeValidation, "unknown view")
			} else {
				err = svc.Navigate(r.Context(), state, target)
			}
		case "search":
			err = svc.SetSearch(r.Context(), state, payload.Search)
		case "category":
			err = svc.SelectCategory(r.Context(), state, payload.CategoryID)
		case "banner":
			err = svc.SelectBannerSlide(r.Context(), state, payload.SlideIndex)
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := sessions.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		logg.Info(logg.WithView(r.Context(), state.View.String()), "navigation applied")
		responses.WriteSuccess(w, state)
	}
}
