package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexlyn/storefront-backend/api/middleware"
	"github.com/nexlyn/storefront-backend/api/responses"
	"github.com/nexlyn/storefront-backend/api/validators"
	adminsvc "github.com/nexlyn/storefront-backend/internal/admin"
	"github.com/nexlyn/storefront-backend/pkg/enums"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/session"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// maxUploadBytes caps admin image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type unlockRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

type draftStartRequest struct {
	ProductID string `json:"productId,omitempty"`
}

type draftUpdateRequest struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Category    string   `json:"category" validate:"required"`
	Specs       []string `json:"specs"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

type settingsUpdateRequest struct {
	Theme          string `json:"theme" validate:"required,oneof=light dark"`
	WhatsAppNumber string `json:"whatsappNumber" validate:"required"`
	AboutContent   string `json:"aboutContent"`
	Address        string `json:"address"`
	MapURL         string `json:"mapUrl"`
}

// withSession loads the visitor state, runs fn, and saves the state back
// when fn succeeds.
func withSession(sessions sessionStore, logg *logger.Logger, fn func(r *http.Request, state *session.State) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		state, err := sessions.Fetch(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		data, err := fn(r, state)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := sessions.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, data)
	}
}

// AdminUnlock opens the management gate for this session.
func AdminUnlock(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		var payload unlockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		if err := svc.Unlock(r.Context(), state, payload.Passcode); err != nil {
			return nil, err
		}
		return state, nil
	})
}

// AdminLock closes the gate.
func AdminLock(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		if err := svc.Lock(r.Context(), state); err != nil {
			return nil, err
		}
		return state, nil
	})
}

// AdminDraftStart opens the editor, blank or pre-filled from an existing
// product.
func AdminDraftStart(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		var payload draftStartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		if payload.ProductID == "" {
			return svc.StartCreate(r.Context(), state)
		}
		return svc.StartEdit(r.Context(), state, payload.ProductID)
	})
}

// AdminDraftUpdate replaces the open draft's editable fields.
func AdminDraftUpdate(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		var payload draftUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.UpdateDraft(r.Context(), state, payload.toProduct())
	})
}

// AdminDraftSave commits the open draft to the catalog.
func AdminDraftSave(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		return svc.SaveDraft(r.Context(), state)
	})
}

// AdminDraftCancel closes the editor without saving.
func AdminDraftCancel(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		if err := svc.CancelDraft(r.Context(), state); err != nil {
			return nil, err
		}
		return state, nil
	})
}

// AdminProductDelete removes a product from the catalog.
func AdminProductDelete(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		productID := chi.URLParam(r, "productId")
		if err := svc.DeleteProduct(r.Context(), state, productID); err != nil {
			return nil, err
		}
		return map[string]string{"deleted": productID}, nil
	})
}

// AdminSettingsUpdate saves the global settings form.
func AdminSettingsUpdate(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		var payload settingsUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.UpdateSettings(r.Context(), state, payload.toSettings())
	})
}

// AdminMediaUpload stores a product image and returns its hosted URL.
func AdminMediaUpload(svc adminsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return withSession(sessions, logg, func(r *http.Request, state *session.State) (any, error) {
		r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid upload form")
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "image file is required")
		}
		defer func() { _ = file.Close() }()

		url, err := svc.UploadImage(r.Context(), state, header.Filename, file)
		if err != nil {
			return nil, err
		}
		return map[string]string{"url": url}, nil
	})
}

func (p draftUpdateRequest) toProduct() types.Product {
	specs := p.Specs
	if specs == nil {
		specs = []string{}
	}
	return types.Product{
		Name:        p.Name,
		Code:        p.Code,
		Category:    enums.ProductCategory(p.Category),
		Specs:       specs,
		Status:      p.Status,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

func (p settingsUpdateRequest) toSettings() types.Settings {
	return types.Settings{
		Theme:          enums.Theme(p.Theme),
		WhatsAppNumber: p.WhatsAppNumber,
		AboutContent:   p.AboutContent,
		Address:        p.Address,
		MapURL:         p.MapURL,
	}
}
