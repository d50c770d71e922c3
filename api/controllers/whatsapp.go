package controllers

import (
	"net/http"

	"github.com/nexlyn/storefront-backend/api/responses"
	"github.com/nexlyn/storefront-backend/api/validators"
	"github.com/nexlyn/storefront-backend/internal/catalog"
	settingssvc "github.com/nexlyn/storefront-backend/internal/settings"
	"github.com/nexlyn/storefront-backend/pkg/enums"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/types"
	"github.com/nexlyn/storefront-backend/pkg/whatsapp"
)

type whatsappLinkRequest struct {
	Context    string `json:"context" validate:"required,oneof=general product category reseller"`
	ProductID  string `json:"productId,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
}

type whatsappLinkResponse struct {
	Link string `json:"link"`
	Text string `json:"text"`
}

// WhatsAppLink builds the pre-filled wa.me deep link for an inquiry.
func WhatsAppLink(catalogSvc catalog.Service, settingsSvc settingssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload whatsappLinkRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msgContext, err := enums.ParseMessageContext(payload.Context)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown message context"))
			return
		}

		var product *types.Product
		if msgContext == enums.MessageContextProduct {
			if payload.ProductID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "productId is required for product inquiries"))
				return
			}
			product, err = catalogSvc.Get(r.Context(), payload.ProductID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		if msgContext == enums.MessageContextCategory && payload.CategoryID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "categoryId is required for category inquiries"))
			return
		}

		settings, err := settingsSvc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		text := whatsapp.BuildMessage(msgContext, product, payload.CategoryID)
		responses.WriteSuccess(w, whatsappLinkResponse{
			Link: whatsapp.DeepLink(settings.WhatsAppNumber, text),
			Text: text,
		})
	}
}
