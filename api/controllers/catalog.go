package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nexlyn/storefront-backend/api/middleware"
	"github.com/nexlyn/storefront-backend/api/responses"
	"github.com/nexlyn/storefront-backend/api/validators"
	"github.com/nexlyn/storefront-backend/internal/catalog"
	viewsvc "github.com/nexlyn/storefront-backend/internal/view"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// CatalogList returns the catalog filtered by category and search text.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if category == "" {
			category = types.CategoryAll
		}
		search := r.URL.Query().Get("q")

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := svc.Filter(r.Context(), category, search)
		if limit > 0 && len(products) > limit {
			products = products[:limit]
		}

		responses.WriteSuccess(w, products)
	}
}

// CatalogDetail returns one product and marks it as the session's active
// product.
func CatalogDetail(catalogSvc catalog.Service, viewSvc viewsvc.Service, sessions sessionStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		sessionID := middleware.SessionIDFromContext(r.Context())

		state, err := sessions.Fetch(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := viewSvc.OpenDetail(r.Context(), state, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := sessions.Save(r.Context(), sessionID, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.Get(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CategoriesList returns the filter pill table.
func CategoriesList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Categories(r.Context()))
	}
}
