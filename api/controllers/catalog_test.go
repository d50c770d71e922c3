package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nexlyn/storefront-backend/api/middleware"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

func TestCatalogListCapsResults(t *testing.T) {
	logg := testLogger(t)
	cat := &fakeCatalog{filtered: []types.Product{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?limit=2", nil)
	rec := httptest.NewRecorder()
	CatalogList(cat, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data []types.Product `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 products got %d", len(envelope.Data))
	}
}

func TestCatalogListRejectsBadLimit(t *testing.T) {
	logg := testLogger(t)
	cat := &fakeCatalog{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?limit=9000", nil)
	rec := httptest.NewRecorder()
	CatalogList(cat, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCatalogDetailMarksSessionAndReturnsProduct(t *testing.T) {
	logg := testLogger(t)
	cat := &fakeCatalog{products: []types.Product{{ID: "prod-1", Name: "hAP ax3"}}}
	sessions := &fakeSessions{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/prod-1", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "prod-1")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	ctx = middleware.WithSessionID(ctx, "visitor-1")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	CatalogDetail(cat, stubViewService{}, sessions, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	state, ok := sessions.states["visitor-1"]
	if !ok {
		t.Fatalf("expected session state to be saved")
	}
	if state.ActiveProductID != "prod-1" {
		t.Fatalf("expected active product prod-1 got %q", state.ActiveProductID)
	}
}

func TestCatalogDetailUnknownProduct(t *testing.T) {
	logg := testLogger(t)
	cat := &fakeCatalog{}
	sessions := &fakeSessions{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/prod-missing", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "prod-missing")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	ctx = middleware.WithSessionID(ctx, "visitor-1")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	CatalogDetail(cat, stubViewService{notFound: true}, sessions, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	if sessions.saves != 0 {
		t.Fatalf("expected no session write for unknown product")
	}
}
