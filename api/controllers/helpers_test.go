package controllers

import (
	"context"
	"io"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nexlyn/storefront-backend/internal/admin"
	"github.com/nexlyn/storefront-backend/internal/catalog"
	"github.com/nexlyn/storefront-backend/internal/chat"
	"github.com/nexlyn/storefront-backend/internal/settings"
	"github.com/nexlyn/storefront-backend/internal/view"
	"github.com/nexlyn/storefront-backend/pkg/enums"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/session"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

func chiRouteContext(key, value string) func(context.Context) context.Context {
	return func(ctx context.Context) context.Context {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add(key, value)
		return context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

type fakeSessions struct {
	states map[string]*session.State
	saves  int
}

func (f *fakeSessions) Fetch(_ context.Context, sessionID string) (*session.State, error) {
	if state, ok := f.states[sessionID]; ok {
		return state, nil
	}
	return session.NewState(), nil
}

func (f *fakeSessions) Save(_ context.Context, sessionID string, state *session.State) error {
	if f.states == nil {
		f.states = map[string]*session.State{}
	}
	f.states[sessionID] = state
	f.saves++
	return nil
}

type fakeCatalog struct {
	products []types.Product
	filtered []types.Product
}

var _ catalog.Service = (*fakeCatalog)(nil)

func (f *fakeCatalog) List(context.Context) []types.Product {
	return f.products
}

func (f *fakeCatalog) Get(_ context.Context, productID string) (*types.Product, error) {
	for _, p := range f.products {
		if p.ID == productID {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (f *fakeCatalog) Filter(context.Context, string, string) []types.Product {
	return f.filtered
}

func (f *fakeCatalog) Categories(context.Context) []types.Category {
	return []types.Category{{ID: "all", Name: "All Products", Icon: enums.CategoryIconGrid, Count: len(f.products)}}
}

func (f *fakeCatalog) Upsert(context.Context, types.Product) error {
	return nil
}

func (f *fakeCatalog) Delete(context.Context, string) error {
	return nil
}

type stubViewService struct {
	notFound bool
}

var _ view.Service = (stubViewService{})

func (stubViewService) Navigate(_ context.Context, state *session.State, target enums.View) error {
	state.View = target
	state.SearchText = ""
	return nil
}

func (s stubViewService) OpenDetail(_ context.Context, state *session.State, productID string) error {
	if s.notFound {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	state.View = enums.ViewDetail
	state.ActiveProductID = productID
	return nil
}

func (stubViewService) SetSearch(_ context.Context, state *session.State, text string) error {
	state.SearchText = text
	return nil
}

func (stubViewService) SelectCategory(_ context.Context, state *session.State, categoryID string) error {
	state.SelectedCategory = categoryID
	return nil
}

func (stubViewService) SelectBannerSlide(context.Context, *session.State, int) error {
	return nil
}

func (stubViewService) Banner(context.Context) view.BannerState {
	return view.BannerState{}
}

type fakeSettings struct {
	settings types.Settings
	err      error
}

var _ settings.Service = (*fakeSettings)(nil)

func (f *fakeSettings) Get(context.Context) (*types.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.settings
	return &out, nil
}

func (f *fakeSettings) Update(_ context.Context, values types.Settings) (*types.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.settings = values
	return &values, nil
}

func (f *fakeSettings) ToggleTheme(context.Context) (enums.Theme, error) {
	return enums.ThemeDark, f.err
}

type fakeChat struct {
	transcript []types.Message
	sent       []string
	err        error
}

var _ chat.Service = (*fakeChat)(nil)

func (f *fakeChat) Messages(context.Context, string) ([]types.Message, error) {
	return f.transcript, f.err
}

func (f *fakeChat) Send(_ context.Context, _ string, text string) ([]types.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, text)
	return f.transcript, nil
}

type fakeAdmin struct {
	passcode   string
	drafts     []types.Product
	deleted    []string
	uploadURL  string
	lastUpload string
}

var _ admin.Service = (*fakeAdmin)(nil)

func (f *fakeAdmin) Unlock(_ context.Context, state *session.State, passcode string) error {
	if passcode != f.passcode {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid passcode")
	}
	state.AdminUnlocked = true
	state.View = enums.ViewAdmin
	return nil
}

func (f *fakeAdmin) Lock(_ context.Context, state *session.State) error {
	state.AdminUnlocked = false
	state.Draft = nil
	return nil
}

func (f *fakeAdmin) requireUnlocked(state *session.State) error {
	if !state.AdminUnlocked {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin access required")
	}
	return nil
}

func (f *fakeAdmin) StartCreate(_ context.Context, state *session.State) (*types.Product, error) {
	if err := f.requireUnlocked(state); err != nil {
		return nil, err
	}
	draft := types.Product{ID: "draft-new", Category: enums.ProductCategoryRouting}
	state.Draft = &draft
	return &draft, nil
}

func (f *fakeAdmin) StartEdit(_ context.Context, state *session.State, productID string) (*types.Product, error) {
	if err := f.requireUnlocked(state); err != nil {
		return nil, err
	}
	draft := types.Product{ID: productID}
	state.Draft = &draft
	return &draft, nil
}

func (f *fakeAdmin) UpdateDraft(_ context.Context, state *session.State, draft types.Product) (*types.Product, error) {
	if err := f.requireUnlocked(state); err != nil {
		return nil, err
	}
	state.Draft = &draft
	return &draft, nil
}

func (f *fakeAdmin) SaveDraft(_ context.Context, state *session.State) (*types.Product, error) {
	if err := f.requireUnlocked(state); err != nil {
		return nil, err
	}
	if state.Draft == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "no open draft")
	}
	saved := *state.Draft
	f.drafts = append(f.drafts, saved)
	state.Draft = nil
	return &saved, nil
}

func (f *fakeAdmin) CancelDraft(_ context.Context, state *session.State) error {
	if err := f.requireUnlocked(state); err != nil {
		return err
	}
	state.Draft = nil
	return nil
}

func (f *fakeAdmin) DeleteProduct(_ context.Context, state *session.State, productID string) error {
	if err := f.requireUnlocked(state); err != nil {
		return err
	}
	f.deleted = append(f.deleted, productID)
	return nil
}

func (f *fakeAdmin) UpdateSettings(_ context.Context, state *session.State, values types.Settings) (*types.Settings, error) {
	if err := f.requireUnlocked(state); err != nil {
		return nil, err
	}
	return &values, nil
}

func (f *fakeAdmin) UploadImage(_ context.Context, state *session.State, filename string, file io.Reader) (string, error) {
	if err := f.requireUnlocked(state); err != nil {
		return "", err
	}
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	f.lastUpload = filename
	return f.uploadURL, nil
}
