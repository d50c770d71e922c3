// Package admin implements the passcode-gated management panel operations.
package admin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/nexlyn/storefront-backend/internal/catalog"
	"github.com/nexlyn/storefront-backend/internal/settings"
	"github.com/nexlyn/storefront-backend/pkg/config"
	"github.com/nexlyn/storefront-backend/pkg/enums"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/session"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// defaultStatus is the stock label a freshly created draft starts with.
const defaultStatus = "In Stock"

// Service drives the admin panel: the session gate, the product draft
// lifecycle, global settings edits, and image uploads.
type Service interface {
	Unlock(ctx context.Context, state *session.State, passcode string) error
	Lock(ctx context.Context, state *session.State) error
	StartCreate(ctx context.Context, state *session.State) (*types.Product, error)
	StartEdit(ctx context.Context, state *session.State, productID string) (*types.Product, error)
	UpdateDraft(ctx context.Context, state *session.State, draft types.Product) (*types.Product, error)
	SaveDraft(ctx context.Context, state *session.State) (*types.Product, error)
	CancelDraft(ctx context.Context, state *session.State) error
	DeleteProduct(ctx context.Context, state *session.State, productID string) error
	UpdateSettings(ctx context.Context, state *session.State, values types.Settings) (*types.Settings, error)
	UploadImage(ctx context.Context, state *session.State, filename string, file io.Reader) (string, error)
}

type imageUploader interface {
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
}

type service struct {
	catalog  catalog.Service
	settings settings.Service
	uploader imageUploader
	passcode string
	logg     *logger.Logger
}

// NewService constructs the admin service.
func NewService(catalogSvc catalog.Service, settingsSvc settings.Service, uploader imageUploader, cfg config.AdminConfig, logg *logger.Logger) (Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if settingsSvc == nil {
		return nil, fmt.Errorf("settings service required")
	}
	if uploader == nil {
		return nil, fmt.Errorf("image uploader required")
	}
	if strings.TrimSpace(cfg.Passcode) == "" {
		return nil, fmt.Errorf("admin passcode required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		catalog:  catalogSvc,
		settings: settingsSvc,
		uploader: uploader,
		passcode: cfg.Passcode,
		logg:     logg,
	}, nil
}

// Unlock compares the submitted passcode verbatim and opens the gate for
// this session only.
func (s *service) Unlock(ctx context.Context, state *session.State, passcode string) error {
	if passcode != s.passcode {
		s.logg.Warn(ctx, "admin unlock rejected")
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid passcode")
	}
	state.AdminUnlocked = true
	state.View = enums.ViewAdmin
	return nil
}

// Lock closes the gate and discards any open draft.
func (s *service) Lock(_ context.Context, state *session.State) error {
	state.AdminUnlocked = false
	state.Draft = nil
	return nil
}

// StartCreate opens the editor with a blank draft. The id is assigned here
// and never changes afterwards.
func (s *service) StartCreate(_ context.Context, state *session.State) (*types.Product, error) {
	if err := requireUnlocked(state); err != nil {
		return nil, err
	}
	draft := types.Product{
		ID:       uuid.NewString(),
		Category: enums.ProductCategoryRouting,
		Specs:    []string{},
		Status:   defaultStatus,
	}
	state.Draft = &draft
	return state.Draft, nil
}

// StartEdit opens the editor with a copy of an existing product, so edits
// never touch the live catalog until saved.
func (s *service) StartEdit(ctx context.Context, state *session.State, productID string) (*types.Product, error) {
	if err := requireUnlocked(state); err != nil {
		return nil, err
	}
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	clone := product.Clone()
	state.Draft = &clone
	return state.Draft, nil
}

// UpdateDraft replaces the editable fields of the open draft. The draft id
// is immutable.
func (s *service) UpdateDraft(_ context.Context, state *session.State, draft types.Product) (*types.Product, error) {
	if err := requireUnlocked(state); err != nil {
		return nil, err
	}
	if state.Draft == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "no draft open")
	}
	if !draft.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product category")
	}
	draft.ID = state.Draft.ID
	clone := draft.Clone()
	state.Draft = &clone
	return state.Draft, nil
}

// SaveDraft commits the open draft to the catalog and closes the editor.
func (s *service) SaveDraft(ctx context.Context, state *session.State) (*types.Product, error) {
	if err := requireUnlocked(state); err != nil {
		return nil, err
	}
	if state.Draft == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "no draft open")
	}
	if strings.TrimSpace(state.Draft.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if strings.TrimSpace(state.Draft.Code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product code is required")
	}

	saved := state.Draft.Clone()
	if err := s.catalog.Upsert(ctx, saved); err != nil {
		return nil, err
	}
	state.Draft = nil
	return &saved, nil
}

// CancelDraft closes the editor without saving.
func (s *service) CancelDraft(_ context.Context, state *session.State) error {
	if err := requireUnlocked(state); err != nil {
		return err
	}
	state.Draft = nil
	return nil
}

// DeleteProduct removes a product from the catalog. Unknown ids are a
// no-op, matching the delete button on the management grid.
func (s *service) DeleteProduct(ctx context.Context, state *session.State, productID string) error {
	if err := requireUnlocked(state); err != nil {
		return err
	}
	return s.catalog.Delete(ctx, productID)
}

// UpdateSettings persists the global settings form.
func (s *service) UpdateSettings(ctx context.Context, state *session.State, values types.Settings) (*types.Settings, error) {
	if err := requireUnlocked(state); err != nil {
		return nil, err
	}
	return s.settings.Update(ctx, values)
}

// UploadImage stores a product image and returns its hosted URL.
func (s *service) UploadImage(ctx context.Context, state *session.State, filename string, file io.Reader) (string, error) {
	if err := requireUnlocked(state); err != nil {
		return "", err
	}
	return s.uploader.UploadImage(ctx, filename, file)
}

func requireUnlocked(state *session.State) error {
	if state == nil || !state.AdminUnlocked {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin access required")
	}
	return nil
}
