// Package view mutates the per-session navigation state.
package view

import (
	"context"
	"fmt"

	"github.com/nexlyn/storefront-backend/internal/catalog"
	"github.com/nexlyn/storefront-backend/pkg/enums"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/session"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// Service applies navigation operations to a visitor's session state.
type Service interface {
	Navigate(ctx context.Context, state *session.State, target enums.View) error
	OpenDetail(ctx context.Context, state *session.State, productID string) error
	SetSearch(ctx context.Context, state *session.State, text string) error
	SelectCategory(ctx context.Context, state *session.State, categoryID string) error
	SelectBannerSlide(ctx context.Context, state *session.State, slideIndex int) error
	Banner(ctx context.Context) BannerState
}

type productReader interface {
	Get(ctx context.Context, productID string) (*types.Product, error)
}

type service struct {
	products productReader
	rotator  *Rotator
}

// NewService constructs the view service.
func NewService(products productReader, rotator *Rotator) (Service, error) {
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	if rotator == nil {
		return nil, fmt.Errorf("banner rotator required")
	}
	return &service{products: products, rotator: rotator}, nil
}

// Navigate switches top-level screens. Leaving for a menu destination
// always clears the search box, matching the storefront header behavior.
func (s *service) Navigate(_ context.Context, state *session.State, target enums.View) error {
	if !target.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown view")
	}
	// Detail is only entered through OpenDetail, which verifies the product.
	if target == enums.ViewDetail {
		return pkgerrors.New(pkgerrors.CodeValidation, "detail requires a product")
	}
	state.View = target
	state.SearchText = ""
	state.ActiveProductID = ""
	return nil
}

// OpenDetail shows the detail screen for an existing product.
func (s *service) OpenDetail(ctx context.Context, state *session.State, productID string) error {
	if _, err := s.products.Get(ctx, productID); err != nil {
		return err
	}
	state.View = enums.ViewDetail
	state.ActiveProductID = productID
	return nil
}

// SetSearch updates the search text. Typing from any other screen jumps
// the visitor to the products grid so results are visible immediately.
func (s *service) SetSearch(_ context.Context, state *session.State, text string) error {
	state.SearchText = text
	if text != "" && state.View != enums.ViewProducts {
		state.View = enums.ViewProducts
		state.ActiveProductID = ""
	}
	return nil
}

// SelectCategory picks a filter pill and shows the products grid.
func (s *service) SelectCategory(_ context.Context, state *session.State, categoryID string) error {
	if categoryID != types.CategoryAll {
		if _, err := enums.ParseProductCategory(categoryID); err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
		}
	}
	state.SelectedCategory = categoryID
	state.View = enums.ViewProducts
	state.ActiveProductID = ""
	return nil
}

// SelectBannerSlide handles a hero banner click. Slides without a category
// are purely decorative and leave the state untouched.
func (s *service) SelectBannerSlide(_ context.Context, state *session.State, slideIndex int) error {
	if slideIndex < 0 || slideIndex >= len(heroSlides) {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown banner slide")
	}
	slide := heroSlides[slideIndex]
	if slide.CategoryID == "" {
		return nil
	}
	state.SelectedCategory = slide.CategoryID
	state.View = enums.ViewProducts
	state.ActiveProductID = ""
	return nil
}

// Banner exposes the rotation snapshot.
func (s *service) Banner(_ context.Context) BannerState {
	return s.rotator.State()
}

var _ productReader = (catalog.Service)(nil)
