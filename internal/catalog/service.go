// Package catalog holds the live product list and its persisted mirror.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/kvstore"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/metrics"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// Service exposes catalog reads and admin mutations.
type Service interface {
	List(ctx context.Context) []types.Product
	Get(ctx context.Context, productID string) (*types.Product, error)
	Filter(ctx context.Context, category, search string) []types.Product
	Categories(ctx context.Context) []types.Category
	Upsert(ctx context.Context, product types.Product) error
	Delete(ctx context.Context, productID string) error
}

type entryStore interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, value string) error
}

// service keeps the catalog in memory, ordered by insertion, and mirrors
// every mutation to the key/value store so the list survives restarts.
type service struct {
	mu       sync.RWMutex
	products []types.Product

	store   entryStore
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
}

// NewService loads the persisted catalog, falling back to the seed list
// when nothing is stored yet or the stored payload is unreadable.
func NewService(ctx context.Context, store entryStore, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("entry store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}

	svc := &service{store: store, logg: logg, metrics: m}

	raw, found, err := store.Load(ctx, kvstore.KeyProducts)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog")
	}
	if !found {
		svc.products = SeedProducts()
		if err := svc.persist(ctx, svc.products); err != nil {
			return nil, err
		}
		return svc, nil
	}

	var stored []types.Product
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logg.Warn(logg.WithField(ctx, "key", kvstore.KeyProducts), "stored catalog unreadable, reseeding defaults")
		svc.products = SeedProducts()
		return svc, nil
	}
	svc.products = stored
	return svc, nil
}

// List returns the full catalog in insertion order.
func (s *service) List(_ context.Context) []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.products)
}

// Get returns the product with the given id.
func (s *service) Get(_ context.Context, productID string) (*types.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == productID {
			clone := p.Clone()
			return &clone, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// Filter narrows the catalog by category and a case-insensitive substring
// match over product name and code. An empty search matches everything,
// as does the "All" category.
func (s *service) Filter(_ context.Context, category, search string) []types.Product {
	needle := strings.ToLower(search)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && category != types.CategoryAll && p.Category.String() != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Code), needle) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// Categories returns the filter pill table.
func (s *service) Categories(_ context.Context) []types.Category {
	return SeedCategories()
}

// Upsert replaces the product with the same id in place, or appends it to
// the end of the catalog when the id is new.
func (s *service) Upsert(ctx context.Context, product types.Product) error {
	if strings.TrimSpace(product.ID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.products)
	replaced := false
	for i, p := range next {
		if p.ID == product.ID {
			next[i] = product.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, product.Clone())
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.products = next
	s.metrics.IncCatalogMutation("save")
	return nil
}

// Delete removes the product with the given id. An unknown id is a no-op.
func (s *service) Delete(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]types.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID == productID {
			continue
		}
		next = append(next, p.Clone())
	}
	if len(next) == len(s.products) {
		return nil
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.products = next
	s.metrics.IncCatalogMutation("delete")
	return nil
}

func (s *service) persist(ctx context.Context, products []types.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "encode catalog")
	}
	if err := s.store.Save(ctx, kvstore.KeyProducts, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist catalog")
	}
	return nil
}

func cloneAll(products []types.Product) []types.Product {
	out := make([]types.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
