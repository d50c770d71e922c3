// Package settings manages the storefront's editable global content.
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexlyn/storefront-backend/pkg/config"
	"github.com/nexlyn/storefront-backend/pkg/enums"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/kvstore"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

// Service reads and writes the five storefront settings values.
type Service interface {
	Get(ctx context.Context) (*types.Settings, error)
	Update(ctx context.Context, settings types.Settings) (*types.Settings, error)
	ToggleTheme(ctx context.Context) (enums.Theme, error)
}

type entryStore interface {
	Load(ctx context.Context, key string) (string, bool, error)
	SaveAll(ctx context.Context, values map[string]string) error
}

type service struct {
	store    entryStore
	defaults config.DefaultsConfig
	logg     *logger.Logger
}

// NewService constructs the settings service with compiled-in fallbacks.
func NewService(store entryStore, defaults config.DefaultsConfig, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("entry store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, defaults: defaults, logg: logg}, nil
}

// Get assembles the current settings. Each key falls back to its default
// independently, so one missing value never blanks the rest.
func (s *service) Get(ctx context.Context) (*types.Settings, error) {
	theme, err := s.loadKey(ctx, kvstore.KeyTheme, s.defaults.Theme)
	if err != nil {
		return nil, err
	}
	parsedTheme, parseErr := enums.ParseTheme(theme)
	if parseErr != nil {
		s.logg.Warn(s.logg.WithField(ctx, "theme", theme), "stored theme invalid, using default")
		parsedTheme, _ = enums.ParseTheme(s.defaults.Theme)
	}

	number, err := s.loadKey(ctx, kvstore.KeyWhatsApp, s.defaults.WhatsAppNumber)
	if err != nil {
		return nil, err
	}
	about, err := s.loadKey(ctx, kvstore.KeyAbout, s.defaults.About)
	if err != nil {
		return nil, err
	}
	address, err := s.loadKey(ctx, kvstore.KeyAddress, s.defaults.Address)
	if err != nil {
		return nil, err
	}
	mapURL, err := s.loadKey(ctx, kvstore.KeyMapURL, s.defaults.MapURL)
	if err != nil {
		return nil, err
	}

	return &types.Settings{
		Theme:          parsedTheme,
		WhatsAppNumber: number,
		AboutContent:   about,
		Address:        address,
		MapURL:         mapURL,
	}, nil
}

// Update validates and persists all five settings values in one
// transactional write.
func (s *service) Update(ctx context.Context, settings types.Settings) (*types.Settings, error) {
	if !settings.Theme.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "theme must be light or dark")
	}
	if strings.TrimSpace(settings.WhatsAppNumber) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "whatsapp number is required")
	}

	values := map[string]string{
		kvstore.KeyTheme:    settings.Theme.String(),
		kvstore.KeyWhatsApp: settings.WhatsAppNumber,
		kvstore.KeyAbout:    settings.AboutContent,
		kvstore.KeyAddress:  settings.Address,
		kvstore.KeyMapURL:   settings.MapURL,
	}
	if err := s.store.SaveAll(ctx, values); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist settings")
	}
	return &settings, nil
}

// ToggleTheme flips the color scheme and persists the new value.
func (s *service) ToggleTheme(ctx context.Context) (enums.Theme, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return "", err
	}

	next := enums.ThemeDark
	if current.Theme == enums.ThemeDark {
		next = enums.ThemeLight
	}

	if err := s.store.SaveAll(ctx, map[string]string{kvstore.KeyTheme: next.String()}); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist theme")
	}
	return next, nil
}

func (s *service) loadKey(ctx context.Context, key, fallback string) (string, error) {
	value, found, err := s.store.Load(ctx, key)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	if !found {
		return fallback, nil
	}
	return value, nil
}
