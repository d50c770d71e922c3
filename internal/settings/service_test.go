package settings

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/nexlyn/storefront-backend/pkg/config"
	"github.com/nexlyn/storefront-backend/pkg/enums"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/kvstore"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

type fakeStore struct {
	values     map[string]string
	saveAllErr error
}

func (f *fakeStore) Load(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStore) SaveAll(_ context.Context, values map[string]string) error {
	if f.saveAllErr != nil {
		return f.saveAllErr
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	for k, v := range values {
		f.values[k] = v
	}
	return nil
}

func testDefaults() config.DefaultsConfig {
	return config.DefaultsConfig{
		Theme:          "dark",
		WhatsAppNumber: "971502474482",
		About:          "About Nexlyn.",
		Address:        "Silicon Oasis, Dubai Digital Park, UAE",
		MapURL:         "https://maps.app.goo.gl/971502474482",
	}
}

func newTestService(t *testing.T, store *fakeStore) Service {
	t.Helper()
	svc, err := NewService(store, testDefaults(), logger.New(logger.Options{ServiceName: "settings-test", Output: io.Discard}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestGetUsesDefaultsForMissingKeys(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Theme != enums.ThemeDark {
		t.Fatalf("expected default theme, got %q", got.Theme)
	}
	if got.WhatsAppNumber != "971502474482" {
		t.Fatalf("expected default number, got %q", got.WhatsAppNumber)
	}
	if got.AboutContent != "About Nexlyn." {
		t.Fatalf("expected default about, got %q", got.AboutContent)
	}
}

func TestGetMergesStoredValuesPerKey(t *testing.T) {
	store := &fakeStore{values: map[string]string{
		kvstore.KeyTheme:    "light",
		kvstore.KeyWhatsApp: "971500000000",
	}}
	svc := newTestService(t, store)

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Theme != enums.ThemeLight || got.WhatsAppNumber != "971500000000" {
		t.Fatalf("stored values not used: %+v", got)
	}
	if got.Address != testDefaults().Address {
		t.Fatalf("missing key should fall back independently, got %q", got.Address)
	}
}

func TestGetInvalidStoredThemeFallsBack(t *testing.T) {
	store := &fakeStore{values: map[string]string{kvstore.KeyTheme: "sepia"}}
	svc := newTestService(t, store)

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Theme != enums.ThemeDark {
		t.Fatalf("expected default theme fallback, got %q", got.Theme)
	}
}

func TestUpdatePersistsAllKeysTogether(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)

	in := types.Settings{
		Theme:          enums.ThemeLight,
		WhatsAppNumber: "971501112233",
		AboutContent:   "Updated about.",
		Address:        "New address",
		MapURL:         "https://maps.app.goo.gl/updated",
	}
	got, err := svc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if *got != in {
		t.Fatalf("unexpected echo %+v", got)
	}

	for key, want := range map[string]string{
		kvstore.KeyTheme:    "light",
		kvstore.KeyWhatsApp: "971501112233",
		kvstore.KeyAbout:    "Updated about.",
		kvstore.KeyAddress:  "New address",
		kvstore.KeyMapURL:   "https://maps.app.goo.gl/updated",
	} {
		if store.values[key] != want {
			t.Fatalf("key %q = %q, want %q", key, store.values[key], want)
		}
	}
}

func TestUpdateValidates(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	_, err := svc.Update(context.Background(), types.Settings{Theme: "sepia", WhatsAppNumber: "971"})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for theme, got %v", err)
	}

	_, err = svc.Update(context.Background(), types.Settings{Theme: enums.ThemeDark, WhatsAppNumber: "  "})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for number, got %v", err)
	}
}

func TestUpdateSurfacesStoreFailure(t *testing.T) {
	svc := newTestService(t, &fakeStore{saveAllErr: errors.New("db down")})

	_, err := svc.Update(context.Background(), types.Settings{Theme: enums.ThemeDark, WhatsAppNumber: "971"})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestToggleThemeFlips(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)

	got, err := svc.ToggleTheme(context.Background())
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got != enums.ThemeLight {
		t.Fatalf("dark should toggle to light, got %q", got)
	}
	if store.values[kvstore.KeyTheme] != "light" {
		t.Fatal("toggled theme not persisted")
	}

	got, err = svc.ToggleTheme(context.Background())
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got != enums.ThemeDark {
		t.Fatalf("light should toggle back to dark, got %q", got)
	}
}
