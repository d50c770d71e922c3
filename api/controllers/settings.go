package controllers

import (
	"net/http"

	"github.com/nexlyn/storefront-backend/api/responses"
	settingssvc "github.com/nexlyn/storefront-backend/internal/settings"
	"github.com/nexlyn/storefront-backend/pkg/logger"
)

// SettingsGet returns the public storefront settings.
func SettingsGet(svc settingssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, settings)
	}
}

// SettingsToggleTheme flips between light and dark and persists the choice.
func SettingsToggleTheme(svc settingssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, err := svc.ToggleTheme(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"theme": theme.String()})
	}
}
