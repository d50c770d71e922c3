package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/nexlyn/storefront-backend/pkg/config"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/session"
)

// Session assigns every visitor a session cookie. The id is minted here
// but the state document is only written once a handler saves state, so
// anonymous crawlers do not fill Redis.
func Session(cfg config.SessionConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				// The cookie value ends up as a Redis key, so only ids we
				// could have minted ourselves are accepted.
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = session.NewSessionID()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
