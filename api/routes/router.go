package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nexlyn/storefront-backend/api/controllers"
	"github.com/nexlyn/storefront-backend/api/middleware"
	adminsvc "github.com/nexlyn/storefront-backend/internal/admin"
	catalogsvc "github.com/nexlyn/storefront-backend/internal/catalog"
	chatsvc "github.com/nexlyn/storefront-backend/internal/chat"
	settingssvc "github.com/nexlyn/storefront-backend/internal/settings"
	viewsvc "github.com/nexlyn/storefront-backend/internal/view"
	"github.com/nexlyn/storefront-backend/pkg/config"
	"github.com/nexlyn/storefront-backend/pkg/db"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/redis"
	"github.com/nexlyn/storefront-backend/pkg/session"
)

// sessionManager is the slice of [session.Manager] the routes need.
type sessionManager interface {
	Fetch(ctx context.Context, sessionID string) (*session.State, error)
	Save(ctx context.Context, sessionID string, state *session.State) error
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	registry *prometheus.Registry,
	sessions sessionManager,
	catalogService catalogsvc.Service,
	settingsService settingssvc.Service,
	viewService viewsvc.Service,
	adminService adminsvc.Service,
	chatService chatsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Session, logg))

		r.Get("/catalog", controllers.CatalogList(catalogService, logg))
		r.Get("/catalog/{productId}", controllers.CatalogDetail(catalogService, viewService, sessions, logg))
		r.Get("/categories", controllers.CategoriesList(catalogService, logg))
		r.Get("/banner", controllers.BannerGet(viewService))
		r.Get("/settings", controllers.SettingsGet(settingsService, logg))
		r.Post("/settings/theme/toggle", controllers.SettingsToggleTheme(settingsService, logg))
		r.Post("/view/navigate", controllers.ViewNavigate(viewService, sessions, logg))
		r.Post("/whatsapp/link", controllers.WhatsAppLink(catalogService, settingsService, logg))

		r.Route("/chat", func(r chi.Router) {
			r.Get("/messages", controllers.ChatMessages(chatService, logg))
			r.Post("/messages", controllers.ChatSend(chatService, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/unlock", controllers.AdminUnlock(adminService, sessions, logg))
			r.Post("/lock", controllers.AdminLock(adminService, sessions, logg))
			r.Route("/products", func(r chi.Router) {
				r.Post("/draft", controllers.AdminDraftStart(adminService, sessions, logg))
				r.Put("/draft", controllers.AdminDraftUpdate(adminService, sessions, logg))
				r.Post("/draft/save", controllers.AdminDraftSave(adminService, sessions, logg))
				r.Delete("/draft", controllers.AdminDraftCancel(adminService, sessions, logg))
				r.Delete("/{productId}", controllers.AdminProductDelete(adminService, sessions, logg))
			})
			r.Put("/settings", controllers.AdminSettingsUpdate(adminService, sessions, logg))
			r.Post("/media", controllers.AdminMediaUpload(adminService, sessions, logg))
		})
	})

	return r
}
