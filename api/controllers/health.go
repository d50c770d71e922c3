package controllers

import (
	"net/http"

	"github.com/nexlyn/storefront-backend/api/responses"
	"github.com/nexlyn/storefront-backend/pkg/config"
	pkgdb "github.com/nexlyn/storefront-backend/pkg/db"
	pkgerrors "github.com/nexlyn/storefront-backend/pkg/errors"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	pkgredis "github.com/nexlyn/storefront-backend/pkg/redis"
)

const envHeader = "X-Nexlyn-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, db pkgdb.Pinger, redis pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not ready"))
				return
			}
		}
		if redis != nil {
			if err := redis.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
