package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/excuse-backend/internal/config"
	"github.com/heartmarshall/excuse-backend/internal/transport/middleware"
	"github.com/heartmarshall/excuse-backend/internal/transport/rest"
)

type routerDeps struct {
	cfg     *config.Config
	log     *slog.Logger
	excuses *rest.ExcuseHandler
	health  *rest.HealthHandler
	limiter *middleware.RateLimiter
}

func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	limited := d.limiter.Limit(d.cfg.RateLimit.GeneratePerMinute)

	mux.Handle("POST /api/excuses/generate", limited(http.HandlerFunc(d.excuses.Generate)))
	mux.Handle("POST /api/excuses/emergency", limited(http.HandlerFunc(d.excuses.Emergency)))
	mux.HandleFunc("GET /api/excuses/recent", d.excuses.Recent)

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.log),
		middleware.Recovery(d.log),
		middleware.CORS(d.cfg.CORS),
	)(mux)
}
