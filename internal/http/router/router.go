package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/http/handlers"
	mw "github.com/Knucklefist1/MyHaulierMobile-sub000/internal/http/middleware"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/http/middleware/ratelimit"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/http/pprofserver"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	base *handlers.Handlers,
	match *handlers.MatchHandler,
	haulier *handlers.HaulierHandler,
	limiter *ratelimit.Middleware,
	logger logx.Logger,
) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(mw.Observability(logger))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/debug/pprof/*", pprofserver.Handler(pprofserver.Config{}))

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Handler())
		}
		r.Post("/matches", match.FindMatches)
	})

	r.Get("/users/{id}/preferences", match.GetPreferences)
	r.Put("/users/{id}/preferences", match.PutPreferences)
	r.Get("/users/{id}/matches", match.GetHistory)

	r.Get("/hauliers", haulier.List)
	r.Post("/haulier", haulier.Save)
	r.Get("/haulier/{id}", haulier.GetByID)

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
