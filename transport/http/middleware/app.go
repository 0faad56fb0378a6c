package middleware

import (
	"net/http"

	"senateway/config"
	"senateway/infras/otel"
	"senateway/shared/cache"
	"senateway/shared/constant"
)

// App carries the request-scoped middleware that applies to every route.
type App interface {
	Tracing(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	config *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func NewAppMiddleware(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) App {
	return &appMiddleware{
		config: cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Tracing opens a request-level span so downstream scopes nest under one
// trace per request.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, r.Method+" "+r.URL.Path)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"http.method": r.Method,
			"http.path":   r.URL.Path,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
