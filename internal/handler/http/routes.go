package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Path parameter patterns. A value that does not match, or does not fit in
// an int32, leaves the route unmatched.
const (
	int32Param = `[-+]?\d+`
)

// route is one fragment of the route table. Fragments never overlap on
// method and path, so the first structural match is the only match and a
// rejection inside a fragment never falls through to another one.
type route struct {
	method      string
	pattern     string
	requireAuth bool
	needsPool   bool
	handler     http.HandlerFunc
}

func (h *Handler) routes() []route {
	return []route{
		{method: http.MethodGet, pattern: "/rest/{id:" + int32Param + "}", requireAuth: true, needsPool: true, handler: h.getRest},
		{method: http.MethodGet, pattern: "/rest", requireAuth: true, needsPool: true, handler: h.listRest},
		{method: http.MethodPost, pattern: "/rest", requireAuth: !h.cfg.PublicCreate, needsPool: true, handler: h.createRest},

		{method: http.MethodGet, pattern: "/hello", handler: h.hello},
		{method: http.MethodGet, pattern: "/basic/{name}/{age:" + int32Param + "}", handler: h.basic},
		{method: http.MethodGet, pattern: "/add/{a:" + int32Param + "}/{b:" + int32Param + "}", handler: h.add},
		{method: http.MethodGet, pattern: "/items/{name}", handler: h.items},

		{method: http.MethodGet, pattern: "/api/version", handler: h.getServerVersion},
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	if h.cfg.CORS.Enabled {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.CORS.AllowedOrigins,
			AllowedMethods: h.cfg.CORS.AllowedMethods,
			AllowedHeaders: h.cfg.CORS.AllowedHeaders,
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         h.cfg.CORS.MaxAge,
		}))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	for _, rt := range h.routes() {
		var mws []func(http.Handler) http.Handler
		if rt.requireAuth {
			mws = append(mws, h.auth)
		}
		if rt.needsPool {
			mws = append(mws, h.withPool)
		}
		router.With(mws...).Method(rt.method, rt.pattern, rt.handler)
	}

	if h.cfg.StaticDir != "" {
		router.Get("/*", h.static())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	h.logger.Info().
		Bool("public_create", h.cfg.PublicCreate).
		Str("static_dir", h.cfg.StaticDir).
		Dur("request_timeout", h.cfg.RequestTimeout).
		Msg("routes registered")

	return router
}
