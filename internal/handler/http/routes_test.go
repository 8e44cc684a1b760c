package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-demo/internal/config"
	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/service"
	"github.com/MKhiriev/go-rest-demo/internal/store"
	"github.com/MKhiriev/go-rest-demo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the real services behind Init(). mutate may adjust
// the server config before the routes are built.
func newTestRouter(t *testing.T, mutate func(*config.Server)) http.Handler {
	t.Helper()

	cfg := &config.StructuredConfig{
		App: config.App{Version: "1.2.3"},
		Server: config.Server{
			HTTPAddress:  "127.0.0.1:3000",
			MaxBodyBytes: config.DefaultMaxBodyBytes,
		},
	}
	if mutate != nil {
		mutate(&cfg.Server)
	}

	services, err := service.NewServices(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, store.NewStorages(logger.Nop()), cfg.Server, logger.Nop()).Init()
}

func serve(router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func withToken(token string) map[string]string {
	return map[string]string{authTokenHeader: token}
}

// ── /rest ────────────────────────────────────────────────────────────────────

func TestRoutes_GetRest(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		target     string
		headers    map[string]string
		wantStatus int
		wantJSON   string
	}{
		{
			name:       "valid token",
			target:     "/rest/5",
			headers:    withToken("ok:9"),
			wantStatus: http.StatusOK,
			wantJSON:   `{"id":5,"name":"name: 5","user_id":9}`,
		},
		{
			name:       "negative id and identity",
			target:     "/rest/-2",
			headers:    withToken("ok:-7"),
			wantStatus: http.StatusOK,
			wantJSON:   `{"id":-2,"name":"name: -2","user_id":-7}`,
		},
		{
			name:       "token with extra segment",
			target:     "/rest/1",
			headers:    withToken("ok:3:whatever"),
			wantStatus: http.StatusOK,
			wantJSON:   `{"id":1,"name":"name: 1","user_id":3}`,
		},
		{
			name:       "missing header",
			target:     "/rest/5",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong prefix",
			target:     "/rest/5",
			headers:    withToken("bad:5"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non numeric suffix",
			target:     "/rest/5",
			headers:    withToken("ok:abc"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty suffix",
			target:     "/rest/5",
			headers:    withToken("ok:"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non integer id",
			target:     "/rest/abc",
			headers:    withToken("ok:9"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "id out of int32 range",
			target:     "/rest/2147483648",
			headers:    withToken("ok:9"),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, "", tt.headers)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantJSON != "" {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.JSONEq(t, tt.wantJSON, rec.Body.String())
			}
		})
	}
}

func TestRoutes_ListRest(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/rest", "", withToken("ok:1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"status":"ok"},{"id":2,"status":"err"},{"id":3,"status":"aa"},{"id":4,"status":"bb"},{"id":5,"status":"cc"}]`,
		rec.Body.String())

	rec = serve(router, http.MethodGet, "/rest", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_CreateRest(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		body       string
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "increments id",
			body:       `{"id":10}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusOK,
			wantBody:   `{"id":11}`,
		},
		{
			name:       "other fields echoed verbatim",
			body:       `{"name":"x","id":0,"price":1.50,"nested":{"a":[1,2]}}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"name":"x","nested":{"a":[1,2]},"price":1.50}`,
		},
		{
			name:       "html characters are not escaped",
			body:       `{"id":1,"s":"<a&b>"}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusOK,
			wantBody:   `{"id":2,"s":"<a&b>"}`,
		},
		{
			name:       "negative id",
			body:       `{"id":-1}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusOK,
			wantBody:   `{"id":0}`,
		},
		{
			name:       "no token",
			body:       `{"id":10}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "id is a string",
			body:       `{"id":"10"}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "id missing",
			body:       `{"name":"x"}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "id at max int32",
			body:       `{"id":2147483647}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "id above int32",
			body:       `{"id":2147483648}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "array body",
			body:       `[{"id":1}]`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "null body",
			body:       `null`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"id":`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "two values",
			body:       `{"id":1}{"id":2}`,
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			headers:    withToken("ok:1"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, "/rest", tt.body, tt.headers)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRoutes_CreateRest_PublicCreate(t *testing.T) {
	router := newTestRouter(t, func(s *config.Server) { s.PublicCreate = true })

	rec := serve(router, http.MethodPost, "/rest", `{"id":10}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"id":11}`, rec.Body.String())

	// reads stay protected
	rec = serve(router, http.MethodGet, "/rest", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_CreateRest_BodyTooLarge(t *testing.T) {
	router := newTestRouter(t, func(s *config.Server) { s.MaxBodyBytes = 16 })

	rec := serve(router, http.MethodPost, "/rest", `{"id":1,"padding":"xxxxxxxxxxxxxxxx"}`, withToken("ok:1"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRoutes_ServerSurvivesBadRequests(t *testing.T) {
	router := newTestRouter(t, nil)

	for i := 0; i < 3; i++ {
		rec := serve(router, http.MethodPost, "/rest", `{"id":"boom"}`, withToken("ok:1"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := serve(router, http.MethodGet, "/hello", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ── peripheral endpoints ─────────────────────────────────────────────────────

func TestRoutes_TextEndpoints(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "hello", target: "/hello", wantStatus: http.StatusOK, wantBody: "hi"},
		{name: "basic", target: "/basic/alice/30", wantStatus: http.StatusOK, wantBody: "name: alice, age: 30"},
		{name: "basic escaped name", target: "/basic/Jane%20Doe/41", wantStatus: http.StatusOK, wantBody: "name: Jane Doe, age: 41"},
		{name: "basic non integer age", target: "/basic/alice/old", wantStatus: http.StatusNotFound},
		{name: "basic age out of range", target: "/basic/alice/99999999999", wantStatus: http.StatusNotFound},
		{name: "add", target: "/add/3/4", wantStatus: http.StatusOK, wantBody: "res: 7"},
		{name: "add signed", target: "/add/+3/-4", wantStatus: http.StatusOK, wantBody: "res: -1"},
		{name: "add no overflow", target: "/add/2147483647/2147483647", wantStatus: http.StatusOK, wantBody: "res: 4294967294"},
		{name: "add non integer", target: "/add/3/x", wantStatus: http.StatusNotFound},
		{name: "items", target: "/items/shoes?size=9&color=red", wantStatus: http.StatusOK, wantBody: `get shoes: {"color": "red", "size": "9"}`},
		{name: "items repeated key", target: "/items/hats?k=a&k=b", wantStatus: http.StatusOK, wantBody: `get hats: {"k": "b"}`},
		{name: "items no query", target: "/items/bags", wantStatus: http.StatusOK, wantBody: "get bags: {}"},
		{name: "version", target: "/api/version", wantStatus: http.StatusOK, wantBody: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, "", nil)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			}
		})
	}
}

// ── unmatched requests ───────────────────────────────────────────────────────

func TestRoutes_UnmatchedRequestsAre404(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/nope"},
		{name: "root without static dir", method: http.MethodGet, target: "/"},
		{name: "post to get-only path", method: http.MethodPost, target: "/hello"},
		{name: "delete rest", method: http.MethodDelete, target: "/rest"},
		{name: "put rest item", method: http.MethodPut, target: "/rest/5"},
		{name: "post rest item", method: http.MethodPost, target: "/rest/5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.method, tt.target, "", withToken("ok:1"))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

// ── static files ─────────────────────────────────────────────────────────────

func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>demo</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rest"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rest", "5"), []byte("static"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "secret"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret", "keys.txt"), []byte("keys"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "index.html"), []byte("<h1>docs</h1>"), 0o644))
	return dir
}

func TestRoutes_StaticFiles(t *testing.T) {
	router := newTestRouter(t, func(s *config.Server) { s.StaticDir = newStaticDir(t) })

	rec := serve(router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<h1>demo</h1>", rec.Body.String())

	rec = serve(router, http.MethodGet, "/app.css", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	rec = serve(router, http.MethodGet, "/missing.txt", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodPost, "/app.css", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// API routes keep priority over files
	rec = serve(router, http.MethodGet, "/hello", "", nil)
	assert.Equal(t, "hi", rec.Body.String())
}

func TestRoutes_StaticDirectories(t *testing.T) {
	router := newTestRouter(t, func(s *config.Server) { s.StaticDir = newStaticDir(t) })

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "directory without index", target: "/secret/", wantStatus: http.StatusNotFound},
		{name: "directory without index or slash", target: "/secret", wantStatus: http.StatusNotFound},
		{name: "file inside directory", target: "/secret/keys.txt", wantStatus: http.StatusOK, wantBody: "keys"},
		{name: "directory with index", target: "/docs/", wantStatus: http.StatusOK, wantBody: "<h1>docs</h1>"},
		{name: "directory with index without slash", target: "/docs", wantStatus: http.StatusOK, wantBody: "<h1>docs</h1>"},
		{name: "index file by name", target: "/index.html", wantStatus: http.StatusOK, wantBody: "<h1>demo</h1>"},
		{name: "nested index file by name", target: "/docs/index.html", wantStatus: http.StatusOK, wantBody: "<h1>docs</h1>"},
		{name: "dot segments stay inside root", target: "/../../etc/passwd", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, "", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Location"))
			assert.NotContains(t, rec.Body.String(), "keys.txt")
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRoutes_AuthRejectionDoesNotFallThroughToStatic(t *testing.T) {
	router := newTestRouter(t, func(s *config.Server) { s.StaticDir = newStaticDir(t) })

	rec := serve(router, http.MethodGet, "/rest/5", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "static")

	rec = serve(router, http.MethodGet, "/rest/5", "", withToken("ok:x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── cross-cutting middleware ─────────────────────────────────────────────────

func TestRoutes_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/hello", "", map[string]string{traceIDHeader: "trace-123"})
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))

	rec = serve(router, http.MethodGet, "/nope", "", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_GzipResponse(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/hello", "", map[string]string{"Accept-Encoding": "gzip"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(plain))
}

func TestRoutes_GzipHeaderWithoutBodyIsRouted(t *testing.T) {
	router := newTestRouter(t, nil)
	gzipHeader := map[string]string{"Content-Encoding": "gzip"}

	rec := serve(router, http.MethodGet, "/rest", "", gzipHeader)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(router, http.MethodGet, "/nope", "", gzipHeader)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodGet, "/hello", "", gzipHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hi", rec.Body.String())
}

func TestRoutes_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, func(s *config.Server) {
		s.CORS = config.CORS{
			Enabled:        true,
			AllowedOrigins: []string{"https://demo.example"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{authTokenHeader, "Content-Type"},
			MaxAge:         60,
		}
	})

	rec := serve(router, http.MethodOptions, "/rest", "", map[string]string{
		"Origin":                        "https://demo.example",
		"Access-Control-Request-Method": http.MethodPost,
	})

	assert.Equal(t, "https://demo.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_RequestTimeoutConfigured(t *testing.T) {
	router := newTestRouter(t, func(s *config.Server) { s.RequestTimeout = 5 * time.Second })

	rec := serve(router, http.MethodGet, "/rest/1", "", withToken("ok:2"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"name: 1","user_id":2}`, rec.Body.String())
}
