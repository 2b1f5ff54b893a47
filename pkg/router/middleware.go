package router

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

var (
	// allowed methods per request path, computed once per path
	allowCache sync.Map

	routeMethods = []string{
		http.MethodGet,
		http.MethodPost,
	}

	corsHeaders = strings.Join([]string{
		"Origin",
		"Content-Type",
		"X-Requested-With",
		"Accept-Encoding",
		"Authorization",
	}, ", ")
)

// HealthMiddleware answers /health before routing, so health checks never
// reach the subgraph.
func HealthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			next.ServeHTTP(w, r)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// allowedMethods lists the methods routed for path, followed by OPTIONS.
func allowedMethods(rctx *chi.Context, path string) string {
	if cached, ok := allowCache.Load(path); ok {
		return cached.(string)
	}

	allowed := make([]string, 0, len(routeMethods)+1)
	for _, method := range routeMethods {
		if rctx != nil && rctx.Routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	allowed = append(allowed, http.MethodOptions)

	methods := strings.Join(allowed, ", ")
	allowCache.Store(path, methods)

	return methods
}

// OptionsMiddleware sets the Allow and CORS headers on every response and
// answers preflight requests itself.
func OptionsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx, _ := r.Context().Value(chi.RouteCtxKey).(*chi.Context)

		path := r.URL.Path
		if r.URL.RawPath != "" {
			path = r.URL.RawPath
		}

		methods := allowedMethods(rctx, path)

		h := w.Header()
		h.Set("Allow", methods)
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", corsHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequestSizeLimitMiddleware caps request bodies at limit bytes.
func RequestSizeLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
