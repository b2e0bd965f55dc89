package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists the origins that may call the service. A "*"
	// entry allows every origin, which is only safe in development.
	AllowedOrigins []string

	// AllowedMethods lists the HTTP methods announced to the browser.
	// Empty means GET, POST, PUT, PATCH, DELETE, OPTIONS.
	AllowedMethods []string

	// AllowedHeaders lists the request headers announced to the browser.
	// Empty means Accept, Content-Type, X-Correlation-ID.
	AllowedHeaders []string

	// ExposedHeaders lists the response headers scripts may read.
	ExposedHeaders []string

	// MaxAge is the preflight cache lifetime in seconds. Zero means 3600.
	MaxAge int

	// AllowCredentials announces support for cookies and auth headers.
	AllowCredentials bool

	// Environment gates the wildcard. "development" implies wildcard even
	// when AllowedOrigins does not contain "*".
	Environment string
}

// DefaultCORSConfig returns a permissive default CORS configuration
// suitable for development.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Correlation-ID"},
		MaxAge:         3600,
		Environment:    "development",
	}
}

// corsHeaders holds the precomputed header values written on every response.
type corsHeaders struct {
	wildcard    bool
	origins     map[string]struct{}
	methods     string
	headers     string
	exposed     string
	maxAge      string
	credentials bool
}

func buildCORSHeaders(cfg CORSConfig) corsHeaders {
	if len(cfg.AllowedMethods) == 0 {
		cfg.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(cfg.AllowedHeaders) == 0 {
		cfg.AllowedHeaders = []string{"Accept", "Content-Type", "X-Correlation-ID"}
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 3600
	}

	h := corsHeaders{
		wildcard:    cfg.Environment == "development",
		origins:     make(map[string]struct{}, len(cfg.AllowedOrigins)),
		methods:     strings.Join(cfg.AllowedMethods, ", "),
		headers:     strings.Join(cfg.AllowedHeaders, ", "),
		exposed:     strings.Join(cfg.ExposedHeaders, ", "),
		maxAge:      strconv.Itoa(cfg.MaxAge),
		credentials: cfg.AllowCredentials,
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			h.wildcard = true
		}
		h.origins[origin] = struct{}{}
	}
	return h
}

func (h corsHeaders) apply(w http.ResponseWriter, origin string) {
	switch {
	case h.wildcard:
		w.Header().Set("Access-Control-Allow-Origin", "*")
	case origin != "":
		if _, ok := h.origins[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
	}

	w.Header().Set("Access-Control-Allow-Methods", h.methods)
	w.Header().Set("Access-Control-Allow-Headers", h.headers)
	if h.exposed != "" {
		w.Header().Set("Access-Control-Expose-Headers", h.exposed)
	}
	w.Header().Set("Access-Control-Max-Age", h.maxAge)
	if h.credentials {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
}

// CORS returns middleware that writes Cross-Origin Resource Sharing headers
// and short-circuits OPTIONS preflight requests with 204.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	precomputed := buildCORSHeaders(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			precomputed.apply(w, r.Header.Get("Origin"))

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
