package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/cors"
)

// corsMethods and corsHeaders are the fixed allow-lists advertised on every
// preflight, for both the REST API and the tool endpoint.
var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{"Content-Type", "mcp-session-id"}
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash),
// or "*" to allow any origin. With "*" every response carries
// Access-Control-Allow-Origin: *, whether or not the request sent an Origin.
//
// OPTIONS requests never reach the router: browser preflights are answered by
// rs/cors, and a bare OPTIONS gets the fixed allow-list with 200 and no body.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       allowedOrigins,
		AllowedMethods:       corsMethods,
		AllowedHeaders:       corsHeaders,
		OptionsSuccessStatus: http.StatusOK,
	})
	wildcard := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		h := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wildcard {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") == "" {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(corsHeaders, ", "))
				w.WriteHeader(http.StatusOK)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
