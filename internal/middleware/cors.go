package middleware

import (
	"net/http"
	"regexp"
)

// Deploy previews get their own subdomain per branch; allow them through
// without listing each one.
var previewOriginPattern = regexp.MustCompile(`^https://[a-z0-9-]+--rebateatlas\.netlify\.app$`)

// CORS applies the origin allow-list to every response and terminates
// OPTIONS preflights with an empty 200. Unrecognized origins receive the
// primary domain's header, which makes the browser block the response on
// their side rather than the server rejecting it outright.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	primary := ""
	if len(allowedOrigins) > 0 {
		primary = allowedOrigins[0]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if !allowed[origin] && !previewOriginPattern.MatchString(origin) {
				origin = primary
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
