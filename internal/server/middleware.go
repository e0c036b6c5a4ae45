package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/bazaarhq/bazaar/internal/common"
)

// bearerAuth wraps next with bearer-token authentication. An empty token
// disables the check entirely, which is the development default.
func bearerAuth(token string, logger *common.Logger, next http.Handler) http.Handler {
	if token == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			logger.Warn().Str("path", r.URL.Path).Msg("Missing bearer token")
			unauthorized(w)
			return
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			logger.Warn().Str("path", r.URL.Path).Msg("Invalid bearer token")
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="bazaar"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
