package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/render"
	"github.com/tendant/simple-scim/pkg/scim"
)

// BasicAuth checks HTTP Basic credentials against the two configured
// secrets. The comparison is constant-time, and a failure responds with the
// version-shaped SCIM error envelope instead of a bare 401 body so agents
// always get well-formed JSON.
func BasicAuth(username, password string, v scim.Version) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !credentialsMatch(user, pass, username, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="scim"`)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, scim.NewErrorResponse(v, http.StatusUnauthorized, "Unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func credentialsMatch(user, pass, wantUser, wantPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(wantPass)) == 1
	return userOK && passOK
}
