package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/venture/internal/pkg/jwt"
)

// Access is the kind of credential a route requires.
type Access int

const (
	// AccessSession requires a session token. It is the default for unlisted routes.
	AccessSession Access = iota
	// AccessPublic requires nothing.
	AccessPublic
	// AccessVerification requires a verification token issued after an OTP check.
	AccessVerification
)

// AccessRules maps method and matched route path to the required Access.
type AccessRules map[string]map[string]Access

func (ar AccessRules) lookup(method, path string) Access {
	if routes, ok := ar[method]; ok {
		if a, ok := routes[path]; ok {
			return a
		}
	}
	return AccessSession
}

func middlewareAuthentication(verifier jwt.JWT, rules AccessRules) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			access := rules.lookup(r.Method, matchedRoutePath(r))
			if access == AccessPublic {
				next.ServeHTTP(w, r)
				return
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(p[1])
			if err != nil {
				writeJSON(w, errorResponse{Message: "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			if (access == AccessVerification) != claims.IsVerification() {
				writeJSON(w, errorResponse{Message: "Token not allowed for this action"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.SetAuth(r.Context(), claims)))
		})
	}
}
