package router

import (
	"net/http"
	"strings"

	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
)

func middlewareAuthentication(verifier jwt.JWT, publicEndpoints map[string]map[string]struct{}) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			public := false
			if s, ok := publicEndpoints[r.Method]; ok {
				_, public = s[path]
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				writeJSON(w, errorResponse{
					Error:   true,
					Message: "Authentication required",
					Status:  http.StatusUnauthorized,
				}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(p[1])
			if err != nil {
				if public {
					// Public endpoints tolerate stale tokens; claims just stay absent.
					next.ServeHTTP(w, r)
					return
				}
				writeJSON(w, errorResponse{
					Error:   true,
					Message: "Invalid or expired token",
					Status:  http.StatusUnauthorized,
				}, http.StatusUnauthorized)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
