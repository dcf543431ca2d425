package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"chordbook/apierrors"
	"chordbook/config"
	"chordbook/types"
)

type contextKey string

const PrincipalKey contextKey = "principal"

func FromContext(ctx context.Context) (types.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(types.Principal)
	return p, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	apierrors.Write(w, r, apierrors.NewInvalidCredentials())
}

// AuthMiddleware parses the bearer token and stores the principal in
// the request context. Requests without a valid token are rejected.
func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				unauthorized(w, r)
				return
			}
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, r)
				return
			}
			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, r)
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, r)
				return
			}
			idStr, ok := claims["user_id"].(string)
			if !ok {
				unauthorized(w, r)
				return
			}
			id, err := uuid.Parse(idStr)
			if err != nil {
				unauthorized(w, r)
				return
			}
			principal := types.Principal{ID: id}
			if username, ok := claims["username"].(string); ok {
				principal.Username = username
			}
			if authorities, ok := claims["authorities"].([]interface{}); ok {
				for _, a := range authorities {
					if s, ok := a.(string); ok {
						principal.Roles = append(principal.Roles, s)
					}
				}
			}
			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAnyRole gates a route group to principals holding at least one
// of the given authorities.
func RequireAnyRole(authorities ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := FromContext(r.Context())
			if !ok {
				unauthorized(w, r)
				return
			}
			for _, a := range authorities {
				if principal.HasRole(a) {
					next.ServeHTTP(w, r)
					return
				}
			}
			apierrors.Write(w, r, apierrors.NewUnauthorizedAction())
		})
	}
}
