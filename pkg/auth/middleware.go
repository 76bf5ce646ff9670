package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/GlebRadaev/valorhood/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// TokenQueryParam carries the token on websocket handshakes, where browsers
// can't set headers.
const TokenQueryParam = "access_token"

// AuthMiddleware resolves the bearer token into the caller's user id and stores
// it in the request context under UserIDKey.
func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), true
	}
	if authHeader == "" && websocket.IsWebSocketUpgrade(r) {
		token := r.URL.Query().Get(TokenQueryParam)
		return token, token != ""
	}
	return "", false
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
