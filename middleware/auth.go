package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/authenticator"
	"github.com/blogem/content-audit/userctx"
)

// TokenVerifier validates bearer ID tokens
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, rawIDToken string) (authenticator.Claims, error)
}

// Authenticate resolves the request user from an "Authorization: Bearer" ID token.
// Requests without a valid token continue unauthenticated.
func Authenticate(verifier TokenVerifier, logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.VerifyIDToken(r.Context(), raw)
			if err != nil {
				logger.WithError(err).WithField("path", r.URL.Path).Debug("Ignoring invalid bearer token")
				next.ServeHTTP(w, r)
				return
			}

			ctx := userctx.SetUser(r.Context(), userctx.Actor{
				ID:    claims.Subject(),
				Email: claims.Email(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// SessionUser copies the user stored in the session into the request context.
// It must run after the session middleware.
func SessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		if sess == nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, _ := sess.Get(userctx.SessionUserIDKey).(string)
		email, _ := sess.Get(userctx.SessionUserEmailKey).(string)
		if userID == "" && email == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := userctx.SetSessionUser(r.Context(), userctx.Actor{ID: userID, Email: email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth ensures the user is authenticated
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userctx.GetUser(r.Context()).Anonymous() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("WWW-Authenticate", `Bearer realm="audit-logs"`)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
