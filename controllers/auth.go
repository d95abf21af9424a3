package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/authenticator"
	"github.com/blogem/content-audit/userctx"
)

const sessionStateKey = "state"

// AuthController runs the OpenID Connect login flow for the admin API
type AuthController struct {
	logger     logrus.FieldLogger
	afterLogin string
}

// NewAuthController creates an auth controller redirecting to afterLogin once signed in
func NewAuthController(logger logrus.FieldLogger, afterLogin string) *AuthController {
	return &AuthController{
		logger:     logger,
		afterLogin: afterLogin,
	}
}

// Login initiates the authentication process
func (ac *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Generate random state
		state, err := generateRandomState()
		if err != nil {
			writeError(w, ac.logger, http.StatusInternalServerError, err.Error())
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		if err := sess.Set(sessionStateKey, state); err != nil {
			writeError(w, ac.logger, http.StatusInternalServerError, "failed to store session state")
			return
		}

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the callback from the identity provider
func (ac *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		// Verify state
		storedState, _ := sess.Get(sessionStateKey).(string)
		if storedState == "" {
			writeError(w, ac.logger, http.StatusBadRequest, "state not found in session")
			return
		}
		if r.URL.Query().Get("state") != storedState {
			writeError(w, ac.logger, http.StatusBadRequest, "invalid state parameter")
			return
		}

		// Exchange the code for a token
		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			ac.logger.WithError(err).Warn("Failed to exchange authorization code")
			writeError(w, ac.logger, http.StatusUnauthorized, "failed to exchange authorization code for a token")
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			ac.logger.WithError(err).Warn("Failed to verify ID token")
			writeError(w, ac.logger, http.StatusUnauthorized, "failed to verify ID token")
			return
		}

		sess.Set(userctx.SessionUserIDKey, claims.Subject())
		sess.Set(userctx.SessionUserEmailKey, claims.Email())
		sess.Delete(sessionStateKey)

		ac.logger.WithFields(logrus.Fields{
			"user_id": claims.Subject(),
			"name":    claims.DisplayName(),
		}).Info("User logged in")

		http.Redirect(w, r, ac.afterLogin, http.StatusSeeOther)
	}
}

// Logout handles POST /auth/logout
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(userctx.SessionUserIDKey)
	sess.Delete(userctx.SessionUserEmailKey)

	writeJSON(w, ac.logger, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me handles GET /auth/me
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	actor := userctx.GetUser(r.Context())
	if actor.Anonymous() {
		writeError(w, ac.logger, http.StatusUnauthorized, "authentication required")
		return
	}

	writeJSON(w, ac.logger, http.StatusOK, map[string]interface{}{
		"data": map[string]string{
			"userId": actor.ID,
			"email":  actor.Email,
		},
	})
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
