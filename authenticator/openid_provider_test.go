package authenticator

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "content-audit"

// testIssuer is a minimal OpenID Connect issuer serving discovery, keys and a token endpoint
type testIssuer struct {
	*httptest.Server
	key    *rsa.PrivateKey
	signer jose.Signer
}

func newTestIssuer(t *testing.T) *testIssuer {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.RS256, Key: key},
		(&jose.SignerOptions{}).WithType("JWT").WithHeader("kid", "test-key"),
	)
	require.NoError(t, err)

	issuer := &testIssuer{key: key, signer: signer}

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"issuer":                                issuer.URL,
			"authorization_endpoint":                issuer.URL + "/authorize",
			"token_endpoint":                        issuer.URL + "/oauth/token",
			"jwks_uri":                              issuer.URL + "/keys",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	})
	mux.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{
			Key:       &key.PublicKey,
			KeyID:     "test-key",
			Algorithm: string(jose.RS256),
			Use:       "sig",
		}}})
	})
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		writeJSON(w, map[string]interface{}{
			"access_token": "access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     issuer.sign(t, issuer.claims(time.Hour)),
		})
	})

	issuer.Server = httptest.NewServer(mux)
	t.Cleanup(issuer.Close)
	return issuer
}

func (i *testIssuer) claims(ttl time.Duration) map[string]interface{} {
	now := time.Now()
	return map[string]interface{}{
		"iss":   i.URL,
		"aud":   testClientID,
		"sub":   "auth0|42",
		"email": "editor@example.com",
		"name":  "Editor",
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
}

func (i *testIssuer) sign(t *testing.T, claims map[string]interface{}) string {
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	obj, err := i.signer.Sign(payload)
	require.NoError(t, err)
	raw, err := obj.CompactSerialize()
	require.NoError(t, err)
	return raw
}

func (i *testIssuer) provider(t *testing.T) *OpenIDProvider {
	p, err := NewOpenIDProvider(context.Background(), OpenIDConfig{
		Domain:       i.URL,
		ClientID:     testClientID,
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8080/auth/callback",
	})
	require.NoError(t, err)
	return p
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestOpenIDConfig_Validate(t *testing.T) {
	valid := OpenIDConfig{Domain: "example.eu.auth0.com", ClientID: "id", ClientSecret: "secret", CallbackURL: "http://cb"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*OpenIDConfig)
		msg    string
	}{
		{"domain", func(c *OpenIDConfig) { c.Domain = "" }, "domain is required"},
		{"client id", func(c *OpenIDConfig) { c.ClientID = "" }, "client ID is required"},
		{"client secret", func(c *OpenIDConfig) { c.ClientSecret = "" }, "client secret is required"},
		{"callback", func(c *OpenIDConfig) { c.CallbackURL = "" }, "callback URL is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.EqualError(t, cfg.Validate(), tt.msg)
		})
	}
}

func TestOpenIDConfig_IssuerURL(t *testing.T) {
	assert.Equal(t, "https://example.eu.auth0.com/", OpenIDConfig{Domain: "example.eu.auth0.com"}.IssuerURL())
	assert.Equal(t, "http://127.0.0.1:9000", OpenIDConfig{Domain: "http://127.0.0.1:9000"}.IssuerURL())
}

func TestOpenIDProvider_VerifyIDToken(t *testing.T) {
	issuer := newTestIssuer(t)
	p := issuer.provider(t)
	ctx := context.Background()

	claims, err := p.VerifyIDToken(ctx, issuer.sign(t, issuer.claims(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "auth0|42", claims.Subject())
	assert.Equal(t, "editor@example.com", claims.Email())

	expired := issuer.claims(-time.Hour)
	_, err = p.VerifyIDToken(ctx, issuer.sign(t, expired))
	assert.Error(t, err)

	otherAudience := issuer.claims(time.Hour)
	otherAudience["aud"] = "someone-else"
	_, err = p.VerifyIDToken(ctx, issuer.sign(t, otherAudience))
	assert.Error(t, err)

	_, err = p.VerifyIDToken(ctx, "not-a-jwt")
	assert.Error(t, err)
}

func TestOpenIDProvider_CodeFlow(t *testing.T) {
	issuer := newTestIssuer(t)
	p := issuer.provider(t)
	ctx := context.Background()

	authURL, err := url.Parse(p.GetAuthURL("xyz"))
	require.NoError(t, err)
	assert.Equal(t, "/authorize", authURL.Path)
	assert.Equal(t, "xyz", authURL.Query().Get("state"))
	assert.Equal(t, testClientID, authURL.Query().Get("client_id"))

	token, err := p.ExchangeCode(ctx, "good-code")
	require.NoError(t, err)
	assert.Equal(t, "access", token.AccessToken)
	assert.NotEmpty(t, token.IDToken)

	claims, err := p.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Editor", claims.DisplayName())

	_, err = p.ExchangeCode(ctx, "bad-code")
	assert.Error(t, err)

	_, err = p.GetClaims(ctx, &Token{AccessToken: "access"})
	assert.EqualError(t, err, "no id_token in token")
}

func TestClaims_DisplayName(t *testing.T) {
	assert.Equal(t, "nick", Claims{"nickname": "nick", "name": "Name", "sub": "s"}.DisplayName())
	assert.Equal(t, "Name", Claims{"name": "Name", "email": "e@example.com"}.DisplayName())
	assert.Equal(t, "e@example.com", Claims{"email": "e@example.com", "sub": "s"}.DisplayName())
	assert.Equal(t, "s", Claims{"sub": "s"}.DisplayName())
	assert.Equal(t, "", Claims{"sub": 12}.DisplayName())
}
