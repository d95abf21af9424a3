package authenticator

import (
	"context"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Subject returns the sub claim
func (c Claims) Subject() string {
	return c.str("sub")
}

// Email returns the email claim
func (c Claims) Email() string {
	return c.str("email")
}

// DisplayName returns the nickname, falling back to name, email and finally sub
func (c Claims) DisplayName() string {
	for _, key := range []string{"nickname", "name", "email", "sub"} {
		if v := c.str(key); v != "" {
			return v
		}
	}
	return ""
}

func (c Claims) str(key string) string {
	v, _ := c[key].(string)
	return v
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
	// VerifyIDToken validates a raw ID token, as sent in a bearer header, and returns its claims
	VerifyIDToken(ctx context.Context, rawIDToken string) (Claims, error)
}
