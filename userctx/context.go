package userctx

import "context"

// Context key type
type contextKey string

const userKey contextKey = "user"
const sessionUserKey contextKey = "session_user"

// Actor identifies who performed a request. The zero value is the anonymous actor.
type Actor struct {
	ID    string
	Email string
}

// Anonymous reports whether no identity is known
func (a Actor) Anonymous() bool {
	return a.ID == "" && a.Email == ""
}

// SetUser adds the authenticated user to request context
func SetUser(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, userKey, actor)
}

// SetSessionUser adds the user restored from the session to request context
func SetSessionUser(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, sessionUserKey, actor)
}

// GetUser resolves the request actor: the authenticated user first, then the session user,
// otherwise the anonymous actor.
func GetUser(ctx context.Context) Actor {
	if actor, ok := ctx.Value(userKey).(Actor); ok && !actor.Anonymous() {
		return actor
	}
	if actor, ok := ctx.Value(sessionUserKey).(Actor); ok && !actor.Anonymous() {
		return actor
	}
	return Actor{}
}

// GetUserEmail retrieves the actor email from request context
func GetUserEmail(ctx context.Context) string {
	return GetUser(ctx).Email
}

// GetUserID retrieves the actor ID from request context
func GetUserID(ctx context.Context) string {
	return GetUser(ctx).ID
}

// Session keys holding the logged in user
const (
	SessionUserIDKey    = "user_id"
	SessionUserEmailKey = "user_email"
)
