package middleware

import (
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Devpy220/DiscoveryEvents/internal/session"
)

const (
	// SessionCookie is the cookie carrying the opaque session token.
	SessionCookie = "de_session"

	userIDKey = "user_id"
)

// Session resolves the cookie into a user id when present. It never
// rejects a request itself; RequireAuth does that on protected routes.
func Session(manager session.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			userID, err := manager.Resolve(c.Request.Context(), token)
			if err == nil {
				c.Set(userIDKey, userID)
			} else if !errors.Is(err, session.ErrNotFound) {
				c.Set("error", err.Error())
			}
		}

		c.Next()
	}
}

func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unauthorized"},
			)
			return
		}

		c.Next()
	}
}

// CurrentUserID reports the authenticated user of the request, if any.
func CurrentUserID(c *ginext.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
