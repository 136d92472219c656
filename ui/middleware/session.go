package middleware

import (
	"net/http"

	"roadmap/app"

	"github.com/gin-gonic/gin"
)

const selectionKey = "selection"

// Session attaches the caller's Selection to the request, issuing a new
// session cookie when the request has none or an unknown one.
func Session(store *app.SessionStore, cookieName string) gin.HandlerFunc {
	maxAge := int(store.TTL().Seconds())
	return func(c *gin.Context) {
		current, _ := c.Cookie(cookieName)
		id, sel := store.Resolve(current)
		if id != current {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, id, maxAge, "/", "", false, true)
		}
		c.Set(selectionKey, sel)
		c.Next()
	}
}

// SelectionFrom returns the Selection set by Session.
func SelectionFrom(c *gin.Context) (*app.Selection, bool) {
	v, ok := c.Get(selectionKey)
	if !ok {
		return nil, false
	}
	sel, ok := v.(*app.Selection)
	return sel, ok
}
