package handler

import "github.com/labstack/echo/v4"

// actorFromContext returns the authenticated username for the activity feed.
// Expense and invite routes accept unauthenticated traffic, so a missing
// claim falls back to "anonymous" rather than failing the request.
func actorFromContext(c echo.Context) string {
	if username, _ := c.Get("username").(string); username != "" {
		return username
	}
	return "anonymous"
}

// sidFromContext returns the session id injected by the Auth middleware.
func sidFromContext(c echo.Context) string {
	sid, _ := c.Get("sid").(string)
	return sid
}
