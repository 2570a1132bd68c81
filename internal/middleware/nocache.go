package middleware

import "github.com/labstack/echo/v4"

// NoCache forbids intermediary caching of API responses. Feed pagination is
// not snapshot-isolated, so a cached page is immediately stale.
func NoCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		h.Set("Pragma", "no-cache")
		return next(c)
	}
}
