package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AuditMutations logs every request that changes the ledger, with the user
// behind it when the login gate is on.
func AuditMutations() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
				return next(c)
			}

			err := next(c)

			user := "anonymous"
			if usuario := GetCurrentUser(c); usuario != nil {
				user = usuario.Email
			}
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			log.Printf("[AUDIT] %s %s | User: %s | IP: %s | Status: %d", method, c.Request().URL.Path, user, c.RealIP(), status)

			return err
		}
	}
}
