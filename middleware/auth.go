package middleware

import (
	"escritorio_app_go/config"
	"escritorio_app_go/db"
	"escritorio_app_go/models"
	"escritorio_app_go/services"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "escritorio_session"
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "usuario"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
	// ContextKeyConfig is the context key for the loaded configuration
	ContextKeyConfig = "config"
)

// unauthorized aborts the request with the JSON error envelope
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]interface{}{
		"success": false,
		"error":   "Não autorizado",
	})
}

// RequireAuth is middleware that requires a valid session cookie
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" || db.DB == nil {
				return unauthorized(c)
			}

			session, err := services.ValidateSession(db.DB, cookie.Value)
			if err != nil {
				ClearSessionCookie(c)
				return unauthorized(c)
			}

			usuario, ok := services.FindUsuario(session.UserEmail)
			if !ok || !usuario.Ativo {
				services.DeleteSession(db.DB, session.Token)
				ClearSessionCookie(c)
				return unauthorized(c)
			}

			c.Set(ContextKeyUser, usuario)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// GetCurrentUser retrieves the current user from context
func GetCurrentUser(c echo.Context) *models.Usuario {
	usuario, ok := c.Get(ContextKeyUser).(*models.Usuario)
	if !ok {
		return nil
	}
	return usuario
}

// GetSession retrieves the current session from context
func GetSession(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// isProduction reads the environment from the config stored in context
func isProduction(c echo.Context) bool {
	if cfg, ok := c.Get(ContextKeyConfig).(*config.Config); ok {
		return cfg.IsProduction()
	}
	return false
}

// SetSessionCookie writes the session cookie for a new login
func SetSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   isProduction(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie clears the session cookie
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProduction(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// WithConfig stores the configuration in every request context
func WithConfig(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyConfig, cfg)
			return next(c)
		}
	}
}
