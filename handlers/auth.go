package handlers

import (
	"errors"
	"escritorio_app_go/db"
	"escritorio_app_go/middleware"
	"escritorio_app_go/services"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Usuario string `json:"usuario" form:"usuario"`
	Senha   string `json:"senha" form:"senha"`
}

// LoginHandler checks the credentials and opens a session
func LoginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Dados inválidos")
	}

	req.Usuario = strings.TrimSpace(req.Usuario)
	if req.Usuario == "" || req.Senha == "" {
		return respondError(c, http.StatusBadRequest, "Usuário e senha são obrigatórios")
	}

	usuario, err := services.Authenticate(req.Usuario, req.Senha)
	if err != nil {
		services.LogSecurityEvent("LOGIN_FAILED", req.Usuario, err.Error())
		if errors.Is(err, services.ErrInvalidIdentifier) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	if db.DB == nil {
		return respondError(c, http.StatusInternalServerError, "Sessões indisponíveis")
	}
	session, err := services.CreateSession(db.DB, usuario.Email, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		log.Printf("[ERROR] Failed to create session for %s: %v", usuario.Email, err)
		return respondError(c, http.StatusInternalServerError, "Erro ao criar sessão")
	}

	middleware.SetSessionCookie(c, session.Token, session.ExpiresAt)
	services.LogSecurityEvent("LOGIN_SUCCESS", usuario.Email, "IP: "+c.RealIP())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"usuario": usuario.Perfil(),
	})
}

// LogoutHandler ends the current session
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" && db.DB != nil {
		if err := services.DeleteSession(db.DB, cookie.Value); err != nil {
			log.Printf("[WARNING] Failed to delete session on logout: %v", err)
		}
	}

	middleware.ClearSessionCookie(c)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
