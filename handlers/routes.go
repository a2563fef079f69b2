package handlers

import (
	"escritorio_app_go/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the API. With authEnabled every /api route except
// login and logout requires a session.
func RegisterRoutes(e *echo.Echo, authEnabled bool) {
	e.GET("/health", HealthHandler)

	api := e.Group("/api")
	if authEnabled {
		e.POST("/api/login", LoginHandler, middleware.LoginRateLimiter.Middleware())
		e.POST("/api/logout", LogoutHandler)
		api.Use(middleware.RequireAuth())
	}
	api.Use(middleware.AuditMutations())

	api.GET("/processos", ListProcessosHandler)
	api.POST("/processos", CreateProcessoHandler)
	api.PUT("/processos/:numero", UpdateProcessoHandler)
	api.DELETE("/processos/:numero", DeleteProcessoHandler)

	api.GET("/prazos", ListPrazosHandler)
	api.GET("/buscar", BuscarProcessosHandler)
	api.GET("/relatorio", RelatorioHandler)
	api.GET("/status", StatusHandler)

	api.POST("/gerar-contrato", GerarContratoHandler)
	api.POST("/backup", BackupHandler)
}
