package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListPrazosHandler returns the deadline projection of every case
func ListPrazosHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"prazos":  Ledger.ComputeDeadlines(),
	})
}

// RelatorioHandler aggregates the cases registered in ?mes=&ano=.
// Missing or invalid values select the current month and year.
func RelatorioHandler(c echo.Context) error {
	mes := queryInt(c, "mes")
	if mes < 1 || mes > 12 {
		mes = 0
	}
	ano := queryInt(c, "ano")
	if ano < 1 {
		ano = 0
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"relatorio": Ledger.Report(mes, ano),
	})
}

// StatusHandler returns case and deadline totals
func StatusHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  Ledger.Status(),
	})
}

// HealthHandler reports that the server is up
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  "ok",
	})
}

// queryInt parses an integer query parameter, zero when absent or invalid
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
