package handlers

import (
	"errors"
	"escritorio_app_go/services"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Ledger is the case ledger served by the API
var Ledger *services.Ledger

// clock stamps generated files
var clock = time.Now

// respondError writes the {success:false, error} envelope
func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// respondLedgerError maps a ledger error to its HTTP status and message
func respondLedgerError(c echo.Context, numero string, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return respondError(c, http.StatusNotFound, fmt.Sprintf("Processo %s não encontrado.", numero))
	case errors.Is(err, services.ErrDuplicateCase):
		return respondError(c, http.StatusBadRequest, fmt.Sprintf("Processo %s já existe na base de dados.", numero))
	case errors.Is(err, services.ErrInvalidField):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPersistence):
		log.Printf("[ERROR] Ledger operation on processo %s failed: %v", numero, err)
		return respondError(c, http.StatusInternalServerError, "Erro ao salvar a base de dados")
	default:
		log.Printf("[ERROR] Ledger operation on processo %s failed: %v", numero, err)
		return respondError(c, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

// HTTPErrorHandler renders every unhandled error with the JSON envelope
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Erro interno do servidor"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch code {
		case http.StatusNotFound:
			message = "Endpoint não encontrado"
		case http.StatusInternalServerError:
		default:
			message = fmt.Sprint(he.Message)
		}
	}
	if code == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = respondError(c, code, message)
	}
	if err != nil {
		log.Printf("[ERROR] Failed to write error response: %v", err)
	}
}

// setAttachment sets a Content-Disposition header that survives
// non-ASCII file names
func setAttachment(c echo.Context, filename string) {
	fallback := strings.Map(func(r rune) rune {
		if r > 0x7e || r < 0x20 || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, filename)
	encoded := strings.ReplaceAll(url.QueryEscape(filename), "+", "%20")

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, encoded))
}
