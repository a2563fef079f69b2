package handlers

import (
	"escritorio_app_go/models"
	"escritorio_app_go/services"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// ListProcessosHandler returns every case
func ListProcessosHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"processos": Ledger.ListAll(),
	})
}

// CreateProcessoHandler registers a new case
func CreateProcessoHandler(c echo.Context) error {
	var input models.NovoProcesso
	if err := c.Bind(&input); err != nil {
		return respondError(c, http.StatusBadRequest, "Dados inválidos")
	}

	input.Cliente = services.SanitizeText(input.Cliente)
	input.Advogado = services.SanitizeText(input.Advogado)
	input.Tipo = services.SanitizeText(input.Tipo)

	if err := Ledger.Add(input); err != nil {
		return respondLedgerError(c, input.Numero, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Processo %s adicionado com sucesso.", input.Numero),
	})
}

// UpdateProcessoHandler applies a partial update to a case
func UpdateProcessoHandler(c echo.Context) error {
	numero, err := url.PathUnescape(c.Param("numero"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Número de processo inválido")
	}

	var patch models.ProcessoPatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, http.StatusBadRequest, "Dados inválidos")
	}
	sanitizePatch(&patch)

	if err := Ledger.Update(numero, patch); err != nil {
		return respondLedgerError(c, numero, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Processo %s atualizado com sucesso.", numero),
	})
}

// DeleteProcessoHandler removes a case
func DeleteProcessoHandler(c echo.Context) error {
	numero, err := url.PathUnescape(c.Param("numero"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Número de processo inválido")
	}

	if err := Ledger.Remove(numero); err != nil {
		return respondLedgerError(c, numero, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Processo %s removido com sucesso.", numero),
	})
}

// BuscarProcessosHandler searches cases by number, client, attorney or type
func BuscarProcessosHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"processos": Ledger.Search(c.QueryParam("termo")),
	})
}

func sanitizePatch(p *models.ProcessoPatch) {
	for _, field := range []*string{p.Cliente, p.Advogado, p.Tipo, p.Status} {
		if field != nil {
			*field = services.SanitizeText(*field)
		}
	}
}
