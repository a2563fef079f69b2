package handlers

import (
	"escritorio_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// gerarContratoRequest is the document form: client fields plus the template selector
type gerarContratoRequest struct {
	services.DadosCliente
	Template string `json:"template" form:"template"`
}

// GerarContratoHandler renders a document and returns it as a text download
func GerarContratoHandler(c echo.Context) error {
	var req gerarContratoRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Dados inválidos")
	}
	if req.Template == "" {
		req.Template = services.TemplateContratoServicos
	}

	doc := services.GenerateDocument(req.DadosCliente, req.Template, clock())

	setAttachment(c, doc.Filename)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.Conteudo))
}
