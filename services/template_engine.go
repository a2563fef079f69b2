package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Template selectors
const (
	TemplateContratoServicos = "contrato_servicos"
	TemplateProcuracao       = "procuracao"
)

// DadosCliente are the client fields a document can be filled with
type DadosCliente struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Advogado string `json:"advogado"`
}

// Documento is a rendered plain-text document ready for download
type Documento struct {
	Titulo   string
	Filename string
	Conteudo string
}

// documentTemplate pairs a title with a body holding {{variable}} placeholders
type documentTemplate struct {
	Titulo string
	Corpo  string
}

var documentTemplates = map[string]documentTemplate{
	TemplateContratoServicos: {
		Titulo: "CONTRATO DE PRESTAÇÃO DE SERVIÇOS JURÍDICOS",
		Corpo: `
CONTRATO DE PRESTAÇÃO DE SERVIÇOS JURÍDICOS

CONTRATANTE: {{cliente.nome}}
CPF: {{cliente.cpf}}
Endereço: {{cliente.endereco}}
Telefone: {{cliente.telefone}}
E-mail: {{cliente.email}}

CONTRATADO: {{advogado}}

Data: {{hoje}}

Pelo presente instrumento, as partes acima qualificadas acordam
as seguintes cláusulas e condições:

CLÁUSULA 1ª - DO OBJETO
O presente contrato tem por objeto a prestação de serviços jurídicos
pelo CONTRATADO ao CONTRATANTE.

CLÁUSULA 2ª - DAS RESPONSABILIDADES
O CONTRATADO compromete-se a prestar os serviços com diligência
e em conformidade com a legislação vigente.

CLÁUSULA 3ª - DO FORO
Fica eleito o foro da comarca para dirimir quaisquer questões
decorrentes do presente contrato.

____________________                    ____________________
    CONTRATANTE                             CONTRATADO
`,
	},
	TemplateProcuracao: {
		Titulo: "PROCURAÇÃO",
		Corpo: `
PROCURAÇÃO

OUTORGANTE: {{cliente.nome}}
CPF: {{cliente.cpf}}

OUTORGADO: {{advogado}}

Pelo presente instrumento, o OUTORGANTE nomeia e constitui
seu bastante procurador o OUTORGADO, para representá-lo
perante órgãos públicos e tribunais.

Data: {{hoje}}

____________________
    OUTORGANTE
`,
	},
}

// placeholderTokens is what a missing field renders as
var placeholderTokens = map[string]string{
	"cliente.nome":     "[NOME_CLIENTE]",
	"cliente.cpf":      "[CPF_CLIENTE]",
	"cliente.endereco": "[ENDERECO_CLIENTE]",
	"cliente.telefone": "[TELEFONE_CLIENTE]",
	"cliente.email":    "[EMAIL_CLIENTE]",
	"advogado":         "[ADVOGADO]",
}

// variableRegex matches {{variable.path}} patterns
var variableRegex = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.]+)\s*\}\}`)

// unsafeFilenameChars are replaced when building download names
var unsafeFilenameChars = regexp.MustCompile(`[/\\:*?"<>|\r\n]+`)

// TemplateNames lists the available selectors
func TemplateNames() []string {
	return []string{TemplateContratoServicos, TemplateProcuracao}
}

// GenerateDocument fills the selected template with the client data. An
// unknown selector falls back to the services contract.
func GenerateDocument(dados DadosCliente, selector string, now time.Time) *Documento {
	tmpl, ok := documentTemplates[selector]
	if !ok {
		tmpl = documentTemplates[TemplateContratoServicos]
	}

	dados = sanitizeDadosCliente(dados)
	values := map[string]string{
		"cliente.nome":     dados.Nome,
		"cliente.cpf":      dados.CPF,
		"cliente.endereco": dados.Endereco,
		"cliente.telefone": dados.Telefone,
		"cliente.email":    dados.Email,
		"advogado":         dados.Advogado,
		"hoje":             now.Format("02/01/2006"),
	}

	nome := dados.Nome
	if nome == "" {
		nome = "Cliente"
	}
	filename := fmt.Sprintf("%s_%s_%s.txt", tmpl.Titulo, nome, now.Format("20060102_150405"))

	return &Documento{
		Titulo:   tmpl.Titulo,
		Filename: unsafeFilenameChars.ReplaceAllString(filename, "-"),
		Conteudo: RenderTemplate(tmpl.Corpo, values),
	}
}

// RenderTemplate replaces {{variable}} placeholders. Empty or unknown
// variables render their bracketed token, or are left as written when
// they have none.
func RenderTemplate(content string, values map[string]string) string {
	return variableRegex.ReplaceAllStringFunc(content, func(match string) string {
		key := variableRegex.FindStringSubmatch(match)[1]

		if value := strings.TrimSpace(values[key]); value != "" {
			return value
		}
		if token, ok := placeholderTokens[key]; ok {
			return token
		}
		return match
	})
}

func sanitizeDadosCliente(d DadosCliente) DadosCliente {
	return DadosCliente{
		Nome:     SanitizeText(d.Nome),
		CPF:      SanitizeText(d.CPF),
		Endereco: SanitizeText(d.Endereco),
		Telefone: SanitizeText(d.Telefone),
		Email:    SanitizeText(d.Email),
		Advogado: SanitizeText(d.Advogado),
	}
}
