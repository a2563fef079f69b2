package models

// ProcessoStatus values. Status is free-form after creation; only the
// default is fixed.
const (
	ProcessoStatusAtivo = "Ativo"
)

// DefaultDiasPrazo is the deadline length used when none is informed
const DefaultDiasPrazo = 15

// DateLayout is the layout used for every date stored in the ledger
const DateLayout = "2006-01-02"

// Processo is a legal case tracked by the office ledger.
// Dates are kept as written in the backing spreadsheet (YYYY-MM-DD).
type Processo struct {
	Numero        string `json:"numero"`
	Cliente       string `json:"cliente"`
	Advogado      string `json:"advogado"`
	Tipo          string `json:"tipo"`
	DataCadastro  string `json:"dataCadastro"`
	DataIntimacao string `json:"dataIntimacao"`
	DiasPrazo     int    `json:"diasPrazo"`
	Status        string `json:"status"`
	// DiasPrazoInvalido keeps a Dias_Prazo cell that is not a whole number,
	// exactly as read. Such a case has no computable deadline.
	DiasPrazoInvalido string `json:"-"`
}

// NovoProcesso carries the fields accepted when creating a case
type NovoProcesso struct {
	Numero        string `json:"numero"`
	Cliente       string `json:"cliente"`
	Advogado      string `json:"advogado"`
	Tipo          string `json:"tipo"`
	DataIntimacao string `json:"dataIntimacao,omitempty"`
	DiasPrazo     *int   `json:"diasPrazo,omitempty"`
}

// ProcessoPatch holds a partial update. Nil fields are left untouched.
type ProcessoPatch struct {
	Cliente       *string `json:"cliente,omitempty"`
	Advogado      *string `json:"advogado,omitempty"`
	Tipo          *string `json:"tipo,omitempty"`
	DataIntimacao *string `json:"dataIntimacao,omitempty"`
	DiasPrazo     *int    `json:"diasPrazo,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p ProcessoPatch) IsEmpty() bool {
	return p.Cliente == nil && p.Advogado == nil && p.Tipo == nil &&
		p.DataIntimacao == nil && p.DiasPrazo == nil && p.Status == nil
}

// Apply writes every present patch field onto the record
func (p ProcessoPatch) Apply(proc *Processo) {
	if p.Cliente != nil {
		proc.Cliente = *p.Cliente
	}
	if p.Advogado != nil {
		proc.Advogado = *p.Advogado
	}
	if p.Tipo != nil {
		proc.Tipo = *p.Tipo
	}
	if p.DataIntimacao != nil {
		proc.DataIntimacao = *p.DataIntimacao
	}
	if p.DiasPrazo != nil {
		proc.DiasPrazo = *p.DiasPrazo
		proc.DiasPrazoInvalido = ""
	}
	if p.Status != nil {
		proc.Status = *p.Status
	}
}
