package models

// Relatorio is the period report. When the period has no cases only
// Periodo, TotalProcessos and Mensagem are set.
type Relatorio struct {
	Periodo              string                 `json:"periodo"`
	TotalProcessos       int                    `json:"totalProcessos"`
	Mensagem             string                 `json:"mensagem,omitempty"`
	ProcessosPorAdvogado map[string]int         `json:"processosPorAdvogado,omitempty"`
	ProcessosPorTipo     map[string]int         `json:"processosPorTipo,omitempty"`
	ProcessosPorStatus   map[string]int         `json:"processosPorStatus,omitempty"`
	StatusPrazos         map[DeadlineBucket]int `json:"statusPrazos,omitempty"`
	DataGeracao          string                 `json:"dataGeracao,omitempty"`
}

// ContagemPrazos counts deadlines per bucket for the status endpoint
type ContagemPrazos struct {
	Vencidos int `json:"vencidos"`
	Criticos int `json:"criticos"`
	Atencao  int `json:"atencao"`
	Normais  int `json:"normais"`
}

// StatusSistema summarizes the ledger for dashboards
type StatusSistema struct {
	TotalProcessos    int            `json:"totalProcessos"`
	Prazos            ContagemPrazos `json:"prazos"`
	UltimaAtualizacao string         `json:"ultimaAtualizacao"`
}
