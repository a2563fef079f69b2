package models

// DeadlineBucket classifies how close a case is to its deadline
type DeadlineBucket string

const (
	DeadlineOverdue   DeadlineBucket = "vencido"
	DeadlineCritical  DeadlineBucket = "critico"
	DeadlineAttention DeadlineBucket = "atencao"
	DeadlineNormal    DeadlineBucket = "normal"
)

// AllDeadlineBuckets lists the buckets from most to least urgent
var AllDeadlineBuckets = []DeadlineBucket{
	DeadlineOverdue,
	DeadlineCritical,
	DeadlineAttention,
	DeadlineNormal,
}

// IsUrgent reports whether the bucket warrants an alert
func (b DeadlineBucket) IsUrgent() bool {
	return b == DeadlineOverdue || b == DeadlineCritical
}

// Prazo is the deadline projection of a case. It is computed on every read
// and never persisted.
type Prazo struct {
	Numero        string         `json:"numero"`
	Cliente       string         `json:"cliente"`
	Advogado      string         `json:"advogado"`
	DataIntimacao string         `json:"dataIntimacao"`
	PrazoFinal    string         `json:"prazoFinal"`
	DiasRestantes int            `json:"diasRestantes"`
	StatusPrazo   DeadlineBucket `json:"statusPrazo"`
}
