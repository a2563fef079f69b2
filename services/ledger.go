package services

import (
	"escritorio_app_go/models"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// Ledger owns the case records. Every operation runs under a single mutex,
// so a mutation and its file flush never interleave with another request.
// The backing store is read once, at construction.
type Ledger struct {
	mu       sync.Mutex
	store    LedgerStore
	now      func() time.Time
	order    []string
	byNumero map[string]*models.Processo
}

// LedgerOption customizes a Ledger
type LedgerOption func(*Ledger)

// WithClock overrides the ledger clock
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger loads the ledger from store. A missing or unreadable file is
// replaced by the seed records, which are written back immediately.
func NewLedger(store LedgerStore, opts ...LedgerOption) *Ledger {
	l := newLedger(store, opts)

	result := store.Load()
	switch result.Outcome {
	case LoadLoaded:
		l.replace(result.Records)
		log.Printf("[LEDGER] Loaded %d processos", len(l.order))
		return l
	case LoadCorrupt:
		log.Printf("[WARNING] Failed to read ledger file, starting from seed data: %v", result.Err)
	case LoadAbsent:
		log.Println("[LEDGER] Ledger file not found, creating it with seed data")
	}

	l.replace(SeedProcessos(l.now()))
	if err := l.store.Save(l.snapshot()); err != nil {
		log.Printf("[WARNING] Failed to write seed data: %v", err)
	}
	return l
}

// OpenLedger loads an existing ledger without ever writing to store. A
// missing or unreadable file is an error.
func OpenLedger(store LedgerStore, opts ...LedgerOption) (*Ledger, error) {
	l := newLedger(store, opts)

	result := store.Load()
	switch result.Outcome {
	case LoadLoaded:
		l.replace(result.Records)
		return l, nil
	case LoadAbsent:
		return nil, ErrLedgerAbsent
	default:
		return nil, fmt.Errorf("failed to read ledger: %w", result.Err)
	}
}

func newLedger(store LedgerStore, opts []LedgerOption) *Ledger {
	l := &Ledger{
		store:    store,
		now:      time.Now,
		byNumero: make(map[string]*models.Processo),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SeedProcessos returns the two example cases used to bootstrap an empty ledger
func SeedProcessos(now time.Time) []models.Processo {
	today := FormatDate(now)
	return []models.Processo{
		{
			Numero:        "001/2025",
			Cliente:       "Cliente Exemplo 1",
			Advogado:      "Dr. Silva",
			Tipo:          "Cível",
			DataCadastro:  today,
			DataIntimacao: today,
			DiasPrazo:     15,
			Status:        models.ProcessoStatusAtivo,
		},
		{
			Numero:        "002/2025",
			Cliente:       "Cliente Exemplo 2",
			Advogado:      "Dra. Santos",
			Tipo:          "Trabalhista",
			DataCadastro:  today,
			DataIntimacao: today,
			DiasPrazo:     10,
			Status:        models.ProcessoStatusAtivo,
		},
	}
}

func (l *Ledger) replace(records []models.Processo) {
	l.order = make([]string, 0, len(records))
	l.byNumero = make(map[string]*models.Processo, len(records))
	for i := range records {
		rec := records[i]
		if _, exists := l.byNumero[rec.Numero]; exists {
			log.Printf("[WARNING] Duplicate processo %s in ledger file, keeping the first row", rec.Numero)
			continue
		}
		l.byNumero[rec.Numero] = &rec
		l.order = append(l.order, rec.Numero)
	}
}

func (l *Ledger) snapshot() []models.Processo {
	out := make([]models.Processo, 0, len(l.order))
	for _, numero := range l.order {
		out = append(out, *l.byNumero[numero])
	}
	return out
}

// persist flushes the in-memory state. On failure the in-memory state is
// kept as is and the caller gets an ErrPersistence.
func (l *Ledger) persist() error {
	if err := l.store.Save(l.snapshot()); err != nil {
		log.Printf("[LEDGER] Failed to save ledger: %v", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Add creates a case. Registration date is stamped from the ledger clock.
func (l *Ledger) Add(input models.NovoProcesso) error {
	numero := input.Numero
	if strings.TrimSpace(numero) == "" {
		return fmt.Errorf("%w: número do processo é obrigatório", ErrInvalidField)
	}
	if err := validateIntimacao(input.DataIntimacao); err != nil {
		return err
	}
	if input.DiasPrazo != nil && *input.DiasPrazo < 0 {
		return fmt.Errorf("%w: diasPrazo não pode ser negativo", ErrInvalidField)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byNumero[numero]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCase, numero)
	}

	today := FormatDate(l.now())
	proc := &models.Processo{
		Numero:        numero,
		Cliente:       input.Cliente,
		Advogado:      input.Advogado,
		Tipo:          input.Tipo,
		DataCadastro:  today,
		DataIntimacao: today,
		DiasPrazo:     models.DefaultDiasPrazo,
		Status:        models.ProcessoStatusAtivo,
	}
	if input.DataIntimacao != "" {
		proc.DataIntimacao = input.DataIntimacao
	}
	if input.DiasPrazo != nil {
		proc.DiasPrazo = *input.DiasPrazo
	}

	l.byNumero[numero] = proc
	l.order = append(l.order, numero)
	return l.persist()
}

// Update applies the present fields of patch to the case
func (l *Ledger) Update(numero string, patch models.ProcessoPatch) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	proc, ok := l.byNumero[numero]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, numero)
	}

	if patch.DataIntimacao != nil {
		if *patch.DataIntimacao == "" {
			return fmt.Errorf("%w: dataIntimacao não pode ser vazia", ErrInvalidField)
		}
		if err := validateIntimacao(*patch.DataIntimacao); err != nil {
			return err
		}
	}
	if patch.DiasPrazo != nil && *patch.DiasPrazo < 0 {
		return fmt.Errorf("%w: diasPrazo não pode ser negativo", ErrInvalidField)
	}

	patch.Apply(proc)
	return l.persist()
}

// Remove deletes the case
func (l *Ledger) Remove(numero string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byNumero[numero]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, numero)
	}

	delete(l.byNumero, numero)
	for i, n := range l.order {
		if n == numero {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return l.persist()
}

// Get returns a copy of one case
func (l *Ledger) Get(numero string) (models.Processo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	proc, ok := l.byNumero[numero]
	if !ok {
		return models.Processo{}, fmt.Errorf("%w: %s", ErrNotFound, numero)
	}
	return *proc, nil
}

// ListAll returns every case in storage order
func (l *Ledger) ListAll() []models.Processo {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshot()
}

// Len returns the number of cases
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.order)
}

// Search returns the cases whose number, client, attorney or type contain
// termo, ignoring case. A blank term returns every case.
func (l *Ledger) Search(termo string) []models.Processo {
	if strings.TrimSpace(termo) == "" {
		return l.ListAll()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	needle := strings.ToLower(termo)
	out := make([]models.Processo, 0)
	for _, numero := range l.order {
		proc := l.byNumero[numero]
		if matchesTerm(proc, needle) {
			out = append(out, *proc)
		}
	}
	return out
}

func matchesTerm(proc *models.Processo, needle string) bool {
	for _, field := range []string{proc.Numero, proc.Cliente, proc.Advogado, proc.Tipo} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// ComputeDeadlines returns the deadline projection of every case. Cases with
// an unparseable notice date are logged and left out.
func (l *Ledger) ComputeDeadlines() []models.Prazo {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.computeDeadlines(l.now())
}

func (l *Ledger) computeDeadlines(now time.Time) []models.Prazo {
	prazos := make([]models.Prazo, 0, len(l.order))
	for _, numero := range l.order {
		proc := l.byNumero[numero]
		if proc.DiasPrazoInvalido != "" {
			log.Printf("[LEDGER] Skipping deadline for processo %s: invalid %s value %q", proc.Numero, ColDiasPrazo, proc.DiasPrazoInvalido)
			continue
		}

		notice, err := ParseStoredDate(proc.DataIntimacao)
		if err != nil {
			log.Printf("[LEDGER] Skipping deadline for processo %s: %v", proc.Numero, err)
			continue
		}

		result := ClassifyDeadline(notice, proc.DiasPrazo, now)
		prazos = append(prazos, models.Prazo{
			Numero:        proc.Numero,
			Cliente:       proc.Cliente,
			Advogado:      proc.Advogado,
			DataIntimacao: proc.DataIntimacao,
			PrazoFinal:    FormatDate(result.PrazoFinal),
			DiasRestantes: result.DiasRestantes,
			StatusPrazo:   result.Bucket,
		})
	}
	return prazos
}

// Report aggregates the cases registered in the given month and year. Zero
// values select the current month or year. The deadline breakdown covers the
// whole ledger, not only the period.
func (l *Ledger) Report(mes, ano int) models.Relatorio {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if mes == 0 {
		mes = int(now.Month())
	}
	if ano == 0 {
		ano = now.Year()
	}
	periodo := fmt.Sprintf("%02d/%d", mes, ano)

	if len(l.order) == 0 {
		return models.Relatorio{
			Periodo:        periodo,
			TotalProcessos: 0,
			Mensagem:       "Não há processos cadastrados",
		}
	}

	porAdvogado := make(map[string]int)
	porTipo := make(map[string]int)
	porStatus := make(map[string]int)
	total := 0

	for _, numero := range l.order {
		proc := l.byNumero[numero]

		cadastro, err := ParseStoredDate(proc.DataCadastro)
		if err != nil {
			log.Printf("[LEDGER] Processo %s left out of report: %v", proc.Numero, err)
			continue
		}
		if int(cadastro.Month()) != mes || cadastro.Year() != ano {
			continue
		}

		total++
		porAdvogado[proc.Advogado]++
		porTipo[proc.Tipo]++
		porStatus[proc.Status]++
	}

	if total == 0 {
		return models.Relatorio{
			Periodo:        periodo,
			TotalProcessos: 0,
			Mensagem:       fmt.Sprintf("Não há processos cadastrados para %s", periodo),
		}
	}

	statusPrazos := make(map[models.DeadlineBucket]int)
	for _, prazo := range l.computeDeadlines(now) {
		statusPrazos[prazo.StatusPrazo]++
	}

	return models.Relatorio{
		Periodo:              periodo,
		TotalProcessos:       total,
		ProcessosPorAdvogado: porAdvogado,
		ProcessosPorTipo:     porTipo,
		ProcessosPorStatus:   porStatus,
		StatusPrazos:         statusPrazos,
		DataGeracao:          now.Format("02/01/2006 15:04:05"),
	}
}

// Status summarizes the ledger and its deadlines
func (l *Ledger) Status() models.StatusSistema {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	status := models.StatusSistema{
		TotalProcessos:    len(l.order),
		UltimaAtualizacao: now.Format("02/01/2006 15:04:05"),
	}
	for _, prazo := range l.computeDeadlines(now) {
		switch prazo.StatusPrazo {
		case models.DeadlineOverdue:
			status.Prazos.Vencidos++
		case models.DeadlineCritical:
			status.Prazos.Criticos++
		case models.DeadlineAttention:
			status.Prazos.Atencao++
		case models.DeadlineNormal:
			status.Prazos.Normais++
		}
	}
	return status
}

func validateIntimacao(value string) error {
	if value == "" {
		return nil
	}
	if _, err := ParseDate(value); err != nil {
		return fmt.Errorf("%w: dataIntimacao %v", ErrInvalidField, err)
	}
	return nil
}
