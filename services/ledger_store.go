package services

import "escritorio_app_go/models"

// LoadOutcome tells how the backing file was found at startup
type LoadOutcome int

const (
	LoadLoaded LoadOutcome = iota
	LoadAbsent
	LoadCorrupt
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadLoaded:
		return "loaded"
	case LoadAbsent:
		return "absent"
	case LoadCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// LoadResult is what a LedgerStore returns from Load. Records is only
// meaningful for LoadLoaded and Err only for LoadCorrupt.
type LoadResult struct {
	Outcome LoadOutcome
	Records []models.Processo
	Err     error
}

// Loaded builds a successful LoadResult
func Loaded(records []models.Processo) LoadResult {
	return LoadResult{Outcome: LoadLoaded, Records: records}
}

// Absent builds a LoadResult for a missing backing file
func Absent() LoadResult {
	return LoadResult{Outcome: LoadAbsent}
}

// Corrupt builds a LoadResult for an unreadable backing file
func Corrupt(err error) LoadResult {
	return LoadResult{Outcome: LoadCorrupt, Err: err}
}

// LedgerStore persists the whole ledger. Load always reads everything and
// Save always overwrites everything.
type LedgerStore interface {
	Load() LoadResult
	Save(records []models.Processo) error
}
