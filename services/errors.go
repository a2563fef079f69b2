package services

import "errors"

// Ledger errors. Handlers match them with errors.Is.
var (
	ErrNotFound      = errors.New("processo não encontrado")
	ErrDuplicateCase = errors.New("processo já existe")
	ErrPersistence   = errors.New("falha ao salvar dados")
	ErrInvalidField  = errors.New("campo inválido")
	ErrLedgerAbsent  = errors.New("arquivo de processos não encontrado")
)

// Auth errors
var (
	ErrInvalidIdentifier = errors.New("usuário deve ser um e-mail ou CPF válido")
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrWrongPassword     = errors.New("senha incorreta")
	ErrUserInactive      = errors.New("usuário inativo")
	ErrSessionNotFound   = errors.New("sessão não encontrada")
	ErrSessionExpired    = errors.New("sessão expirada")
)
