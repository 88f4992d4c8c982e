package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas
var (
	// Erros de validação
	ErrMissingFields   = errors.New("missing fields")
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrInvalidClientID = errors.New("invalid client id")

	// Erros de integridade referencial
	ErrClientNotFound = errors.New("client not found")

	// Erros de banco de dados
	ErrQueryAccounts = errors.New("error querying accounts")
	ErrCreateAccount = errors.New("error creating account")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Mensagem exibida ao cliente
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
