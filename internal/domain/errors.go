package domain

import (
	"errors"
	"fmt"
)

// Erros sentinela do pipeline
var (
	ErrFeedUnavailable = errors.New("feed request failed")
	ErrInvalidPayload  = errors.New("feed payload outside contract")
	ErrProfileNotFound = errors.New("user profile not found")
)

// NetworkError indica que uma chamada de feed retornou status de falha ou
// não pôde ser completada. Falha o ciclo inteiro.
type NetworkError struct {
	Feed       string // qual feed falhou: metrics, revenue ou activity
	StatusCode int    // status HTTP quando houver
	Err        error  // erro de transporte subjacente
}

// Error implementa a interface error
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("feed %s returned status %d", e.Feed, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("feed %s: %s", e.Feed, e.Err.Error())
	}
	return fmt.Sprintf("feed %s unavailable", e.Feed)
}

// Unwrap retorna o erro subjacente
func (e *NetworkError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrFeedUnavailable
}

// NewNetworkError cria um NetworkError para um feed específico
func NewNetworkError(feed string, statusCode int, err error) *NetworkError {
	return &NetworkError{Feed: feed, StatusCode: statusCode, Err: err}
}

// ValidationError indica que um transform encontrou um valor fora do
// contrato (multiplicador não finito, status desconhecido, shape malformado).
// Para fins de falha de ciclo é tratado como NetworkError, mas permanece
// distinguível no erro exposto para diagnóstico.
type ValidationError struct {
	Feed    string // feed cujo payload violou o contrato
	Subject string // categoria, evento ou campo envolvido
	Reason  string // descrição da violação
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("validation failed for %s feed (%s): %s", e.Feed, e.Subject, e.Reason)
	}
	return fmt.Sprintf("validation failed for %s feed: %s", e.Feed, e.Reason)
}

// Unwrap retorna o erro sentinela de payload inválido
func (e *ValidationError) Unwrap() error {
	return ErrInvalidPayload
}

// NewValidationError cria um ValidationError para um feed e assunto específicos
func NewValidationError(feed, subject, reason string) *ValidationError {
	return &ValidationError{Feed: feed, Subject: subject, Reason: reason}
}
