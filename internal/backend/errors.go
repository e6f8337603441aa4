package backend

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means the backend rejected the stored credential, or there
// was none. The credential is cleared when this is returned.
var ErrUnauthorized = errors.New("not authenticated")

// AuthenticationError is a rejected login or registration.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (%d): %s", e.Status, e.Message)
}

// NetworkError is a transport failure talking to the backend.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError is an unexpected non-2xx response.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned status %d: %s", e.Op, e.Status, e.Body)
}

// UserMessage turns a backend error into a retryable message for the player.
func UserMessage(err error) string {
	var authErr *AuthenticationError
	var netErr *NetworkError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.As(err, &netErr):
		return "Erro de conexão com o servidor"
	case errors.Is(err, ErrUnauthorized):
		return "Sessão expirada. Faça login novamente."
	default:
		return "Algo deu errado. Tente novamente."
	}
}
