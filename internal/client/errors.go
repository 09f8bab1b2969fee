package client

import (
	"errors"
	"fmt"
	"net/http"
)

// RemoteError is a non-2xx response from the artifact store. Status
// carries the HTTP status code; Mensagem the error body, when the
// store sent one.
type RemoteError struct {
	Status   int
	Mensagem string
}

func (e *RemoteError) Error() string {
	if e.Mensagem != "" {
		return fmt.Sprintf("servidor de dados respondeu %d: %s", e.Status, e.Mensagem)
	}
	return fmt.Sprintf("servidor de dados respondeu %d", e.Status)
}

// NetworkError is a request that never produced a usable response:
// connection refused, timeout, or a malformed response body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: erro de conexão com o servidor de dados: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether the error is a 404 from the store.
func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}

// StatusOf returns the HTTP status of a RemoteError, or 0 for any
// other error.
func StatusOf(err error) int {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}
