package gateway

import "fmt"

// StatusError indicates the reconciliation gateway returned a non-2xx response.
type StatusError struct {
	Function   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway function %s returned status %d: %s", e.Function, e.StatusCode, e.Body)
}
