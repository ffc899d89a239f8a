package engine

import "fmt"

// TransportError indicates the exchange with the engine itself failed:
// network unreachable, non-2xx status, or a malformed reply. Callers should
// show a generic localized connection message, never the raw error.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: engine returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EngineError indicates the engine processed the request but reported an
// application-level failure (success=false). The server-supplied message is
// safe to surface verbatim.
type EngineError struct {
	Op      string
	Message string
}

func (e *EngineError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: simulation failed", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
