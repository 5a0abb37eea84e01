package errors

import "fmt"

var (
	ErrNoHistory        = fmt.Errorf("no pairing round stored")
	ErrUnknownAlgorithm = fmt.Errorf("unknown generator algorithm")
)

// CommunicationError reports a failed round trip to the messaging service.
// A pairing run aborts on the first one raised while discovering state:
// matching must never proceed on partial or stale remote data.
type CommunicationError struct {
	Op  string
	Err error
}

func NewCommunicationError(op string, err error) *CommunicationError {
	return &CommunicationError{Op: op, Err: err}
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("communication failure during %s: %v", e.Op, e.Err)
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}
