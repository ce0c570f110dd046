package instagram

import (
	"errors"
	"fmt"
)

var (
	// ErrFailed is matched by every error returned from a client operation.
	ErrFailed           = errors.New("instagram: request failed")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNotOk            = errors.New("response status is not ok")
	ErrMissingToken     = errors.New("token was not found in response cookies")
)

// Failure describes why an operation failed. Status is 0 when no response
// was received.
type Failure struct {
	Op     string
	Status int
	Body   []byte
	Err    error
}

func (f *Failure) Error() string {
	if f.Status == 0 {
		return fmt.Sprintf("instagram: %s: %v", f.Op, f.Err)
	}
	return fmt.Sprintf("instagram: %s: status %d: %v", f.Op, f.Status, f.Err)
}

func (f *Failure) Unwrap() []error {
	return []error{ErrFailed, f.Err}
}

// IsFailure reports whether err came from a failed client operation.
func IsFailure(err error) bool {
	return errors.Is(err, ErrFailed)
}
