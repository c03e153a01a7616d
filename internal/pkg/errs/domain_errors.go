package errs

import "errors"

// Error kinds shared by every layer. Handlers map a kind to an HTTP status.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrAuthorization  = errors.New("authorization error")
	ErrNotFound       = errors.New("not found error")
	ErrConflict       = errors.New("conflict error")
	ErrCapacity       = errors.New("capacity error")
	ErrDuplicate      = errors.New("duplicate error")
	ErrNotEligible    = errors.New("not eligible error")
	ErrInvalidState   = errors.New("invalid state error")
	ErrPaymentFailed  = errors.New("payment failed error")
)

// DomainError carries a client-safe message together with its kind.
type DomainError struct {
	kind error
	msg  string
}

func Domain(kind error, msg string) *DomainError {
	return &DomainError{kind: kind, msg: msg}
}

func (e *DomainError) Error() string { return e.msg }

func (e *DomainError) Kind() error { return e.kind }

func (e *DomainError) Is(target error) bool {
	return target == e.kind
}

// PublicMessage returns the message of the outermost DomainError in the chain.
func PublicMessage(err error) (string, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.msg, true
	}
	return "", false
}
