package queryset

import "errors"

var ErrMalformedQuerySet = errors.New("malformed query set")

// MalformedError reports a query set that cannot be evaluated at all.
// Index is -1 when the problem is not tied to a single record.
type MalformedError struct {
	Index  int
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	msg := ErrMalformedQuerySet.Error() + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedQuerySet
}

func malformed(index int, reason string, err error) *MalformedError {
	return &MalformedError{Index: index, Reason: reason, Err: err}
}
