package apperr

// ValidationError marks a request whose input could not be accepted.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// UnprocessableError marks input that was well-formed but produced nothing
// to evaluate, e.g. every retrieval in a run failed.
type UnprocessableError struct {
	Message string
	Err     error
}

func (e *UnprocessableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UnprocessableError) Unwrap() error {
	return e.Err
}

func NewUnprocessable(msg string, err error) *UnprocessableError {
	return &UnprocessableError{Message: msg, Err: err}
}
