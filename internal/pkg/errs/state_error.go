package errs

// StateError reports a rejected lifecycle transition together with the state the
// record is actually in.
type StateError struct {
	Entity  string
	Current string
	err     error
}

func NewStateError(entity, current string, err error) error {
	return &StateError{Entity: entity, Current: current, err: err}
}

func (e *StateError) Error() string {
	return e.Entity + " is " + e.Current + ": " + e.err.Error()
}

func (e *StateError) Unwrap() error {
	return e.err
}
