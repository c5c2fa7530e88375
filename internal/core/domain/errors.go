package domain

import "fmt"

// InputUnreadableError reports a document source that could not be opened or decoded.
type InputUnreadableError struct {
	Path string
	Msg  string
	Err  error
}

func (e *InputUnreadableError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("input unreadable: %s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("input unreadable: %s: %s", e.Path, e.Msg)
}

func (e *InputUnreadableError) Unwrap() error { return e.Err }

// NewInputUnreadable builds an InputUnreadableError.
func NewInputUnreadable(path, msg string, err error) error {
	return &InputUnreadableError{Path: path, Msg: msg, Err: err}
}

// OutputUnwritableError reports a destination that could not be written.
type OutputUnwritableError struct {
	Path string
	Msg  string
	Err  error
}

func (e *OutputUnwritableError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("output unwritable: %s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("output unwritable: %s: %s", e.Path, e.Msg)
}

func (e *OutputUnwritableError) Unwrap() error { return e.Err }

// NewOutputUnwritable builds an OutputUnwritableError.
func NewOutputUnwritable(path, msg string, err error) error {
	return &OutputUnwritableError{Path: path, Msg: msg, Err: err}
}
