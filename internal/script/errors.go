package script

import "fmt"

// TranslateError reports a failure translating a single instruction.
type TranslateError struct {
	Op      string // Instruction keyword, e.g. "COPY"
	Message string // Error description
	Err     error  // Underlying error
}

func (e *TranslateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *TranslateError) Unwrap() error {
	return e.Err
}
