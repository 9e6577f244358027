package dockerfile

import (
	"errors"
	"fmt"
)

// Input limit constants.
const (
	MaxDockerfileSize = 1 << 20 // 1MB
	MaxLineLength     = 1 << 20 // 1MB
)

// ErrDockerfileTooLarge is returned when the input exceeds MaxDockerfileSize.
var ErrDockerfileTooLarge = errors.New("dockerfile exceeds maximum size")

// ParseError represents an error while scanning Dockerfile input. Malformed
// instruction lines are not errors; they are skipped during reconstruction.
type ParseError struct {
	Line    int    // Line number (1-indexed, 0 if not applicable)
	Message string // Error description
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ValidateSize checks that the input doesn't exceed the maximum size.
func ValidateSize(data []byte) error {
	if len(data) > MaxDockerfileSize {
		return ErrDockerfileTooLarge
	}
	return nil
}
