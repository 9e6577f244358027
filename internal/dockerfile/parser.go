package dockerfile

import (
	"bufio"
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

// Option configures a Parse run.
type Option func(*parseConfig)

type parseConfig struct {
	keepTabs bool
}

// WithKeepTabs disables tab stripping in reconstructed instruction values.
func WithKeepTabs() Option {
	return func(c *parseConfig) { c.keepTabs = true }
}

var (
	// instructionPattern matches "KEYWORD rest". A bare keyword with no
	// arguments does not match and the line is skipped.
	instructionPattern = regexp.MustCompile(`^\s*(\w+)\s+(.*)$`)
	// continuationPattern matches a trailing backslash, possibly followed
	// by trailing whitespace.
	continuationPattern = regexp.MustCompile(`\\\s*$`)
	commentPattern      = regexp.MustCompile(`^\s*#`)
)

// Parse reconstructs the ordered sequence of logical instructions from
// Dockerfile source text. Blank and malformed lines are skipped silently;
// an instruction left open by a trailing backslash at end of input is
// dropped.
func Parse(data []byte, opts ...Option) ([]Instruction, error) {
	if err := ValidateSize(data); err != nil {
		return nil, err
	}

	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, MaxLineLength), MaxLineLength)

	var (
		instructions   []Instruction
		current        Instruction
		inContinuation bool
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Comments are skipped everywhere and never end a continuation.
		if commentPattern.MatchString(line) {
			continue
		}

		if !inContinuation {
			m := instructionPattern.FindStringSubmatch(line)
			if m == nil {
				// Blank or malformed line.
				continue
			}
			keyword := strings.ToUpper(m[1])
			current = Instruction{
				Kind:    KindOf(keyword),
				Keyword: keyword,
				Value:   stripContinuation(m[2]),
			}
		} else if current.Value != "" {
			current.Value += stripContinuation(line)
		} else {
			// First continuation line of an instruction with an empty
			// value so far; drop its leading whitespace.
			current.Value = stripContinuation(strings.TrimLeftFunc(line, unicode.IsSpace))
		}

		inContinuation = continuationPattern.MatchString(line)
		if !inContinuation {
			if !cfg.keepTabs {
				current.Value = strings.ReplaceAll(current.Value, "\t", "")
			}
			instructions = append(instructions, current)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Message: "read error: " + err.Error()}
	}

	if inContinuation {
		// Historical behavior: the unterminated instruction is not emitted.
		slog.Debug("dropping unterminated continuation", "instruction", current.Keyword)
	}

	return instructions, nil
}

// stripContinuation removes trailing whitespace and a single trailing
// backslash from a line.
func stripContinuation(line string) string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	return strings.TrimSuffix(line, "\\")
}
