package script

import (
	"fmt"
	"strings"

	"github.com/dyne/docker2sh/internal/dockerfile"
)

// Shebang is the first line of every generated script.
const Shebang = "#!/bin/sh\n"

// Translator converts logical Dockerfile instructions into POSIX shell
// fragments. Dockerfile, when set, is the path of the source Dockerfile;
// COPY sources are resolved relative to its directory when the path
// contains a separator.
type Translator struct {
	Dockerfile string
}

// Script translates the full instruction sequence into a shell script
// beginning with a shebang line. Assembly is eager: a failure in any
// instruction aborts before anything is emitted.
func (t *Translator) Script(instructions []dockerfile.Instruction) (string, error) {
	var sb strings.Builder
	sb.WriteString(Shebang)
	for _, inst := range instructions {
		frag, err := t.Instruction(inst)
		if err != nil {
			return "", err
		}
		sb.WriteString(frag)
	}
	return sb.String(), nil
}

// Instruction translates a single instruction into a shell fragment ending
// in a newline. Unknown instructions translate to the empty string.
func (t *Translator) Instruction(inst dockerfile.Instruction) (string, error) {
	switch inst.Kind {
	case dockerfile.KindAdd:
		return translateAdd(inst.Value)
	case dockerfile.KindArg:
		return inst.Value + "\n", nil
	case dockerfile.KindEnv:
		return translateEnv(inst.Value), nil
	case dockerfile.KindRun:
		return translateRun(inst.Value), nil
	case dockerfile.KindWorkDir:
		return fmt.Sprintf("mkdir -p %s && cd %s\n", inst.Value, inst.Value), nil
	case dockerfile.KindCopy:
		return t.translateCopy(inst.Value)
	case dockerfile.KindCmd, dockerfile.KindEntrypoint, dockerfile.KindExpose,
		dockerfile.KindFrom, dockerfile.KindHealthcheck, dockerfile.KindLabel,
		dockerfile.KindMaintainer, dockerfile.KindOnbuild, dockerfile.KindShell,
		dockerfile.KindStopSignal, dockerfile.KindUser, dockerfile.KindVolume:
		return notImplemented(inst), nil
	default:
		// Unknown instructions are silently ignored.
		return "", nil
	}
}

// translateAdd emits a wget invocation fetching the source to the
// destination. The value must split into exactly two fields; neither may
// contain whitespace.
func translateAdd(value string) (string, error) {
	args := strings.Fields(escapeDollar(value))
	if len(args) != 2 {
		return "", &TranslateError{Op: "ADD", Message: "expected source and destination"}
	}
	return fmt.Sprintf("wget -O %s %s\n", args[1], args[0]), nil
}

// translateEnv emits an export statement, coercing the legacy "KEY VALUE"
// form into "KEY=VALUE". A value that already contains '=' is left alone.
func translateEnv(value string) string {
	if !strings.Contains(value, "=") {
		value = strings.Replace(value, " ", "=", 1)
	}
	return "export " + escapeDollar(value) + "\n"
}

// translateRun rewrites backtick command substitution as "$(...)", pairing
// backticks left to right. Dollar escaping happens before the rewrite so
// the inserted $( survives.
func translateRun(value string) string {
	value = escapeDollar(value)
	for strings.Contains(value, "`") {
		value = strings.Replace(value, "`", `"$(`, 1)
		value = strings.Replace(value, "`", `)"`, 1)
	}
	return value + "\n"
}

// notImplemented emits a commented placeholder block for instructions with
// no host-side equivalent.
func notImplemented(inst dockerfile.Instruction) string {
	return fmt.Sprintf("#\n# %s not implemented\n# Instruction: %s %s\n#\n",
		inst.Keyword, inst.Keyword, inst.Value)
}

// escapeDollar escapes literal '$' so the shell does not expand it.
func escapeDollar(s string) string {
	return strings.ReplaceAll(s, "$", `\$`)
}
