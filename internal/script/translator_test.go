package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/dyne/docker2sh/internal/dockerfile"
)

func mustParse(t *testing.T, input string) []dockerfile.Instruction {
	t.Helper()
	instructions, err := dockerfile.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return instructions
}

func TestTranslateInstruction(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"env legacy form", "ENV FOO bar\n", "export FOO=bar\n"},
		{"env assignment form", "ENV FOO=bar\n", "export FOO=bar\n"},
		{"env dollar escaped", "ENV PATH $PATH:/opt/bin\n", "export PATH=\\$PATH:/opt/bin\n"},
		{"run plain", "RUN apk add curl\n", "apk add curl\n"},
		{"run backticks", "RUN echo `date`\n", "echo \"$(date)\"\n"},
		{"run two substitutions", "RUN echo `date` `id -u`\n", "echo \"$(date)\" \"$(id -u)\"\n"},
		{"run dollar escaped", "RUN echo $HOME\n", "echo \\$HOME\n"},
		{"workdir", "WORKDIR /app\n", "mkdir -p /app && cd /app\n"},
		{"arg passthrough", "ARG VERSION=1.0\n", "VERSION=1.0\n"},
		{"add", "ADD http://example.org/pkg.tar /tmp/pkg.tar\n", "wget -O /tmp/pkg.tar http://example.org/pkg.tar\n"},
		{"unknown keyword", "FOOBAR something\n", ""},
		{"from placeholder", "FROM alpine:3.19\n", "#\n# FROM not implemented\n# Instruction: FROM alpine:3.19\n#\n"},
		{"cmd placeholder", "CMD [\"/bin/sh\"]\n", "#\n# CMD not implemented\n# Instruction: CMD [\"/bin/sh\"]\n#\n"},
	}

	tr := &Translator{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			instructions := mustParse(t, tc.input)
			if len(instructions) != 1 {
				t.Fatalf("expected 1 instruction, got %d", len(instructions))
			}
			got, err := tr.Instruction(instructions[0])
			if err != nil {
				t.Fatalf("Instruction failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTranslatePlaceholderKinds(t *testing.T) {
	// Every recognized instruction without a host-side equivalent emits a
	// commented placeholder naming the keyword.
	for _, kw := range []string{
		"CMD", "ENTRYPOINT", "EXPOSE", "FROM", "HEALTHCHECK", "LABEL",
		"MAINTAINER", "ONBUILD", "SHELL", "STOPSIGNAL", "USER", "VOLUME",
	} {
		tr := &Translator{}
		got, err := tr.Instruction(dockerfile.Instruction{
			Kind:    dockerfile.KindOf(kw),
			Keyword: kw,
			Value:   "value",
		})
		if err != nil {
			t.Fatalf("Instruction(%s) failed: %v", kw, err)
		}
		if !strings.Contains(got, kw+" not implemented") {
			t.Errorf("Instruction(%s): expected placeholder, got %q", kw, got)
		}
	}
}

func TestTranslateAddArity(t *testing.T) {
	tr := &Translator{}
	_, err := tr.Instruction(dockerfile.Instruction{
		Kind:    dockerfile.KindAdd,
		Keyword: "ADD",
		Value:   "onlyone",
	})
	if err == nil {
		t.Fatal("expected error for ADD with one token")
	}

	var terr *TranslateError
	if !errors.As(err, &terr) || terr.Op != "ADD" {
		t.Errorf("expected ADD TranslateError, got %v", err)
	}
}

func TestScript(t *testing.T) {
	instructions := mustParse(t, `FROM alpine
ENV FOO bar
RUN echo hi
FOOBAR ignored
WORKDIR /app
`)

	tr := &Translator{}
	got, err := tr.Script(instructions)
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}

	want := "#!/bin/sh\n" +
		"#\n# FROM not implemented\n# Instruction: FROM alpine\n#\n" +
		"export FOO=bar\n" +
		"echo hi\n" +
		"mkdir -p /app && cd /app\n"
	if got != want {
		t.Errorf("expected:\n%q\ngot:\n%q", want, got)
	}
}

func TestScriptAbortsOnError(t *testing.T) {
	instructions := mustParse(t, `RUN echo hi
COPY missing-file /dst
`)

	tr := &Translator{}
	if _, err := tr.Script(instructions); err == nil {
		t.Fatal("expected error for unreadable COPY source")
	}
}
