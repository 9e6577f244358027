package dockerfile

import (
	"encoding/json"
	"strings"
)

// Kind identifies the type of Dockerfile instruction.
type Kind int

const (
	KindUnknown Kind = iota
	KindAdd
	KindArg
	KindCmd
	KindCopy
	KindEntrypoint
	KindEnv
	KindExpose
	KindFrom
	KindHealthcheck
	KindLabel
	KindMaintainer
	KindOnbuild
	KindRun
	KindShell
	KindStopSignal
	KindUser
	KindVolume
	KindWorkDir
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "ADD"
	case KindArg:
		return "ARG"
	case KindCmd:
		return "CMD"
	case KindCopy:
		return "COPY"
	case KindEntrypoint:
		return "ENTRYPOINT"
	case KindEnv:
		return "ENV"
	case KindExpose:
		return "EXPOSE"
	case KindFrom:
		return "FROM"
	case KindHealthcheck:
		return "HEALTHCHECK"
	case KindLabel:
		return "LABEL"
	case KindMaintainer:
		return "MAINTAINER"
	case KindOnbuild:
		return "ONBUILD"
	case KindRun:
		return "RUN"
	case KindShell:
		return "SHELL"
	case KindStopSignal:
		return "STOPSIGNAL"
	case KindUser:
		return "USER"
	case KindVolume:
		return "VOLUME"
	case KindWorkDir:
		return "WORKDIR"
	default:
		return "UNKNOWN"
	}
}

// KindOf maps an uppercased instruction keyword to its Kind.
// Unrecognized keywords map to KindUnknown.
func KindOf(keyword string) Kind {
	switch keyword {
	case "ADD":
		return KindAdd
	case "ARG":
		return KindArg
	case "CMD":
		return KindCmd
	case "COPY":
		return KindCopy
	case "ENTRYPOINT":
		return KindEntrypoint
	case "ENV":
		return KindEnv
	case "EXPOSE":
		return KindExpose
	case "FROM":
		return KindFrom
	case "HEALTHCHECK":
		return KindHealthcheck
	case "LABEL":
		return KindLabel
	case "MAINTAINER":
		return KindMaintainer
	case "ONBUILD":
		return KindOnbuild
	case "RUN":
		return KindRun
	case "SHELL":
		return KindShell
	case "STOPSIGNAL":
		return KindStopSignal
	case "USER":
		return KindUser
	case "VOLUME":
		return KindVolume
	case "WORKDIR":
		return KindWorkDir
	default:
		return KindUnknown
	}
}

// Instruction is a single logical Dockerfile instruction, reconstructed from
// one or more physical lines.
type Instruction struct {
	Kind    Kind
	Keyword string // Uppercased instruction word; kept for unknown instructions
	Value   string // Continuation-joined argument text
}

// instructionJSON is the wire form of an Instruction.
type instructionJSON struct {
	Instruction string `json:"instruction"`
	Value       string `json:"value"`
}

func (i Instruction) MarshalJSON() ([]byte, error) {
	return json.Marshal(instructionJSON{Instruction: i.Keyword, Value: i.Value})
}

func (i *Instruction) UnmarshalJSON(data []byte) error {
	var w instructionJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	i.Keyword = strings.ToUpper(w.Instruction)
	i.Kind = KindOf(i.Keyword)
	i.Value = w.Value
	return nil
}
