package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dyne/docker2sh/internal/config"
	"github.com/dyne/docker2sh/internal/dockerfile"
	"github.com/dyne/docker2sh/internal/script"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "docker2sh: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		jsonMode  bool
		shellMode bool
		keepTabs  bool
	)
	flag.BoolVar(&jsonMode, "j", false, "output the parsed instructions as a JSON array")
	flag.BoolVar(&jsonMode, "json", false, "output the parsed instructions as a JSON array")
	flag.BoolVar(&shellMode, "s", false, "output a shell script (default)")
	flag.BoolVar(&shellMode, "shell", false, "output a shell script (default)")
	flag.BoolVar(&keepTabs, "keeptabs", false, "do not strip tab characters from instruction values")
	outPath := flag.String("o", "", "write output to a file instead of stdout")
	configPath := flag.String("config", "", "path to a defaults file (default: docker2sh.yaml next to the Dockerfile)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <Dockerfile>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert a Dockerfile into an equivalent POSIX shell script.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s Dockerfile > build.sh\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -j Dockerfile\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat Dockerfile | %s -\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		return fmt.Errorf("dockerfile path required")
	}
	path := args[0]

	cfg, err := loadConfig(*configPath, path)
	if err != nil {
		return err
	}
	cfg.Output = resolveOutput(cfg.Output, shellMode, jsonMode)
	if keepTabs {
		cfg.KeepTabs = true
	}

	data, err := readInput(path)
	if err != nil {
		return err
	}

	var opts []dockerfile.Option
	if cfg.KeepTabs {
		opts = append(opts, dockerfile.WithKeepTabs())
	}

	instructions, err := dockerfile.Parse(data, opts...)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	slog.Debug("reconstructed instructions", "count", len(instructions), "mode", cfg.Output)

	var out string
	perm := fs.FileMode(0o644)
	if cfg.Output == config.OutputJSON {
		if instructions == nil {
			instructions = []dockerfile.Instruction{}
		}
		buf, err := json.Marshal(instructions)
		if err != nil {
			return fmt.Errorf("encode instructions: %w", err)
		}
		out = string(buf) + "\n"
	} else {
		tr := &script.Translator{Dockerfile: path}
		s, err := tr.Script(instructions)
		if err != nil {
			return err
		}
		out = s + "\n"
		perm = 0o755
	}

	return writeOutput(*outPath, out, perm)
}

// resolveOutput applies the mode flags on top of the configured output
// mode. -j wins over -s when both are given.
func resolveOutput(configured string, shellMode, jsonMode bool) string {
	out := configured
	if shellMode {
		out = config.OutputShell
	}
	if jsonMode {
		out = config.OutputJSON
	}
	return out
}

// loadConfig resolves the effective config: an explicit path must exist,
// otherwise docker2sh.yaml next to the Dockerfile is tried.
func loadConfig(explicit, dockerfilePath string) (config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	if dockerfilePath == "-" {
		return config.Default(), nil
	}
	return config.LoadIfPresent(filepath.Join(filepath.Dir(dockerfilePath), config.DefaultFilename))
}

// readInput reads the whole Dockerfile, from stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			slog.Warn("reading Dockerfile from a terminal; press Ctrl-D to finish")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(path, out string, perm fs.FileMode) error {
	if path == "" {
		_, err := os.Stdout.WriteString(out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// WriteFile applies perm only on create; an existing file keeps its
	// old mode.
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
