package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Environment variables that override flag defaults.
const (
	EnvLogLevel = "ICEBERGS_LOG_LEVEL"
	EnvAlgo     = "ICEBERGS_ALGO"
)

// Algorithm choices accepted by -algo.
const (
	AlgoDynProg    = "dynprog"
	AlgoExhaustive = "exhaustive"
	AlgoBoth       = "both"
)

// Exit codes.
const (
	ExitRuntime  = 1
	ExitUsage    = 2
	ExitMismatch = 3
)

// defaultMaxExhaustiveSteps keeps -algo both from enumerating for hours.
const defaultMaxExhaustiveSteps = 24

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command-line configuration.
type Config struct {
	GridPath           string
	Algorithm          string
	Memory             string
	LogLevel           string
	LogFormat          string
	MaxExhaustiveSteps int
	Variables          map[string]int
}

// varFlag collects repeated -var name=value pairs.
type varFlag map[string]int

func (v varFlag) String() string {
	parts := make([]string, 0, len(v))
	for k, n := range v {
		parts = append(parts, fmt.Sprintf("%s=%d", k, n))
	}
	return strings.Join(parts, ",")
}

func (v varFlag) Set(s string) error {
	name, val, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("variable %s: %w", name, err)
	}
	v[name] = n
	return nil
}

// Parse processes command-line arguments. getenv supplies defaults for the
// log level and algorithm. It returns a populated Config, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, getenv func(string) string) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("icebergs", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
icebergs - count right/down routes across a harbour full of icebergs.

Usage:
  icebergs [options] GRID_FILE

Arguments:
  GRID_FILE
    Path to an .hcl file with one or more grid blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	vars := varFlag{}
	algoFlag := flagSet.String("algo", envOr(getenv, EnvAlgo, AlgoDynProg), "Counting algorithm. Options: 'dynprog', 'exhaustive', 'both'.")
	memoryFlag := flagSet.String("memory", "full", "DP table layout. Options: 'full' or 'tworows'.")
	logLevelFlag := flagSet.String("log-level", envOr(getenv, EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	maxStepsFlag := flagSet.Int("max-exhaustive-steps", defaultMaxExhaustiveSteps, "Largest rows+columns-2 the exhaustive counter will attempt (at most 63).")
	flagSet.Var(vars, "var", "Integer variable for grid expressions, as name=value. Repeatable.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No grid path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "expected exactly one GRID_FILE"}
	}

	algo := strings.ToLower(*algoFlag)
	switch algo {
	case AlgoDynProg, AlgoExhaustive, AlgoBoth:
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid algo: must be 'dynprog', 'exhaustive' or 'both'"}
	}

	memory := strings.ToLower(*memoryFlag)
	if memory != "full" && memory != "tworows" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid memory: must be 'full' or 'tworows'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *maxStepsFlag < 0 || *maxStepsFlag > 63 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid max-exhaustive-steps: must be within [0,63]"}
	}

	cfg := &Config{
		GridPath:           flagSet.Arg(0),
		Algorithm:          algo,
		Memory:             memory,
		LogLevel:           logLevel,
		LogFormat:          logFormat,
		MaxExhaustiveSteps: *maxStepsFlag,
		Variables:          vars,
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// envOr returns getenv(key) when set, otherwise def.
func envOr(getenv func(string) string, key, def string) string {
	if getenv == nil {
		return def
	}
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
