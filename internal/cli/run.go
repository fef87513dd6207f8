package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/icebergs/count"
	"github.com/katalvlaran/icebergs/gridfile"
)

// LoadEnv loads KEY=value pairs from the given .env files (".env" when none)
// into the process environment. A missing file is not an error.
func LoadEnv(logger *slog.Logger, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("Env file not found, skipping.", "file", f)
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		logger.Debug("Env file loaded.", "file", f)
	}
	return nil
}

// NewLogger builds the slog.Logger described by cfg, writing to w.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Run loads every grid in cfg.GridPath, counts its paths and writes one
// line per grid to out:
//
//	harbour 3x4 paths=4
//
// With AlgoBoth the two counters are cross-checked and a disagreement is
// reported as an ExitError with ExitMismatch.
func Run(cfg *Config, out io.Writer, logger *slog.Logger) error {
	grids, err := gridfile.NewDecoder(
		gridfile.WithLogger(logger),
		gridfile.WithVariables(cfg.Variables),
	).Load(cfg.GridPath)
	if err != nil {
		return &ExitError{Code: ExitRuntime, Message: err.Error()}
	}

	dpOpts := count.DefaultOptions()
	if cfg.Memory == "tworows" {
		dpOpts.MemoryMode = count.TwoRows
	}

	for _, ng := range grids {
		g := ng.Grid
		steps := g.Rows() + g.Columns() - 2
		log := logger.With("grid", ng.Name, "rows", g.Rows(), "columns", g.Columns())

		var n uint64
		switch cfg.Algorithm {
		case AlgoExhaustive:
			if steps > cfg.MaxExhaustiveSteps {
				return &ExitError{Code: ExitRuntime, Message: fmt.Sprintf(
					"grid %q: %d steps exceeds max-exhaustive-steps=%d", ng.Name, steps, cfg.MaxExhaustiveSteps)}
			}
			n, err = count.Count(g, count.Options{Algorithm: count.AlgoExhaustive})
		default:
			n, err = count.Count(g, dpOpts)
		}
		if err != nil {
			return &ExitError{Code: ExitRuntime, Message: fmt.Sprintf("grid %q: %v", ng.Name, err)}
		}

		if cfg.Algorithm == AlgoBoth {
			if steps > cfg.MaxExhaustiveSteps {
				log.Warn("Skipping exhaustive cross-check.", "steps", steps, "max", cfg.MaxExhaustiveSteps)
			} else {
				ex, err := count.Count(g, count.Options{Algorithm: count.AlgoExhaustive})
				if err != nil {
					return &ExitError{Code: ExitRuntime, Message: fmt.Sprintf("grid %q: %v", ng.Name, err)}
				}
				if ex != n {
					log.Error("Counters disagree.", "dynprog", n, "exhaustive", ex)
					return &ExitError{Code: ExitMismatch, Message: fmt.Sprintf(
						"grid %q: dynprog=%d exhaustive=%d", ng.Name, n, ex)}
				}
				log.Debug("Counters agree.", "paths", n)
			}
		}

		if open, err := count.Binomial(uint64(steps), uint64(g.Rows()-1)); err == nil {
			log.Info("Counted paths.", "algo", cfg.Algorithm, "paths", n, "open_paths", open)
		} else {
			log.Info("Counted paths.", "algo", cfg.Algorithm, "paths", n)
		}
		fmt.Fprintf(out, "%s %dx%d paths=%d\n", ng.Name, g.Rows(), g.Columns(), n)
	}

	return nil
}

// Main is the whole program behind cmd/icebergs. It returns the process
// exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	boot := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if err := LoadEnv(boot); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitRuntime
	}

	cfg, shouldExit, err := Parse(args, stdout, os.Getenv)
	if err != nil {
		return report(stderr, err)
	}
	if shouldExit {
		return 0
	}

	if err := Run(cfg, stdout, NewLogger(cfg, stderr)); err != nil {
		return report(stderr, err)
	}
	return 0
}

// report prints err and maps it to an exit code.
func report(w io.Writer, err error) int {
	fmt.Fprintln(w, err)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitRuntime
}
