package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/snakegraph/hypercube"
	"github.com/katalvlaran/snakegraph/snake"
)

// Exit codes used by snakecheck.
const (
	ExitOK    = 0
	ExitCheck = 1
	ExitUsage = 2
)

// ExitError is an error that carries the process exit code.
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
	Files     []string
	Workers   int
	MaxDim    int
	Strict    bool
	Fast      bool
	Timeout   time.Duration
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the Config, a boolean
// telling the caller to exit cleanly (help was requested), or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("snakecheck", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
snakecheck - decides whether graphs are snake graphs (Hamiltonian path + hypercube embedding).

Usage:
  snakecheck [options] FILE...

Arguments:
  FILE
    JSON graph document. ".gz", ".zst" and ".lz4" files are decompressed.

Output:
  One line per FILE, in argument order: "FILE: true", "FILE: false" or "FILE: error: ...".

Options:
`)
		flagSet.PrintDefaults()
	}

	workersFlag := flagSet.Int("workers", 4, "Number of files evaluated concurrently.")
	maxDimFlag := flagSet.Int("max-dim", snake.DefaultMaxDimension, "Largest hypercube dimension accepted.")
	strictFlag := flagSet.Bool("strict", false, "Reject self-loops and parallel edges as invalid input.")
	fastFlag := flagSet.Bool("fast", false, "Try breadth-first labeling before backtracking.")
	timeoutFlag := flagSet.Duration("timeout", 0, "Abort the whole batch after this duration. 0 disables.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: ExitUsage, Message: "no input files"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := NewLogger(logLevel, logFormat, io.Discard); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid workers: must be at least 1"}
	}
	if *maxDimFlag < 0 || *maxDimFlag > hypercube.MaxDimension {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("invalid max-dim: must be in [0, %d]", hypercube.MaxDimension)}
	}
	if *timeoutFlag < 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid timeout: must not be negative"}
	}

	return &Config{
		Files:     flagSet.Args(),
		Workers:   *workersFlag,
		MaxDim:    *maxDimFlag,
		Strict:    *strictFlag,
		Fast:      *fastFlag,
		Timeout:   *timeoutFlag,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}, false, nil
}
