package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snakegraph/converters"
	"github.com/katalvlaran/snakegraph/snake"
)

// outcome is the result for one input file.
type outcome struct {
	verdict bool
	err     error
}

// Run evaluates every file in cfg.Files with at most cfg.Workers running at
// once and writes one line per file to stdout, in argument order. Logs go to
// stderr. A failed file does not stop the others; Run then returns an
// ExitError with ExitCheck.
func Run(ctx context.Context, cfg *Config, stdout, stderr io.Writer) error {
	logger, err := NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	logger = logger.With("run", uuid.NewString())

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	opts := []snake.Option{
		snake.WithContext(ctx),
		snake.WithLogger(logger),
		snake.WithMaxDimension(cfg.MaxDim),
	}
	if cfg.Strict {
		opts = append(opts, snake.WithStrictValidation())
	}
	if cfg.Fast {
		opts = append(opts, snake.WithLabelingFastPath())
	}
	ev, err := snake.NewEvaluator(opts...)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	logger.Info("batch started", "files", len(cfg.Files), "workers", cfg.Workers)
	start := time.Now()

	results := make([]outcome, len(cfg.Files))
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, path := range cfg.Files {
		g.Go(func() error {
			results[i] = checkFile(ctx, ev, logger.With("file", path), path)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, path := range cfg.Files {
		res := results[i]
		if res.err != nil {
			failed++
			fmt.Fprintf(stdout, "%s: error: %v\n", path, res.err)
			continue
		}
		fmt.Fprintf(stdout, "%s: %t\n", path, res.verdict)
	}

	logger.Info("batch finished", "files", len(cfg.Files), "failed", failed, "elapsed", time.Since(start))
	if failed > 0 {
		return &ExitError{Code: ExitCheck, Message: fmt.Sprintf("%d of %d files failed", failed, len(cfg.Files))}
	}

	return nil
}

func checkFile(ctx context.Context, ev *snake.Evaluator, log *slog.Logger, path string) outcome {
	if err := ctx.Err(); err != nil {
		return outcome{err: err}
	}

	g, err := converters.LoadGraph(path)
	if err != nil {
		log.Warn("load failed", "err", err)
		return outcome{err: err}
	}

	rep, err := ev.Check(g)
	if err != nil {
		log.Warn("check failed", "err", err)
		return outcome{err: err}
	}
	log.Info("checked", "vertices", rep.Vertices, "reason", rep.Reason.String(), "verdict", rep.Verdict)

	return outcome{verdict: rep.Verdict}
}
