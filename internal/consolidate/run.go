// Package consolidate builds the combined prompt document: it lists the
// prompt directory, orders the documents, renders the output, and writes it
// to the configured path in a single linear pass.
package consolidate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ig4e/awesome-coding-prompts/internal/config"
	"github.com/ig4e/awesome-coding-prompts/internal/document"
)

// ErrMissingInstructions indicates the instructions document does not exist
// or cannot be read. It is fatal to the whole run.
var ErrMissingInstructions = errors.New("consolidate: instructions document missing")

// Logger receives diagnostic lines during a run. *logging.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Option customizes a run.
type Option func(*runner)

// WithClock overrides the clock used for the footer timestamp.
func WithClock(clock func() time.Time) Option {
	return func(r *runner) {
		if clock != nil {
			r.now = clock
		}
	}
}

// WithLogger attaches a diagnostic logger.
func WithLogger(log Logger) Option {
	return func(r *runner) {
		if log != nil {
			r.log = log
		}
	}
}

type runner struct {
	now func() time.Time
	log Logger
}

// Report summarizes a successful run for operator display.
type Report struct {
	// Found is the number of prompt documents included in the output.
	Found int
	// Skipped is the number of prompt documents omitted because they could
	// not be read.
	Skipped int
	// OutputPath is where the consolidated document was written.
	OutputPath string
	// Bytes and Lines describe the written artifact.
	Bytes int
	Lines int
}

// Run performs the full consolidation. Preconditions are checked before any
// output is produced: the prompt directory must exist and the instructions
// document must be readable. Individual unreadable prompts are skipped and
// logged; everything else is fatal.
func Run(cfg *config.Config, opts ...Option) (Report, error) {
	if cfg == nil {
		return Report{}, fmt.Errorf("consolidate: config is required")
	}
	r := &runner{now: time.Now, log: nopLogger{}}
	for _, opt := range opts {
		opt(r)
	}

	prompts, skipped, err := document.List(cfg.PromptsDir)
	if err != nil {
		return Report{}, err
	}
	for _, skip := range skipped {
		r.log.Printf("skipping unreadable prompt %s: %v", skip.Path, skip.Err)
	}

	instructions, err := document.Load(cfg.InstructionsPath)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %s: %v", ErrMissingInstructions, cfg.InstructionsPath, err)
	}

	output := Build(instructions, prompts, cfg.Priority, r.now())
	if err := writeAtomic(cfg.OutputPath, []byte(output)); err != nil {
		return Report{}, err
	}

	report := Report{
		Found:      len(prompts),
		Skipped:    len(skipped),
		OutputPath: cfg.OutputPath,
		Bytes:      len(output),
		Lines:      strings.Count(output, "\n"),
	}
	r.log.Printf("wrote %s (%d bytes, %d lines, %d prompts, %d skipped)",
		report.OutputPath, report.Bytes, report.Lines, report.Found, report.Skipped)
	return report, nil
}

// writeAtomic writes to a temp file in the destination directory and renames
// it into place, so a failed run never leaves a half-written artifact.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("consolidate: ensure output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("consolidate: create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("consolidate: write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("consolidate: close output: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("consolidate: chmod output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("consolidate: replace output: %w", err)
	}
	return nil
}
