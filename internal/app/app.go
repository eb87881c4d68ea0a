package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chriscorrea/madlib/internal/config"
	madlibIO "github.com/chriscorrea/madlib/internal/io"
	"github.com/chriscorrea/madlib/internal/template"
	"github.com/chriscorrea/madlib/internal/verbose"
	"github.com/chriscorrea/madlib/internal/vocabulary"
)

// App represents the main application and holds its dependencies
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool

	// summary destination for verbose output, usually stderr
	diag io.Writer
}

// NewApp creates a new App instance with the provided configuration, logger, and verbose setting
func NewApp(cfg *config.Config, logger *slog.Logger, verbose bool) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		cfg:     cfg,
		logger:  logger,
		verbose: verbose,
	}
}

// WithDiagnostics sets where the verbose summary is written
func (a *App) WithDiagnostics(w io.Writer) *App {
	a.diag = w
	return a
}

// Result describes a finished (or aborted) run
type Result struct {
	Vocabulary vocabulary.Vocabulary
	Stats      verbose.Stats
}

// Run executes the main application logic: read the vocabulary from in, then
// fill and write every template line to out.
//
// The first error stops the run. Lines already filled are flushed to out on
// every return path. ctx is checked between template lines.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) (res Result, err error) {
	if a.cfg == nil {
		return res, fmt.Errorf("configuration is nil")
	}

	w := bufio.NewWriter(out)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("failed to write output: %w", flushErr)
		}
		a.report(res, err)
	}()

	reader := madlibIO.NewReader(in)

	res.Vocabulary, err = reader.ReadVocabulary()
	if err != nil {
		return res, err
	}
	a.logger.Debug("Vocabulary loaded",
		"noun1", res.Vocabulary.Word(vocabulary.Noun1),
		"noun2", res.Vocabulary.Word(vocabulary.Noun2),
		"verb", res.Vocabulary.Word(vocabulary.Verb),
		"adjective", res.Vocabulary.Word(vocabulary.Adjective),
		"adverb", res.Vocabulary.Word(vocabulary.Adverb))

	for {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("interrupted after %d lines: %w", res.Stats.LinesRead, err)
		}

		line, ok, err := reader.ReadLine()
		if err != nil {
			return res, err
		}
		if !ok {
			return res, nil
		}
		res.Stats.LinesRead++

		filled := line
		if template.HasPlaceholder(line) {
			var n int
			filled, n, err = template.Fill(line, res.Vocabulary)
			if err != nil {
				return res, fmt.Errorf("line %d: %w", reader.LineNumber(), err)
			}
			res.Stats.Substitutions += n
			a.logger.Debug("Line filled", "line", reader.LineNumber(), "substitutions", n, "length", len(filled))
		}

		if filled == "" {
			continue
		}
		if _, err := w.WriteString(filled); err != nil {
			return res, fmt.Errorf("failed to write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return res, fmt.Errorf("failed to write output: %w", err)
		}
		res.Stats.LinesWritten++
	}
}

// report logs the outcome and prints the verbose summary when enabled
func (a *App) report(res Result, err error) {
	switch {
	case IsValidationError(err):
		a.logger.Warn("Input rejected",
			"error", err,
			"exit_code", ExitCode(err),
			"lines_read", res.Stats.LinesRead)
	case err != nil:
		a.logger.Error("Run failed",
			"error", err,
			"exit_code", ExitCode(err),
			"lines_read", res.Stats.LinesRead)
	default:
		a.logger.Info("Run finished",
			"lines_read", res.Stats.LinesRead,
			"lines_written", res.Stats.LinesWritten,
			"substitutions", res.Stats.Substitutions)
	}

	if !a.verbose || a.diag == nil {
		return
	}
	outputCfg := verbose.DefaultOutputConfig(a.diag)
	outputCfg.EnableColors = a.cfg.Output.Color
	verbose.PrintSummary(res.Vocabulary, res.Stats, outputCfg)
}
