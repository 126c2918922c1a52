// Package app contains the core application logic for the tally CLI
// tool, separated from flag-parsing concerns: it turns a Config into the
// rendered counting report.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chriscorrea/tally/internal/count"
	"github.com/chriscorrea/tally/internal/progress"
	"github.com/chriscorrea/tally/internal/report"
	"github.com/chriscorrea/tally/internal/source"
)

// Config holds all configuration options for one tally invocation.
type Config struct {
	Sources   []string      // file paths, or "-" for stdin; empty means implicit stdin
	Kinds     count.Kinds   // requested statistics
	Format    report.Format // output rendering
	ChunkSize int           // scan chunk size in bytes, 0 for default
	Workers   int           // scan parallelism bound, 0 for default
	Quiet     bool          // suppress the progress indicator
	Debug     bool
}

// Run scans every configured source and returns the rendered report.
// A single source acquisition failure aborts the whole run with no
// partial output.
func Run(ctx context.Context, cfg Config) (string, error) {
	engine := count.NewEngine(cfg.ChunkSize, cfg.Workers)

	// no sources means unnamed standard input, which is reported
	// without a label
	sources := cfg.Sources
	implicitStdin := len(sources) == 0
	if implicitStdin {
		sources = []string{source.StdinName}
	}

	stop := func() {}
	if !cfg.Quiet {
		stop = progress.Start(os.Stderr, "counting")
	}
	results, err := engine.CountAll(ctx, sources, cfg.Kinds)
	stop()
	if err != nil {
		return "", err
	}

	if implicitStdin {
		results[0].Label = ""
	}

	var sb strings.Builder
	if err := report.Write(&sb, results, cfg.Kinds, cfg.Format); err != nil {
		return "", fmt.Errorf("render results: %w", err)
	}
	return sb.String(), nil
}
