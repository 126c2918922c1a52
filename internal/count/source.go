package count

import (
	"context"
	"log/slog"

	"github.com/chriscorrea/tally/internal/source"

	"golang.org/x/sync/errgroup"
)

// CountSource acquires a single named source ("-" for standard input)
// and scans it, attaching the source's name as the record label.
// Acquisition is the only failure path; scanning itself is total.
func (e *Engine) CountSource(ctx context.Context, name string, kinds Kinds) (Stats, error) {
	buf, err := source.Open(ctx, name)
	if err != nil {
		return Stats{}, err
	}
	defer buf.Close()

	stats := e.Count(buf.Bytes(), kinds)
	stats.Label = buf.Label()

	slog.Debug("source counted", "source", name, "bytes", stats.Bytes)
	return stats, nil
}

// CountAll scans every named source, concurrently and with no shared
// mutable state, returning per-source records in input order. The policy
// is fail-one-fail-all: if any source cannot be acquired, no results are
// returned and the first failure in source order is surfaced, even when a
// later source happened to fail earlier in wall-clock time.
//
// CountAll does not compute the grand total; summation belongs to the
// caller via Stats.Add so per-source records stay untouched.
func (e *Engine) CountAll(ctx context.Context, names []string, kinds Kinds) ([]Stats, error) {
	results := make([]Stats, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, name := range names {
		g.Go(func() error {
			results[i], errs[i] = e.CountSource(ctx, name, kinds)
			return errs[i]
		})
	}
	_ = g.Wait() // first error in source order wins, not first to occur

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
