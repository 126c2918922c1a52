// Package count implements the counting engine for the tally CLI tool.
//
// The engine scans in-memory byte buffers and produces line, word, byte,
// character, and maximum-line-length statistics matching a sequential pass,
// while internally splitting large buffers into fixed-size chunks that are
// scanned in parallel. Correctness across chunk boundaries (words and lines
// that straddle a split point) is handled by an explicit merge step; see
// scan.go and merge.go.
//
// Usage Example:
//
//	engine := count.NewEngine(0, 0) // default chunk size and worker count
//	stats := engine.Count(data, count.Lines|count.Words|count.Bytes)
package count

// Kinds is a set of requested statistics, combined with bitwise OR.
type Kinds uint8

const (
	// Lines counts line-terminator bytes.
	Lines Kinds = 1 << iota
	// Words counts maximal runs of non-whitespace bytes.
	Words
	// Bytes counts raw byte length.
	Bytes
	// Chars counts Unicode scalar values, falling back to byte length
	// when the buffer is not valid UTF-8.
	Chars
	// MaxLineLength tracks the longest line, terminator included.
	MaxLineLength
)

// Default is the selection used when no count flags are given,
// matching classic wc output.
const Default = Lines | Words | Bytes

// Has reports whether k includes all kinds in flag.
func (k Kinds) Has(flag Kinds) bool {
	return k&flag == flag
}

// Stats holds the counts produced for one buffer or one input source.
// A Stats value is write-once: it is built by a scan (or by Add on an
// accumulator) and read-only thereafter.
type Stats struct {
	Lines         int64
	Words         int64
	Bytes         int64
	Chars         int64
	MaxLineLength int64

	// Label identifies the source the stats belong to; empty for
	// unnamed input (implicit stdin) and for accumulator records.
	Label string
}

// Add accumulates other into s field by field, taking the maximum for
// MaxLineLength. The receiver's Label is left untouched, so callers must
// rely on per-source records, not the accumulator, for source identity.
func (s *Stats) Add(other Stats) {
	s.Lines += other.Lines
	s.Words += other.Words
	s.Bytes += other.Bytes
	s.Chars += other.Chars
	if other.MaxLineLength > s.MaxLineLength {
		s.MaxLineLength = other.MaxLineLength
	}
}
