package count

import (
	"log/slog"
	"runtime"
	"sync"
)

// DefaultChunkSize is the chunk size used when none is configured.
// Buffers at or below this size are scanned without splitting.
const DefaultChunkSize = 1 << 20 // 1 MiB

// asciiSpace marks the bytes treated as word separators: space, tab,
// newline, vertical tab, form feed, carriage return. Classification is
// ASCII-only; multi-byte sequences never contain these values.
var asciiSpace [256]bool

func init() {
	for _, b := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		asciiSpace[b] = true
	}
}

// Engine scans byte buffers, chunking and merging internally.
// An Engine is immutable after creation and safe for concurrent use.
type Engine struct {
	chunkSize int
	workers   int
}

// NewEngine creates an engine with the given chunk size in bytes and
// worker count. Non-positive values select the defaults (1 MiB chunks,
// one worker per CPU).
func NewEngine(chunkSize, workers int) *Engine {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		chunkSize: chunkSize,
		workers:   workers,
	}
}

// Count scans one complete in-memory buffer and returns the requested
// statistics. Byte length is always recorded since it is free; the scan
// pass runs only when lines, words, or max line length are requested, and
// character counting runs only on request because it is a separate
// whole-buffer pass (see chars.go).
func (e *Engine) Count(buf []byte, kinds Kinds) Stats {
	stats := Stats{Bytes: int64(len(buf))}

	if kinds&(Lines|Words|MaxLineLength) != 0 {
		seg := e.scan(buf)
		stats.Lines = seg.lines
		stats.Words = seg.words
		stats.MaxLineLength = seg.maxLineLength()
		if seg.endsInWord {
			stats.Words++
		}
	}

	if kinds.Has(Chars) {
		stats.Chars = countChars(buf)
	}

	return stats
}

// scan splits buf into fixed-size chunks, scans them on bounded worker
// goroutines, and folds the per-chunk segments back together in original
// order. Each goroutine writes only its own slot of the result slice, so
// the buffer and all intermediate state are race-free by construction.
func (e *Engine) scan(buf []byte) segment {
	if len(buf) <= e.chunkSize {
		return scanChunk(buf)
	}

	chunks := (len(buf) + e.chunkSize - 1) / e.chunkSize
	segments := make([]segment, chunks)

	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup
	for i := 0; i < chunks; i++ {
		lo := i * e.chunkSize
		hi := lo + e.chunkSize
		if hi > len(buf) {
			hi = len(buf)
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, chunk []byte) {
			defer wg.Done()
			defer func() { <-sem }()
			segments[i] = scanChunk(chunk)
		}(i, buf[lo:hi])
	}
	wg.Wait()

	acc := segments[0]
	for _, seg := range segments[1:] {
		acc = mergeSegments(acc, seg)
	}

	slog.Debug("buffer scanned", "bytes", len(buf), "chunks", chunks)
	return acc
}

// scanChunk performs the single left-to-right pass over one contiguous
// slice. It counts line terminators, words whose closing whitespace lies
// inside the slice (under a scan that starts outside any word), and the
// longest fully-enclosed line, and records the boundary context needed to
// stitch adjacent slices together. Total over any input, including
// invalid UTF-8.
func scanChunk(chunk []byte) segment {
	seg := segment{bytes: int64(len(chunk))}
	if len(chunk) == 0 {
		return seg
	}
	seg.startsInWord = !asciiSpace[chunk[0]]

	var (
		inWord  bool
		lineLen int64
	)
	for _, b := range chunk {
		lineLen++
		if b == '\n' {
			seg.lines++
			if seg.hasTerminator {
				// both endpoints inside the slice
				if lineLen > seg.maxEnclosed {
					seg.maxEnclosed = lineLen
				}
			} else {
				// the leading line may continue a previous chunk,
				// so its length is settled during the merge
				seg.leadingLineLen = lineLen
				seg.hasTerminator = true
			}
			lineLen = 0
		}

		if asciiSpace[b] {
			if inWord {
				seg.words++
			}
			inWord = false
		} else {
			inWord = true
		}
	}

	seg.endsInWord = inWord
	seg.trailingLineLen = lineLen
	if !seg.hasTerminator {
		seg.leadingLineLen = seg.bytes
	}
	return seg
}
