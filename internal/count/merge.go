package count

// segment carries the statistics of one contiguous byte region together
// with the boundary context needed to stitch adjacent regions together.
// Segments form a monoid under mergeSegments: the operator is associative
// as long as operands stay in original left-to-right order, which makes a
// divide-and-conquer reduction equivalent to the sequential fold used by
// Engine.scan.
type segment struct {
	lines int64
	bytes int64

	// words whose closing whitespace transition fired inside the region,
	// counted by a scan entering the region outside any word
	words int64

	// longest line with both endpoints strictly inside the region
	maxEnclosed int64

	// boundary context
	startsInWord    bool  // first byte is non-whitespace
	endsInWord      bool  // last byte is non-whitespace
	hasTerminator   bool  // region contains at least one '\n'
	leadingLineLen  int64 // through the first terminator, or the whole region
	trailingLineLen int64 // unterminated fragment after the last terminator
}

// mergeSegments combines two segments produced from adjacent, gap-free
// regions, left before right. An empty segment is the merge identity.
func mergeSegments(left, right segment) segment {
	if left.bytes == 0 {
		return right
	}
	if right.bytes == 0 {
		return left
	}

	out := segment{
		lines:        left.lines + right.lines,
		bytes:        left.bytes + right.bytes,
		words:        left.words + right.words,
		startsInWord: left.startsInWord,
		endsInWord:   right.endsInWord,
	}

	// A word ending exactly at the seam was closed by neither side: the
	// left scan ran out of bytes before the whitespace transition and the
	// right scan entered the region already past it. A word straddling
	// the seam needs no correction, since the right side counts it when
	// its closing whitespace finally appears.
	if left.endsInWord && !right.startsInWord {
		out.words++
	}

	out.maxEnclosed = left.maxEnclosed
	if right.maxEnclosed > out.maxEnclosed {
		out.maxEnclosed = right.maxEnclosed
	}

	switch {
	case left.hasTerminator && right.hasTerminator:
		// the line spanning the seam closes at the right side's first
		// terminator and is now fully enclosed
		spanning := left.trailingLineLen + right.leadingLineLen
		if spanning > out.maxEnclosed {
			out.maxEnclosed = spanning
		}
		out.hasTerminator = true
		out.leadingLineLen = left.leadingLineLen
		out.trailingLineLen = right.trailingLineLen
	case left.hasTerminator:
		out.hasTerminator = true
		out.leadingLineLen = left.leadingLineLen
		out.trailingLineLen = left.trailingLineLen + right.bytes
	case right.hasTerminator:
		out.hasTerminator = true
		out.leadingLineLen = left.bytes + right.leadingLineLen
		out.trailingLineLen = right.trailingLineLen
	default:
		out.leadingLineLen = left.bytes + right.bytes
		out.trailingLineLen = out.leadingLineLen
	}

	return out
}

// maxLineLength resolves the segment's edge fragments against its
// enclosed maximum, treating the segment as the whole buffer: the leading
// fragment is a real line (terminated or not) and the trailing fragment
// is an unterminated final line measured to end of input.
func (seg segment) maxLineLength() int64 {
	max := seg.maxEnclosed
	if seg.leadingLineLen > max {
		max = seg.leadingLineLen
	}
	if seg.trailingLineLen > max {
		max = seg.trailingLineLen
	}
	return max
}
