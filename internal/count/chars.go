package count

import "unicode/utf8"

// countChars returns the number of Unicode scalar values in buf, or the
// raw byte length when buf is not valid UTF-8. The fallback is a
// documented contract, not an error path: a downstream report always gets
// a number. Character counting runs over the complete buffer only — a
// multi-byte sequence split at an arbitrary chunk offset is not locally
// decodable, so this pass is never chunk-decomposed.
func countChars(buf []byte) int64 {
	if !utf8.Valid(buf) {
		return int64(len(buf))
	}
	return int64(utf8.RuneCount(buf))
}
