// Package report renders counting results as plain, human-readable, or
// JSON text. It owns the grand-total record: when more than one source
// was scanned it derives a fresh total via Stats.Add and labels it
// "total", leaving the per-source records untouched.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chriscorrea/tally/internal/count"
)

// Format selects the output rendering.
type Format int

const (
	// Plain emits space-joined numeric columns, like classic wc.
	Plain Format = iota
	// Human emits labeled counts ("lines: 10 ... in file").
	Human
	// JSON emits an array of objects carrying the requested fields.
	JSON
)

// totalLabel tags the grand-total row.
const totalLabel = "total"

// ParseFormat maps a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "plain", "":
		return Plain, nil
	case "human":
		return Human, nil
	case "json":
		return JSON, nil
	default:
		return Plain, fmt.Errorf("unknown output format %q (expected plain, human, or json)", s)
	}
}

// Write renders results to w, printing only the kinds that were
// requested. With more than one record a grand-total row is appended.
func Write(w io.Writer, results []count.Stats, kinds count.Kinds, format Format) error {
	if format == JSON {
		return writeJSON(w, results, kinds)
	}

	for _, r := range results {
		if err := writeRow(w, r, kinds, format, r.Label); err != nil {
			return err
		}
	}

	if len(results) > 1 {
		return writeRow(w, grandTotal(results), kinds, format, totalLabel)
	}
	return nil
}

// grandTotal sums all records into a fresh accumulator; MaxLineLength
// takes the maximum rather than the sum.
func grandTotal(results []count.Stats) count.Stats {
	var total count.Stats
	for _, r := range results {
		total.Add(r)
	}
	return total
}

func writeRow(w io.Writer, r count.Stats, kinds count.Kinds, format Format, label string) error {
	var parts []string
	switch format {
	case Human:
		parts = humanParts(r, kinds, label)
	default:
		parts = plainParts(r, kinds, label)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func plainParts(r count.Stats, kinds count.Kinds, label string) []string {
	var parts []string
	if kinds.Has(count.Lines) {
		parts = append(parts, strconv.FormatInt(r.Lines, 10))
	}
	if kinds.Has(count.Words) {
		parts = append(parts, strconv.FormatInt(r.Words, 10))
	}
	if kinds.Has(count.Bytes) {
		parts = append(parts, strconv.FormatInt(r.Bytes, 10))
	}
	if kinds.Has(count.Chars) {
		parts = append(parts, strconv.FormatInt(r.Chars, 10))
	}
	if kinds.Has(count.MaxLineLength) {
		parts = append(parts, strconv.FormatInt(r.MaxLineLength, 10))
	}
	if label != "" {
		parts = append(parts, label)
	}
	return parts
}

func humanParts(r count.Stats, kinds count.Kinds, label string) []string {
	var parts []string
	if kinds.Has(count.Lines) {
		parts = append(parts, fmt.Sprintf("lines: %d", r.Lines))
	}
	if kinds.Has(count.Words) {
		parts = append(parts, fmt.Sprintf("words: %d", r.Words))
	}
	if kinds.Has(count.Bytes) {
		parts = append(parts, fmt.Sprintf("bytes: %d", r.Bytes))
	}
	if kinds.Has(count.Chars) {
		parts = append(parts, fmt.Sprintf("chars: %d", r.Chars))
	}
	if kinds.Has(count.MaxLineLength) {
		parts = append(parts, fmt.Sprintf("%d max line length", r.MaxLineLength))
	}
	switch label {
	case "":
	case totalLabel:
		parts = append(parts, totalLabel)
	default:
		parts = append(parts, fmt.Sprintf("in %s", label))
	}
	return parts
}

// jsonRecord carries only the requested fields; pointers keep zero
// counts present while omitting unrequested ones entirely.
type jsonRecord struct {
	Lines         *int64 `json:"lines,omitempty"`
	Words         *int64 `json:"words,omitempty"`
	Bytes         *int64 `json:"bytes,omitempty"`
	Chars         *int64 `json:"chars,omitempty"`
	MaxLineLength *int64 `json:"max_line_length,omitempty"`
	Filename      string `json:"filename,omitempty"`
	Type          string `json:"type,omitempty"`
}

func toJSONRecord(r count.Stats, kinds count.Kinds) jsonRecord {
	var rec jsonRecord
	if kinds.Has(count.Lines) {
		rec.Lines = &r.Lines
	}
	if kinds.Has(count.Words) {
		rec.Words = &r.Words
	}
	if kinds.Has(count.Bytes) {
		rec.Bytes = &r.Bytes
	}
	if kinds.Has(count.Chars) {
		rec.Chars = &r.Chars
	}
	if kinds.Has(count.MaxLineLength) {
		rec.MaxLineLength = &r.MaxLineLength
	}
	rec.Filename = r.Label
	return rec
}

func writeJSON(w io.Writer, results []count.Stats, kinds count.Kinds) error {
	records := make([]jsonRecord, 0, len(results)+1)
	for _, r := range results {
		records = append(records, toJSONRecord(r, kinds))
	}

	if len(results) > 1 {
		rec := toJSONRecord(grandTotal(results), kinds)
		rec.Type = totalLabel
		records = append(records, rec)
	}

	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
