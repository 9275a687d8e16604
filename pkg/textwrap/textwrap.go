// Package textwrap breaks plain text into display lines that fit a
// character-width budget.
//
// The package implements the line-breaking model used by the fitting engine:
// explicit line breaks are hard boundaries, words are kept intact when
// possible, and a single run longer than the budget is hard-split into
// width-sized chunks. Widths are measured in characters (runes), not bytes,
// and no font or glyph information is consulted.
//
// BreakLines is a pure function: the same inputs always produce the same
// lines.
package textwrap

import (
	"strings"
	"unicode"

	"github.com/rowfit/rowfit/pkg/errors"
)

// runKind classifies a token produced by the segment scanner.
type runKind int

const (
	runWord   runKind = iota // letters, digits, underscore
	runSpace                 // whitespace, kept verbatim
	runSymbol                // single punctuation/symbol character
)

// run is a maximal token of a single kind. Symbol runs are always one
// character; adjacent symbols are never merged.
type run struct {
	kind runKind
	text []rune
}

// BreakLines splits text into display lines for the given width budget.
//
// Explicit line breaks ("\n", tolerating "\r\n" and bare "\r") always start a
// new line, regardless of wrap. With wrap disabled every segment is returned
// verbatim. With wrap enabled, segments longer than widthChars are packed
// word by word; a single run longer than the budget is hard-split into
// chunks of floor(widthChars) characters with the remainder carried into the
// next line.
//
// The result is never empty: empty text yields a single empty line.
// A zero or negative widthChars is an invalid input and fails fast with an
// errors.ErrCodeInvalidWidth error.
func BreakLines(text string, wrap bool, widthChars float64) ([]string, error) {
	if widthChars <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidWidth, "width must be positive, got %g", widthChars)
	}

	segments := splitHardBreaks(text)

	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		if !wrap {
			lines = append(lines, seg)
			continue
		}
		lines = append(lines, wrapSegment(seg, widthChars)...)
	}
	return lines, nil
}

// splitHardBreaks splits text on explicit line-break characters.
// The result always has at least one element.
func splitHardBreaks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// wrapSegment packs a single break-free segment into lines of at most
// widthChars characters.
func wrapSegment(seg string, widthChars float64) []string {
	runes := []rune(seg)
	if float64(len(runes)) <= widthChars {
		return []string{seg}
	}

	chunk := int(widthChars)
	if chunk < 1 {
		chunk = 1
	}

	var lines []string
	var buf []rune

	// flush emits the current buffer, trimmed of surrounding whitespace,
	// and starts a fresh one. Whitespace-only buffers emit nothing.
	flush := func() {
		line := strings.TrimFunc(string(buf), unicode.IsSpace)
		if line != "" {
			lines = append(lines, line)
		}
		buf = buf[:0]
	}

	for _, r := range tokenize(runes) {
		if float64(len(buf)+len(r.text)) <= widthChars {
			buf = append(buf, r.text...)
			continue
		}

		flush()

		// Whitespace runs are never broken mid-run; an over-long run of
		// spaces simply disappears at the next trim.
		if r.kind == runSpace || float64(len(r.text)) <= widthChars {
			buf = append(buf, r.text...)
			continue
		}

		// Unbreakable run longer than the budget. Hard-split on a running
		// cursor over the unconsumed remainder; the final short piece seeds
		// the next buffer instead of being emitted immediately.
		rest := r.text
		for len(rest) > chunk {
			lines = append(lines, string(rest[:chunk]))
			rest = rest[chunk:]
		}
		buf = append(buf, rest...)
	}

	flush()

	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// tokenize scans a segment into word, whitespace, and symbol runs.
// Word and whitespace runs are maximal; each symbol is its own run.
func tokenize(runes []rune) []run {
	var runs []run
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case isWordRune(r):
			j := i
			for j < len(runes) && isWordRune(runes[j]) {
				j++
			}
			runs = append(runs, run{kind: runWord, text: runes[i:j]})
			i = j
		case unicode.IsSpace(r):
			j := i
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			runs = append(runs, run{kind: runSpace, text: runes[i:j]})
			i = j
		default:
			runs = append(runs, run{kind: runSymbol, text: runes[i : i+1]})
			i++
		}
	}
	return runs
}

// isWordRune reports whether r belongs to a word run.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
