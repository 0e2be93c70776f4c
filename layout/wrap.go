package layout

import "unicode"

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	// breakOther is the default class for most characters.
	breakOther breakClass = iota
	// breakSpace is for space characters (break after).
	breakSpace
	// breakZero is for zero-width space (break opportunity).
	breakZero
	// breakOpen is for opening punctuation (no break after).
	breakOpen
	// breakClose is for closing punctuation (no break before).
	breakClose
	// breakHyphen is for hyphens (break after).
	breakHyphen
	// breakIdeographic is for CJK ideographs (break before or after).
	breakIdeographic
)

func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '\u200B':
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019', '.', ',', ';', ':', '!', '?':
		return breakClose
	case '-', '\u2010', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	if unicode.IsSpace(r) {
		return breakSpace
	}
	return breakOther
}

// isCJKRune returns true if the rune is a CJK character that allows breaking.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// canBreakBefore reports whether a soft line break is allowed between
// text[i-1] and text[i]. Spaces never start a line; they hang at the end
// of the previous one.
func canBreakBefore(text []rune, i int) bool {
	if i <= 0 || i >= len(text) {
		return false
	}
	prev, cur := classifyRune(text[i-1]), classifyRune(text[i])
	switch {
	case cur == breakSpace, cur == breakClose:
		return false
	case prev == breakOpen:
		return false
	case prev == breakSpace, prev == breakZero:
		return true
	case prev == breakHyphen:
		return cur != breakHyphen
	case prev == breakIdeographic, cur == breakIdeographic:
		return true
	}
	return false
}

func isSpace(r rune) bool {
	return classifyRune(r) == breakSpace
}

// wrapRange greedily splits the hard paragraph text[start:end] into lines
// no wider than width. advances holds the advance of every rune in text.
// Words that do not fit on a line of their own are broken between
// characters. The returned lines cover [start, end) without gaps.
func wrapRange(text []rune, advances []float64, start, end int, width float64) [][2]int {
	if start >= end {
		return [][2]int{{start, start}}
	}

	var out [][2]int
	lineStart := start
	lastBreak := -1
	x := 0.0

	for i := start; i < end; i++ {
		if i > lineStart && canBreakBefore(text, i) {
			lastBreak = i
		}
		adv := advances[i]
		if x+adv > width && i > lineStart && !isSpace(text[i]) {
			brk := i
			if lastBreak > lineStart {
				brk = lastBreak
			}
			out = append(out, [2]int{lineStart, brk})
			lineStart = brk
			lastBreak = -1
			x = 0
			// Resume scanning at the first rune of the new line.
			i = brk - 1
			continue
		}
		x += adv
	}
	return append(out, [2]int{lineStart, end})
}

// trimTrailingSpaces returns the end of text[start:end] with trailing
// spaces removed.
func trimTrailingSpaces(text []rune, start, end int) int {
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return end
}
