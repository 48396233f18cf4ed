package substring

import "unicode/utf8"

// Slice returns the substring of text covering the rune index range
// [start, end).
//
// A negative start counts as 0. Indices past the last rune clamp to the
// end of the text, and start >= end yields "". The result shares text's
// backing bytes unchanged; no copy is made.
//
// Finding the range is a single forward pass, O(n) in the byte length of
// text, visiting each rune at most once.
func Slice(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	lo := len(text)
	idx := 0
	for i := range text {
		if idx == start {
			lo = i
		}
		if idx == end {
			return text[lo:i]
		}
		idx++
	}
	return text[lo:]
}

// From returns the substring of text from rune index start to the end of
// the text. Equivalent to Slice with an unbounded end.
func From(text string, start int) string {
	if start <= 0 {
		return text
	}
	idx := 0
	for i := range text {
		if idx == start {
			return text[i:]
		}
		idx++
	}
	return ""
}

// To returns the substring of text from its beginning to rune index end.
// Equivalent to Slice with a start of 0.
func To(text string, end int) string {
	if end <= 0 {
		return ""
	}
	idx := 0
	for i := range text {
		if idx == end {
			return text[:i]
		}
		idx++
	}
	return text
}

// Count returns the number of runes in text.
func Count(text string) int {
	return utf8.RuneCountInString(text)
}

// String attaches the package's operations as methods. Go does not allow
// methods on the builtin string type; convert to String for method-call
// syntax. The conversion is free and the logic stays in the package-level
// functions.
type String string

func (s String) Slice(start, end int) String { return String(Slice(string(s), start, end)) }

func (s String) From(start int) String { return String(From(string(s), start)) }

func (s String) To(end int) String { return String(To(string(s), end)) }

func (s String) Count() int { return Count(string(s)) }
