// Package substring extracts substrings of UTF-8 text by character index.
//
// Indices count Unicode scalar values (Go runes), not bytes and not
// grapheme clusters: a base letter followed by a combining mark occupies
// two positions. Ranges are half-open: [start, end).
//
// Every operation is total. Indices past the last rune clamp to the end
// of the text, start >= end yields the empty string, and there is no
// error or panic path for any inputs.
package substring
