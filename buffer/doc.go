// Package buffer implements the text surface of a code block: a pure,
// rune-accurate document with a cursor, an optional selection, and
// snapshot-based undo history.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open selections in document coordinates: [Start, End).
// Byte offsets count '\n' as one byte between rows.
package buffer
