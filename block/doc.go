// Package block provides a Bubble Tea code block: a language-mode selector
// above a multi-line text surface backed by the buffer package.
//
// A host composes blocks, routes key messages to the focused one through
// HandleKey (which reports whether the key was consumed), and reads the
// persisted record back with Save.
package block
