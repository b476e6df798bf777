// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "fmt"

// MalformedItemError reports an item node that does not have exactly one
// paragraph child where the gb4e renderer expects one. The condition is
// recoverable: the caller may fall back to plain rendering for the item.
type MalformedItemError struct {
	// Paragraphs is the number of paragraph children found.
	Paragraphs int
}

func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("item has %d paragraph children, expected exactly 1", e.Paragraphs)
}

// PlaceholderError reports sentinel placeholder tokens left unresolved in
// list output. This is an internal consistency failure, never an input
// error, and aborts the pass rather than leaking the sentinel into the
// emitted LaTeX.
type PlaceholderError struct {
	// Count is the number of unresolved sentinel occurrences.
	Count int
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("%d unresolved option placeholder(s) in list output", e.Count)
}
