// Package core holds the domain types of knowling and the contract every
// note service backend fulfils.
package core

// Note is a text record owned by the note service.
// The client only reads it; IDs and timestamps are assigned by the backend.
type Note struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Created  int64  `json:"created"`  // Unix seconds
	Modified int64  `json:"modified"` // Unix seconds, non-decreasing across saves

	Categories []string `json:"categories,omitempty"`
}

// ScoredNote pairs a note with its similarity to a reference note.
type ScoredNote struct {
	Note  Note    `json:"note"`
	Score float64 `json:"score"`
}
