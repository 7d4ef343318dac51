package model

// NoteSegment is the text of one session note, produced by splitting the
// concatenated document text on the note delimiter.
type NoteSegment struct {
	Index int // 1-based position in document order
	Text  string
}
