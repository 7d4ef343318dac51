package notes

import (
	"strings"

	"github.com/gyeh/billscrub/internal/model"
)

// Document structure markers. These are plain-text heuristics over whatever
// the extractor produced; a template change in the note software breaks
// them, which is a known scope limit of text-only auditing.
const (
	noteDelimiter     = "Activity Statement"
	markerGoalSummary = "Goal Summary"
	markerActivities  = "Activities that were used"
)

// Segment splits concatenated page text into per-note segments. Pages are
// joined with newline separators, the full text is split on the literal
// note delimiter, and the preamble before the first delimiter is discarded.
// Segments are numbered from 1 in document order.
func Segment(pages []string) []model.NoteSegment {
	full := strings.Join(pages, "\n")
	parts := strings.Split(full, noteDelimiter)
	if len(parts) <= 1 {
		return nil
	}
	segs := make([]model.NoteSegment, 0, len(parts)-1)
	for i, text := range parts[1:] {
		segs = append(segs, model.NoteSegment{Index: i + 1, Text: text})
	}
	return segs
}

// Qualifies reports whether a segment looks like an actual session note.
// Fragments without either marker are not notes (cover pages, billing
// summaries) and are skipped without issues.
func Qualifies(seg model.NoteSegment) bool {
	return strings.Contains(seg.Text, markerGoalSummary) ||
		strings.Contains(seg.Text, markerActivities)
}
