package notes

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gyeh/billscrub/internal/model"
	"github.com/gyeh/billscrub/internal/rules"
)

// cleanNote is a segment that passes every rule.
const cleanNote = `
Goal Summary
Tax ID: 12-3456789
Service code 97153 rendered.
Session participants: [x] Caregiver
Dana added a data point of 4 to Eye Contact for Avery.
Signed On: 2025-03-03
`

func runNotes(t *testing.T, texts ...string) []model.Issue {
	t.Helper()
	segs := make([]model.NoteSegment, len(texts))
	for i, text := range texts {
		segs[i] = model.NoteSegment{Index: i + 1, Text: text}
	}
	issues, _ := NewEngine(rules.Default()).Run(segs)
	return issues
}

func kindsOf(issues []model.Issue) []model.Kind {
	out := make([]model.Kind, len(issues))
	for i, is := range issues {
		out[i] = is.Kind
	}
	return out
}

func TestRun_CleanNoteYieldsNoIssues(t *testing.T) {
	if issues := runNotes(t, cleanNote); len(issues) != 0 {
		t.Errorf("clean note produced %v", kindsOf(issues))
	}
}

func TestRun_SkipsSegmentsWithoutNoteMarkers(t *testing.T) {
	segs := []model.NoteSegment{
		{Index: 1, Text: "billing appendix, nothing note-like"},
		{Index: 2, Text: cleanNote},
	}
	issues, skipped := NewEngine(rules.Default()).Run(segs)
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %v", kindsOf(issues))
	}
	if !reflect.DeepEqual(skipped, []int{1}) {
		t.Errorf("skipped = %v, want [1]", skipped)
	}
}

func TestRun_MissingTaxIDAndCPT(t *testing.T) {
	// Qualifies via "Goal Summary" but has no Tax ID and no recognized code.
	text := `
Goal Summary
Session participants: [x] Caregiver
Dana added a data point of 4 to Eye Contact for Avery.
Signed On: 2025-03-03
`
	issues := runNotes(t, text)
	want := []model.Kind{model.KindMissingTaxID, model.KindMissingCPTCode}
	if !reflect.DeepEqual(kindsOf(issues), want) {
		t.Errorf("kinds = %v, want %v", kindsOf(issues), want)
	}
	if issues[0].Note != 1 || issues[0].Date != "Note 1" {
		t.Errorf("issue attribution = %+v", issues[0])
	}
}

func TestRun_CPTMatchIsWholeWord(t *testing.T) {
	// 197153 must not satisfy the CPT requirement.
	text := strings.Replace(cleanNote, "97153", "197153x", 1)
	issues := runNotes(t, text)
	if kindsOf(issues)[0] != model.KindMissingCPTCode {
		t.Errorf("embedded digits accepted as CPT code: %v", kindsOf(issues))
	}
}

func TestRun_ParticipantsUnchecked(t *testing.T) {
	text := strings.Replace(cleanNote, "[x] Caregiver", "Caregiver", 1)
	issues := runNotes(t, text)
	if len(issues) != 1 || issues[0].Kind != model.KindParticipantsUnchecked {
		t.Errorf("kinds = %v, want [Participants Unchecked]", kindsOf(issues))
	}
}

func TestRun_ParticipantsGlyphCounts(t *testing.T) {
	text := strings.Replace(cleanNote, "[x] Caregiver", "☑ Caregiver", 1)
	if issues := runNotes(t, text); len(issues) != 0 {
		t.Errorf("glyph-checked note produced %v", kindsOf(issues))
	}
}

func TestRun_NoParticipantsSectionSkipsCheck(t *testing.T) {
	text := strings.Replace(cleanNote, "Session participants: [x] Caregiver\n", "", 1)
	if issues := runNotes(t, text); len(issues) != 0 {
		t.Errorf("note without participants section produced %v", kindsOf(issues))
	}
}

func TestRun_NoDataPoints(t *testing.T) {
	text := strings.Replace(cleanNote, "Dana added a data point of 4 to Eye Contact for Avery.\n", "", 1)
	issues := runNotes(t, text)
	if len(issues) != 1 || issues[0].Kind != model.KindNoDataPoints {
		t.Errorf("kinds = %v, want [No Data Points]", kindsOf(issues))
	}
}

func TestRun_DuplicateGoals(t *testing.T) {
	text := `
Goal Summary
Tax ID: 12-3456789
Code 97153.
Dana added a data point of 4 to Eye Contact for Avery.
Dana added a data point of 2 to Eye Contact for Avery.
Dana added a data point of 1 to Turn Taking for Avery.
Signed On: 2025-03-03
`
	issues := runNotes(t, text)
	if len(issues) != 1 || issues[0].Kind != model.KindDuplicateGoals {
		t.Fatalf("kinds = %v, want [Duplicate Goals]", kindsOf(issues))
	}
	if !strings.Contains(issues[0].Detail, "Eye Contact") {
		t.Errorf("detail %q does not name the repeated goal", issues[0].Detail)
	}
	if strings.Contains(issues[0].Detail, "Turn Taking") {
		t.Errorf("detail %q names a non-repeated goal", issues[0].Detail)
	}
}

func TestRun_MissingSignature(t *testing.T) {
	text := strings.Replace(cleanNote, "Signed On: 2025-03-03\n", "", 1)
	issues := runNotes(t, text)
	if len(issues) != 1 || issues[0].Kind != model.KindMissingSignature {
		t.Errorf("kinds = %v, want [Missing Signature]", kindsOf(issues))
	}
}

func TestRepeatedGoals_FirstOccurrenceOrder(t *testing.T) {
	goals := []string{"B", "A", "B", "A", "C"}
	if got := repeatedGoals(goals); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Errorf("repeatedGoals = %v, want [B A]", got)
	}
}

func TestExtractGoals_NonGreedyCapture(t *testing.T) {
	text := "added a data point of 3 to Eye Contact for Avery, then added a data point of 1 to Turn Taking for Avery"
	got := extractGoals(text)
	want := []string{"Eye Contact", "Turn Taking"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractGoals = %v, want %v", got, want)
	}
}
