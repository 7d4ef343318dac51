package notes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gyeh/billscrub/internal/model"
	"github.com/gyeh/billscrub/internal/rules"
)

// Text markers the note rules key on.
const (
	markerTaxID        = "Tax ID:"
	markerParticipants = "Session participants"
	markerSignature    = "Signed On:"
)

// checkedMarks are the glyphs that count as a ticked participant box.
var checkedMarks = []string{"☑", "☒", "[x]"}

// goalPattern captures the goal name from data-point lines, non-greedy
// between "to " and " for".
var goalPattern = regexp.MustCompile(`added a data point.*?to (.+?) for`)

// Engine evaluates the text-pattern rules over note segments. Like the
// billing engine it carries only the injected catalog, which supplies the
// CPT code set a note must mention.
type Engine struct {
	catalog    rules.Catalog
	cptPattern *regexp.Regexp
}

// NewEngine returns an engine bound to the given rule catalog.
func NewEngine(catalog rules.Catalog) *Engine {
	alts := make([]string, len(catalog.NoteCPTCodes))
	for i, code := range catalog.NoteCPTCodes {
		alts[i] = strconv.Itoa(code)
	}
	return &Engine{
		catalog:    catalog,
		cptPattern: regexp.MustCompile(`\b(` + strings.Join(alts, "|") + `)\b`),
	}
}

// Run evaluates every qualifying segment and returns the issues in segment
// order, plus the indices of segments skipped for lacking note markers.
// Each rule is independent; one segment can yield zero to five issues.
func (e *Engine) Run(segs []model.NoteSegment) ([]model.Issue, []int) {
	var issues []model.Issue
	var skipped []int
	for _, seg := range segs {
		if !Qualifies(seg) {
			skipped = append(skipped, seg.Index)
			continue
		}
		issues = append(issues, e.checkSegment(seg)...)
	}
	return issues, skipped
}

func (e *Engine) checkSegment(seg model.NoteSegment) []model.Issue {
	var issues []model.Issue
	add := func(kind model.Kind, detail string) {
		issues = append(issues, model.Issue{
			Note:   seg.Index,
			Date:   model.NoteLabel(seg.Index),
			Kind:   kind,
			Detail: detail,
		})
	}

	if !strings.Contains(seg.Text, markerTaxID) {
		add(model.KindMissingTaxID, fmt.Sprintf("No %q found", markerTaxID))
	}

	if !e.cptPattern.MatchString(seg.Text) {
		add(model.KindMissingCPTCode, "No recognized CPT code in note")
	}

	// Only notes that carry a participants section are held to the
	// checked-box requirement.
	if strings.Contains(seg.Text, markerParticipants) && !anyChecked(seg.Text) {
		add(model.KindParticipantsUnchecked, "Participants listed but none checked")
	}

	goals := extractGoals(seg.Text)
	if len(goals) == 0 {
		add(model.KindNoDataPoints, "No goal data points recorded")
	} else if dups := repeatedGoals(goals); len(dups) > 0 {
		add(model.KindDuplicateGoals, fmt.Sprintf("Repeated goals: %s", strings.Join(dups, ", ")))
	}

	if !strings.Contains(seg.Text, markerSignature) {
		add(model.KindMissingSignature, fmt.Sprintf("No %q found", markerSignature))
	}

	return issues
}

func anyChecked(text string) bool {
	for _, m := range checkedMarks {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// extractGoals returns every captured goal name in document order.
func extractGoals(text string) []string {
	var goals []string
	for _, m := range goalPattern.FindAllStringSubmatch(text, -1) {
		goals = append(goals, m[1])
	}
	return goals
}

// repeatedGoals returns the goal names occurring more than once, each named
// once, in first-occurrence order.
func repeatedGoals(goals []string) []string {
	counts := make(map[string]int)
	for _, g := range goals {
		counts[g]++
	}
	var dups []string
	reported := make(map[string]bool)
	for _, g := range goals {
		if counts[g] > 1 && !reported[g] {
			reported[g] = true
			dups = append(dups, g)
		}
	}
	return dups
}
