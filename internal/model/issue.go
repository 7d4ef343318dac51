package model

import "fmt"

// Kind identifies one compliance rule in the fixed issue taxonomy.
type Kind string

// Billing issue kinds.
const (
	KindSessionTooLong        Kind = "Session > 4 Hours"
	KindSupervisionTooLong    Kind = "Supervision > 2 Hours"
	KindForbiddenLocation     Kind = "Forbidden Location"
	KindHighTravelTime        Kind = "High Travel Time"
	KindDirectFamilyConflict  Kind = "Direct Care & Family Conflict"
	KindSequenceError         Kind = "Sequence Error"
	KindMissingParentTraining Kind = "Missing Parent Training"
	KindNeverSupervised       Kind = "RBT Never Supervised"
	KindDateError             Kind = "Date Error"
)

// Note issue kinds.
const (
	KindMissingTaxID          Kind = "Missing Tax ID"
	KindMissingCPTCode        Kind = "Missing CPT Code"
	KindParticipantsUnchecked Kind = "Participants Unchecked"
	KindNoDataPoints          Kind = "No Data Points"
	KindDuplicateGoals        Kind = "Duplicate Goals"
	KindMissingSignature      Kind = "Missing Signature"
)

// KindDuplicateBase returns the kind for a base code billed more than once
// in a client/day group.
func KindDuplicateBase(code int) Kind {
	return Kind(fmt.Sprintf("Duplicate Base %d", code))
}

// KindOrphanedAddon returns the kind for an add-on billed without its base.
func KindOrphanedAddon(code int) Kind {
	return Kind(fmt.Sprintf("Orphaned Add-on %d", code))
}

// KindNoOverlap returns the kind for a supervising session with no
// concurrent target session.
func KindNoOverlap(code int) Kind {
	return Kind(fmt.Sprintf("No Overlap for %d", code))
}

// MonthlyLabel is the date label carried by batch-aggregate issues. The
// auditor processes one uploaded batch per run, so "monthly" means the
// whole batch.
const MonthlyLabel = "Monthly"

// NoteLabel returns the date label for an issue on the i-th note segment.
func NoteLabel(i int) string {
	return fmt.Sprintf("Note %d", i)
}

// Issue is a single flagged compliance finding. Issues are data, not
// errors: they are appended in rule-evaluation order and never mutated or
// deduplicated afterwards.
type Issue struct {
	Client string `parquet:"client,optional"`
	Note   int    `parquet:"note"`   // 1-based note index; 0 for billing issues
	Date   string `parquet:"date"`   // YYYY-MM-DD, MonthlyLabel, or NoteLabel
	Kind   Kind   `parquet:"issue"`
	Detail string `parquet:"detail"` // human-readable, embeds the offending values
}
