package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AddonPair ties a base procedure code to the add-on code that may extend it.
// An add-on billed without its base on the same day is orphaned.
type AddonPair struct {
	Base  int
	Addon int
}

// SupervisionPair ties a supervising procedure code to the service code whose
// session it must concurrently overlap.
type SupervisionPair struct {
	Supervising int
	Target      int
}

// Catalog holds the full compliance rule configuration: duration thresholds,
// code sets, and code pairings. It is built once at startup and passed into
// the rule engines; engines never read ambient globals, so tests can
// substitute alternate catalogs.
//
// Pair lists are ordered slices rather than maps so that issue emission
// order is deterministic across runs.
type Catalog struct {
	MaxSessionHours      decimal.Decimal
	MaxSupervisionHours  decimal.Decimal
	HighDriveTimeMinutes decimal.Decimal

	DirectCare  int // RBT direct-care service
	Supervision int // BCBA supervision of direct care

	ParentTrainingCodes []int
	AddonPairs          []AddonPair
	SupervisionPairs    []SupervisionPair
	ConflictCodes       []int // conflict with direct care on the same day

	ForbiddenLocationCodes []string
	ForbiddenLocationText  []string // case-insensitive substring match

	// NoteCPTCodes is the set a session note must mention at least one of.
	NoteCPTCodes []int
}

// Default returns the standard ABA billing rule catalog.
func Default() Catalog {
	return Catalog{
		MaxSessionHours:      decimal.NewFromInt(4),
		MaxSupervisionHours:  decimal.NewFromInt(2),
		HighDriveTimeMinutes: decimal.NewFromInt(60),

		DirectCare:  97153,
		Supervision: 97155,

		ParentTrainingCodes: []int{97156, 97157, 96167, 96168, 96170, 96171},
		AddonPairs: []AddonPair{
			{Base: 96158, Addon: 96159},
			{Base: 96164, Addon: 96165},
			{Base: 96167, Addon: 96168},
			{Base: 96170, Addon: 96171},
		},
		SupervisionPairs: []SupervisionPair{
			{Supervising: 97155, Target: 97153},
			{Supervising: 96156, Target: 96159},
		},
		ConflictCodes: []int{96167, 96168},

		ForbiddenLocationCodes: []string{"3", "03"},
		ForbiddenLocationText:  []string{"school"},

		NoteCPTCodes: []int{97153, 97155, 97156, 96158, 96159, 96167, 96168},
	}
}

// IsParentTraining reports whether code counts toward the parent-training
// requirement.
func (c *Catalog) IsParentTraining(code int) bool {
	for _, pt := range c.ParentTrainingCodes {
		if code == pt {
			return true
		}
	}
	return false
}

// IsConflictCode reports whether code conflicts with same-day direct care.
func (c *Catalog) IsConflictCode(code int) bool {
	for _, cc := range c.ConflictCodes {
		if code == cc {
			return true
		}
	}
	return false
}

// ForbiddenLocation reports whether a location code or description matches
// the forbidden-location lists. Description matching is a case-insensitive
// substring test.
func (c *Catalog) ForbiddenLocation(code, description string) bool {
	code = strings.TrimSpace(code)
	for _, fc := range c.ForbiddenLocationCodes {
		if code != "" && code == fc {
			return true
		}
	}
	desc := strings.ToLower(description)
	for _, ft := range c.ForbiddenLocationText {
		if strings.Contains(desc, ft) {
			return true
		}
	}
	return false
}

// yamlCatalog is the on-disk YAML override structure. Only duration
// thresholds are overridable; code sets and pairings are fixed policy.
type yamlCatalog struct {
	MaxSessionHours      *float64 `yaml:"max_session_hours"`
	MaxSupervisionHours  *float64 `yaml:"max_supervision_hours"`
	HighDriveTimeMinutes *float64 `yaml:"high_drive_time_minutes"`
}

// LoadFromFile reads a YAML rules file and merges its threshold overrides
// into the catalog.
func (c *Catalog) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rules file: %w", err)
	}
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse rules file: %w", err)
	}
	if yc.MaxSessionHours != nil {
		c.MaxSessionHours = decimal.NewFromFloat(*yc.MaxSessionHours)
	}
	if yc.MaxSupervisionHours != nil {
		c.MaxSupervisionHours = decimal.NewFromFloat(*yc.MaxSupervisionHours)
	}
	if yc.HighDriveTimeMinutes != nil {
		c.HighDriveTimeMinutes = decimal.NewFromFloat(*yc.HighDriveTimeMinutes)
	}
	return c.validate()
}

// validate checks that every threshold is positive.
func (c *Catalog) validate() error {
	checks := []struct {
		name string
		v    decimal.Decimal
	}{
		{"max_session_hours", c.MaxSessionHours},
		{"max_supervision_hours", c.MaxSupervisionHours},
		{"high_drive_time_minutes", c.HighDriveTimeMinutes},
	}
	for _, ch := range checks {
		if !ch.v.IsPositive() {
			return fmt.Errorf("rules: %s must be positive, got %s", ch.name, ch.v)
		}
	}
	return nil
}
