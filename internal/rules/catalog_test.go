package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefault_CatalogShape(t *testing.T) {
	c := Default()
	if !c.MaxSessionHours.Equal(decimal.NewFromInt(4)) {
		t.Errorf("MaxSessionHours = %s", c.MaxSessionHours)
	}
	if c.DirectCare != 97153 || c.Supervision != 97155 {
		t.Errorf("core codes = %d/%d", c.DirectCare, c.Supervision)
	}
	if len(c.AddonPairs) != 4 || c.AddonPairs[0].Base != 96158 || c.AddonPairs[0].Addon != 96159 {
		t.Errorf("AddonPairs = %v", c.AddonPairs)
	}
	if len(c.SupervisionPairs) != 2 || c.SupervisionPairs[0].Supervising != 97155 {
		t.Errorf("SupervisionPairs = %v", c.SupervisionPairs)
	}
}

func TestLoadFromFile_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	os.WriteFile(path, []byte("max_session_hours: 6\nhigh_drive_time_minutes: 90\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if !c.MaxSessionHours.Equal(decimal.NewFromInt(6)) {
		t.Errorf("MaxSessionHours = %s, want 6", c.MaxSessionHours)
	}
	if !c.HighDriveTimeMinutes.Equal(decimal.NewFromInt(90)) {
		t.Errorf("HighDriveTimeMinutes = %s, want 90", c.HighDriveTimeMinutes)
	}
	// Untouched threshold keeps its default.
	if !c.MaxSupervisionHours.Equal(decimal.NewFromInt(2)) {
		t.Errorf("MaxSupervisionHours = %s, want 2", c.MaxSupervisionHours)
	}
}

func TestLoadFromFile_RejectsNonPositiveThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	os.WriteFile(path, []byte("max_session_hours: 0\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for zero threshold")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	c := Default()
	if err := c.LoadFromFile("/nonexistent/rules.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestForbiddenLocation(t *testing.T) {
	c := Default()
	cases := []struct {
		code string
		desc string
		want bool
	}{
		{"3", "", true},
		{"03", "", true},
		{" 03 ", "", true},
		{"", "Riverside School", true},
		{"", "PRESCHOOL annex", true},
		{"12", "Home", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if got := c.ForbiddenLocation(tc.code, tc.desc); got != tc.want {
			t.Errorf("ForbiddenLocation(%q, %q) = %v, want %v", tc.code, tc.desc, got, tc.want)
		}
	}
}

func TestIsParentTraining(t *testing.T) {
	c := Default()
	if !c.IsParentTraining(97156) || c.IsParentTraining(97153) {
		t.Error("parent-training membership wrong")
	}
}
