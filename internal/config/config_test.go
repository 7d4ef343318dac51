package config

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestValidate(t *testing.T) {
	file := touch(t, "billing.csv")
	rules := touch(t, "rules.yaml")

	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{FilePath: file}, false},
		{"ok with rules", Config{FilePath: file, RulesPath: rules}, false},
		{"missing file path", Config{}, true},
		{"file does not exist", Config{FilePath: "/nonexistent/billing.csv"}, true},
		{"rules file does not exist", Config{FilePath: file, RulesPath: "/nonexistent/rules.yaml"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
