package refcase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFixture(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	set, err := Load("../../testdata/reference.toml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if set.Precision != "float32" {
		t.Fatalf("precision = %q", set.Precision)
	}
	first := set.Cases[0]
	if first.Name != "white/white" || first.A != [3]uint8{255, 255, 255} || first.LuminanceA == nil || *first.LuminanceA != 1 {
		t.Fatalf("unexpected first case: %+v", first)
	}
	if first.Pass != nil {
		t.Fatalf("pass should be unset: %+v", first)
	}
}

func TestLoadYAML(t *testing.T) {
	set, err := Load("../../testdata/wcag.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if set.Precision != "float64" {
		t.Fatalf("precision = %q", set.Precision)
	}
	var names []string
	for _, c := range set.Cases {
		if c.Pass == nil || c.MinRatio <= 0 {
			t.Fatalf("case %s missing pass/min_ratio", c.Name)
		}
		names = append(names, c.Name)
	}
	want := []string{"blackOnWhite", "whiteOnBlack", "darkRedOnWhite", "amberOnNavy", "redOnWhite", "redOnWhiteLarge", "yellowOnWhite"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("case names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSONMatchesYAML(t *testing.T) {
	yamlPath := writeFixture(t, "c.yml", "case:\n  - name: x\n    a: [1, 2, 3]\n    b: [4, 5, 6]\n    contrast: 1.5\n")
	jsonPath := writeFixture(t, "c.json", `{"case":[{"name":"x","a":[1,2,3],"b":[4,5,6],"contrast":1.5}]}`)
	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	fromJSON, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Fatalf("yaml/json mismatch (-yaml +json):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want string
	}{
		{"extension", "c.ini", "x", "unsupported fixture extension"},
		{"syntax", "c.toml", "precision = ", "parse"},
		{"empty", "c.toml", `precision = "float32"`, "no cases"},
		{"precision", "c.toml", "precision = \"float16\"\n[[case]]\nname = \"a\"\n", "unsupported precision"},
		{"name", "c.toml", "[[case]]\ncontrast = 2.0\n", "missing name"},
		{"duplicate", "c.toml", "[[case]]\nname = \"a\"\n[[case]]\nname = \"a\"\n", "duplicate name"},
		{"range", "c.toml", "[[case]]\nname = \"a\"\ncontrast = 22.0\n", "outside [1,21]"},
		{"pass", "c.yaml", "case:\n  - name: a\n    pass: true\n", "pass requires min_ratio"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFixture(t, tc.file, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
	if _, err := Load("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
