package main

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// vocabPath returns the absolute path to docs/vocab.yaml relative to this test file.
func vocabPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "docs", "vocab.yaml")
}

func TestParseVocab_Minimal(t *testing.T) {
	yaml := `
package: demo
enums:
  - name: Color
    description: a color
    values:
      - name: NONE
        token: ""
        description: no color
      - name: DARK_RED
        token: dark-red
        aliases: ["MAROON"]
        description: dark red
`
	v, err := ParseVocab([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseVocab failed: %v", err)
	}

	if v.Package != "demo" {
		t.Errorf("package = %q, want demo", v.Package)
	}
	if len(v.Enums) != 1 {
		t.Fatalf("len(enums) = %d, want 1", len(v.Enums))
	}

	e := v.Enums[0]
	if e.Type != "uint8" {
		t.Errorf("type = %q, want uint8 default", e.Type)
	}
	if len(e.Values) != 2 {
		t.Fatalf("len(values) = %d, want 2", len(e.Values))
	}
	if e.Values[1].Token != "dark-red" {
		t.Errorf("token = %q, want dark-red", e.Values[1].Token)
	}
	if len(e.Values[1].Aliases) != 1 || e.Values[1].Aliases[0] != "MAROON" {
		t.Errorf("aliases = %v, want [MAROON]", e.Values[1].Aliases)
	}
}

func TestParseVocab_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "MissingPackage",
			yaml: "enums:\n  - name: A\n    values:\n      - name: X\n",
			want: "missing package",
		},
		{
			name: "NoEnums",
			yaml: "package: p\n",
			want: "no enums",
		},
		{
			name: "DuplicateEnum",
			yaml: "package: p\nenums:\n  - name: A\n    values:\n      - name: X\n  - name: A\n    values:\n      - name: Y\n",
			want: "duplicate enum A",
		},
		{
			name: "NoValues",
			yaml: "package: p\nenums:\n  - name: A\n",
			want: "enum A has no values",
		},
		{
			name: "DuplicateValue",
			yaml: "package: p\nenums:\n  - name: A\n    values:\n      - {name: X, token: x}\n      - {name: X, token: y}\n",
			want: "duplicate value X",
		},
		{
			name: "DuplicateToken",
			yaml: "package: p\nenums:\n  - name: A\n    values:\n      - {name: X, token: t}\n      - {name: Y, token: t}\n",
			want: `duplicate token "t"`,
		},
		{
			name: "AliasCollision",
			yaml: "package: p\nenums:\n  - name: A\n    values:\n      - {name: X, token: x}\n      - {name: Y, token: y, aliases: [x]}\n",
			want: `"X" parses to both X and Y`,
		},
		{
			name: "InvalidYAML",
			yaml: "package: [",
			want: "parsing vocabulary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVocab([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseKeys(t *testing.T) {
	keys := parseKeys(RawEnumValue{Name: "AKA_PRIME", Token: "aka_prime", Aliases: []string{"AKA-PRIME", "aka'"}})
	want := []string{"AKA_PRIME", "AKA-PRIME", "AKA'"}

	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestLoadVocab_Repository(t *testing.T) {
	v, err := LoadVocab(vocabPath(t))
	if err != nil {
		t.Fatalf("LoadVocab failed: %v", err)
	}

	if v.Package != "wifiqr" {
		t.Errorf("package = %q, want wifiqr", v.Package)
	}

	counts := map[string]int{}
	for _, e := range v.Enums {
		counts[e.Name] = len(e.Values)
		if e.Values[0].Name != "NONE" || e.Values[0].Token != "" {
			t.Errorf("%s: first value = %+v, want NONE with empty token", e.Name, e.Values[0])
		}
	}
	if counts["EAPMethod"] != 10 {
		t.Errorf("EAPMethod values = %d, want 10", counts["EAPMethod"])
	}
	if counts["Phase2Method"] != 8 {
		t.Errorf("Phase2Method values = %d, want 8", counts["Phase2Method"])
	}
}

func TestLoadVocab_MissingFile(t *testing.T) {
	if _, err := LoadVocab(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
