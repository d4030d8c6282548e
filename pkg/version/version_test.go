package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint16
		minor uint16
	}{
		{"1.0", 1, 0},
		{"1.1", 1, 1},
		{"1", 1, 0},
		{" 2 ", 2, 0},
		{"10.23", 10, 23},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Major != tt.major {
				t.Errorf("Major = %d, want %d", v.Major, tt.major)
			}
			if v.Minor != tt.minor {
				t.Errorf("Minor = %d, want %d", v.Minor, tt.minor)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"1.0.0",
		"1.x",
		"-1.0",
		"1.",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestFormatVersion_String(t *testing.T) {
	v, err := Parse("1")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "1.0" {
		t.Errorf("String() = %q, want %q", v.String(), "1.0")
	}
}

func TestCompatible(t *testing.T) {
	v1 := MustParse("1.0")

	if !v1.Compatible(MustParse("1.1")) {
		t.Error("1.0 should be compatible with 1.1")
	}
	if v1.Compatible(MustParse("2.0")) {
		t.Error("1.0 should NOT be compatible with 2.0")
	}
}

func TestSupported(t *testing.T) {
	for _, s := range []string{"1", "1.0", "1.4"} {
		if err := Supported(s); err != nil {
			t.Errorf("Supported(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"", "0.9", "2", "one"} {
		if err := Supported(s); err == nil {
			t.Errorf("Supported(%q) should return error", s)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("x.y")
}

func TestCurrent(t *testing.T) {
	v, err := Parse(Current)
	if err != nil {
		t.Fatalf("Parse(Current) returned error: %v", err)
	}
	if v.Major != 1 || v.Minor != 0 {
		t.Errorf("Current version = %s, want 1.0", v)
	}
}
