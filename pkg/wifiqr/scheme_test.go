package wifiqr

import (
	"errors"
	"testing"
)

func TestSchemeToken(t *testing.T) {
	tests := []struct {
		scheme Scheme
		token  string
		name   string
	}{
		{SchemeNoPass, "nopass", "NOPASS"},
		{SchemeWEP, "WEP", "WEP"},
		{SchemeWPA, "WPA", "WPA"},
		{SchemeWPA2EAP, "WPA2-EAP", "WPA2_EAP"},
		{Scheme(99), "", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scheme.Token(); got != tt.token {
				t.Errorf("Token() = %q, want %q", got, tt.token)
			}
			if got := tt.scheme.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Scheme
		wantErr bool
	}{
		{"nopass", SchemeNoPass, false},
		{"NOPASS", SchemeNoPass, false},
		{"open", SchemeNoPass, false},
		{"WEP", SchemeWEP, false},
		{"wpa", SchemeWPA, false},
		{" WPA2 ", SchemeWPA, false},
		{"WPA2-EAP", SchemeWPA2EAP, false},
		{"wpa2_eap", SchemeWPA2EAP, false},
		{"enterprise", SchemeWPA2EAP, false},
		{"", 0, true},
		{"wpa4", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownScheme) {
					t.Errorf("error = %v, want ErrUnknownScheme", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseScheme(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSchemeAcceptsOwnToken(t *testing.T) {
	for _, s := range []Scheme{SchemeNoPass, SchemeWEP, SchemeWPA, SchemeWPA2EAP} {
		got, err := ParseScheme(s.Token())
		if err != nil {
			t.Fatalf("ParseScheme(%q) error = %v", s.Token(), err)
		}
		if got != s {
			t.Errorf("ParseScheme(%q) = %v, want %v", s.Token(), got, s)
		}
	}
}
