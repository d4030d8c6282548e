package wifiqr

import (
	"errors"
	"testing"
)

func TestEAPMethodTokens(t *testing.T) {
	tests := []struct {
		m     EAPMethod
		token string
		name  string
	}{
		{EAPMethodNone, "", "NONE"},
		{EAPMethodAKA, "AKA", "AKA"},
		{EAPMethodAKAPrime, "AKA_PRIME", "AKA_PRIME"},
		{EAPMethodPEAP, "PEAP", "PEAP"},
		{EAPMethodPWD, "PWD", "PWD"},
		{EAPMethodSIM, "SIM", "SIM"},
		{EAPMethodTLS, "TLS", "TLS"},
		{EAPMethodTTLS, "TTLS", "TTLS"},
		{EAPMethodUnauthTLS, "UNAUTH_TLS", "UNAUTH_TLS"},
		{EAPMethodWAPICert, "WAPI_CERT", "WAPI_CERT"},
		{EAPMethod(200), "", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Token(); got != tt.token {
				t.Errorf("Token() = %q, want %q", got, tt.token)
			}
			if got := tt.m.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestPhase2MethodTokens(t *testing.T) {
	tests := []struct {
		m     Phase2Method
		token string
		name  string
	}{
		{Phase2MethodNone, "", "NONE"},
		{Phase2MethodAKA, "AKA", "AKA"},
		{Phase2MethodAKAPrime, "AKA_PRIME", "AKA_PRIME"},
		{Phase2MethodGTC, "GTC", "GTC"},
		{Phase2MethodMSCHAP, "MSCHAP", "MSCHAP"},
		{Phase2MethodMSCHAPv2, "MSCHAPV2", "MSCHAPV2"},
		{Phase2MethodPAP, "PAP", "PAP"},
		{Phase2MethodSIM, "SIM", "SIM"},
		{Phase2Method(200), "", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Token(); got != tt.token {
				t.Errorf("Token() = %q, want %q", got, tt.token)
			}
			if got := tt.m.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestParseEAPMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    EAPMethod
		wantErr bool
	}{
		{"", EAPMethodNone, false},
		{"none", EAPMethodNone, false},
		{"peap", EAPMethodPEAP, false},
		{"PEAP", EAPMethodPEAP, false},
		{"AKA-Prime", EAPMethodAKAPrime, false},
		{"aka_prime", EAPMethodAKAPrime, false},
		{"UNAUTH-TLS", EAPMethodUnauthTLS, false},
		{"wapi-cert", EAPMethodWAPICert, false},
		{" ttls ", EAPMethodTTLS, false},
		{"LEAP", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEAPMethod(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEAPMethod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEAPMethod) {
					t.Errorf("error = %v, want ErrUnknownEAPMethod", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseEAPMethod(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePhase2Method(t *testing.T) {
	tests := []struct {
		in      string
		want    Phase2Method
		wantErr bool
	}{
		{"", Phase2MethodNone, false},
		{"NONE", Phase2MethodNone, false},
		{"MSCHAPv2", Phase2MethodMSCHAPv2, false},
		{"mschap", Phase2MethodMSCHAP, false},
		{"gtc", Phase2MethodGTC, false},
		{"AKA'", Phase2MethodAKAPrime, false},
		{"EAP", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePhase2Method(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePhase2Method(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPhase2Method) {
					t.Errorf("error = %v, want ErrUnknownPhase2Method", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePhase2Method(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVocabularyParsesOwnTokens(t *testing.T) {
	for m := EAPMethodNone; m <= EAPMethodWAPICert; m++ {
		got, err := ParseEAPMethod(m.Token())
		if err != nil || got != m {
			t.Errorf("ParseEAPMethod(%q) = %v, %v; want %v", m.Token(), got, err, m)
		}
	}
	for m := Phase2MethodNone; m <= Phase2MethodSIM; m++ {
		got, err := ParsePhase2Method(m.Token())
		if err != nil || got != m {
			t.Errorf("ParsePhase2Method(%q) = %v, %v; want %v", m.Token(), got, err, m)
		}
	}
}
