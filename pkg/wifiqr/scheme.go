package wifiqr

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Scheme identifies the authentication scheme of a network.
type Scheme uint8

const (
	// SchemeNoPass is an open network without credentials.
	SchemeNoPass Scheme = iota

	// SchemeWEP is a WEP protected network.
	SchemeWEP

	// SchemeWPA is a WPA/WPA2/WPA3 personal network.
	SchemeWPA

	// SchemeWPA2EAP is a WPA2-Enterprise network using EAP.
	SchemeWPA2EAP
)

// ErrUnknownScheme is returned by ParseScheme for unrecognized input.
var ErrUnknownScheme = errors.New("unknown scheme")

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeNoPass:
		return "NOPASS"
	case SchemeWEP:
		return "WEP"
	case SchemeWPA:
		return "WPA"
	case SchemeWPA2EAP:
		return "WPA2_EAP"
	default:
		return "UNKNOWN"
	}
}

// Token returns the value written after "T:" in the payload.
func (s Scheme) Token() string {
	switch s {
	case SchemeNoPass:
		return "nopass"
	case SchemeWEP:
		return "WEP"
	case SchemeWPA:
		return "WPA"
	case SchemeWPA2EAP:
		return "WPA2-EAP"
	default:
		return ""
	}
}

// ParseScheme parses a scheme token or common alias, ignoring case.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nopass", "none", "open":
		return SchemeNoPass, nil
	case "wep":
		return SchemeWEP, nil
	case "wpa", "wpa2", "wpa3", "sae":
		return SchemeWPA, nil
	case "wpa2-eap", "wpa2_eap", "eap", "enterprise":
		return SchemeWPA2EAP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
	}
}

// Payload is a built network configuration that can render its QR payload.
type Payload interface {
	// Scheme returns the authentication scheme of the configuration.
	Scheme() Scheme

	// Encode returns the full WIFI: payload string.
	Encode() string
}

// Compile-time interface satisfaction checks.
var (
	_ Payload                = NoPass{}
	_ Payload                = WEP{}
	_ Payload                = WPA{}
	_ Payload                = WPA2EAP{}
	_ encoding.TextMarshaler = NoPass{}
	_ encoding.TextMarshaler = WEP{}
	_ encoding.TextMarshaler = WPA{}
	_ encoding.TextMarshaler = WPA2EAP{}
)
