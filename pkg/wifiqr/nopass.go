package wifiqr

import "strings"

// NoPass is a built configuration for an open network.
type NoPass struct {
	ssid   string
	hidden bool
}

// NoPassBuilder accumulates the fields of a NoPass configuration.
// The zero value is an empty builder.
type NoPassBuilder struct {
	ssid    string
	hasSSID bool
	hidden  bool
}

// NewNoPassBuilder returns an empty builder.
func NewNoPassBuilder() *NoPassBuilder {
	return &NoPassBuilder{}
}

// SSID sets the network name.
func (b *NoPassBuilder) SSID(ssid string) *NoPassBuilder {
	b.ssid, b.hasSSID = ssid, true
	return b
}

// Hidden marks the network as not broadcasting its SSID.
func (b *NoPassBuilder) Hidden(hidden bool) *NoPassBuilder {
	b.hidden = hidden
	return b
}

// Build validates the builder and returns the configuration.
func (b *NoPassBuilder) Build() (NoPass, error) {
	if !b.hasSSID {
		return NoPass{}, &BuildError{Scheme: SchemeNoPass, Kind: ErrMissingSSID, Missing: []Field{FieldSSID}}
	}
	return NoPass{ssid: b.ssid, hidden: b.hidden}, nil
}

// SSID returns the network name.
func (c NoPass) SSID() string { return c.ssid }

// IsHidden reports whether the network is hidden.
func (c NoPass) IsHidden() bool { return c.hidden }

// Scheme returns SchemeNoPass.
func (NoPass) Scheme() Scheme { return SchemeNoPass }

// Encode returns the payload, e.g. WIFI:T:nopass;S:guest;H:false;;
func (c NoPass) Encode() string {
	var b strings.Builder
	writeHeader(&b, SchemeNoPass)
	writeField(&b, "S", Escape(c.ssid))
	writeHidden(&b, c.hidden)
	return finish(&b)
}

// MarshalText implements encoding.TextMarshaler.
func (c NoPass) MarshalText() ([]byte, error) {
	return []byte(c.Encode()), nil
}
