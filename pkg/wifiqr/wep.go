package wifiqr

import "strings"

// WEP is a built configuration for a WEP network.
type WEP struct {
	ssid     string
	password string
	hidden   bool
}

// WEPBuilder accumulates the fields of a WEP configuration.
// The zero value is an empty builder.
type WEPBuilder struct {
	ssid        string
	password    string
	hasSSID     bool
	hasPassword bool
	hidden      bool
}

// NewWEPBuilder returns an empty builder.
func NewWEPBuilder() *WEPBuilder {
	return &WEPBuilder{}
}

// SSID sets the network name.
func (b *WEPBuilder) SSID(ssid string) *WEPBuilder {
	b.ssid, b.hasSSID = ssid, true
	return b
}

// Password sets the WEP key.
func (b *WEPBuilder) Password(password string) *WEPBuilder {
	b.password, b.hasPassword = password, true
	return b
}

// Hidden marks the network as not broadcasting its SSID.
func (b *WEPBuilder) Hidden(hidden bool) *WEPBuilder {
	b.hidden = hidden
	return b
}

// Build validates the builder and returns the configuration.
// Missing ssid and password together yield ErrMissingSSIDAndPassword.
func (b *WEPBuilder) Build() (WEP, error) {
	if err := credentialError(SchemeWEP, b.hasSSID, b.hasPassword); err != nil {
		return WEP{}, err
	}
	return WEP{ssid: b.ssid, password: b.password, hidden: b.hidden}, nil
}

// SSID returns the network name.
func (c WEP) SSID() string { return c.ssid }

// Password returns the WEP key.
func (c WEP) Password() string { return c.password }

// IsHidden reports whether the network is hidden.
func (c WEP) IsHidden() bool { return c.hidden }

// Scheme returns SchemeWEP.
func (WEP) Scheme() Scheme { return SchemeWEP }

// Encode returns the payload, e.g. WIFI:T:WEP;S:lab;P:secret;H:false;;
func (c WEP) Encode() string {
	var b strings.Builder
	writeHeader(&b, SchemeWEP)
	writeField(&b, "S", Escape(c.ssid))
	writeField(&b, "P", Escape(c.password))
	writeHidden(&b, c.hidden)
	return finish(&b)
}

// MarshalText implements encoding.TextMarshaler.
func (c WEP) MarshalText() ([]byte, error) {
	return []byte(c.Encode()), nil
}
