package wifiqr

import "strings"

// WPA is a built configuration for a WPA personal network.
type WPA struct {
	ssid     string
	password string
	hidden   bool
}

// WPABuilder accumulates the fields of a WPA configuration.
// The zero value is an empty builder.
type WPABuilder struct {
	ssid        string
	password    string
	hasSSID     bool
	hasPassword bool
	hidden      bool
}

// NewWPABuilder returns an empty builder.
func NewWPABuilder() *WPABuilder {
	return &WPABuilder{}
}

// SSID sets the network name.
func (b *WPABuilder) SSID(ssid string) *WPABuilder {
	b.ssid, b.hasSSID = ssid, true
	return b
}

// Password sets the pre-shared passphrase.
func (b *WPABuilder) Password(password string) *WPABuilder {
	b.password, b.hasPassword = password, true
	return b
}

// Hidden marks the network as not broadcasting its SSID.
func (b *WPABuilder) Hidden(hidden bool) *WPABuilder {
	b.hidden = hidden
	return b
}

// Build validates the builder and returns the configuration.
// Missing ssid and password together yield ErrMissingSSIDAndPassword.
func (b *WPABuilder) Build() (WPA, error) {
	if err := credentialError(SchemeWPA, b.hasSSID, b.hasPassword); err != nil {
		return WPA{}, err
	}
	return WPA{ssid: b.ssid, password: b.password, hidden: b.hidden}, nil
}

// SSID returns the network name.
func (c WPA) SSID() string { return c.ssid }

// Password returns the pre-shared passphrase.
func (c WPA) Password() string { return c.password }

// IsHidden reports whether the network is hidden.
func (c WPA) IsHidden() bool { return c.hidden }

// Scheme returns SchemeWPA.
func (WPA) Scheme() Scheme { return SchemeWPA }

// Encode returns the payload, e.g. WIFI:T:WPA;S:home;P:P@ssw0rd;H:false;;
func (c WPA) Encode() string {
	var b strings.Builder
	writeHeader(&b, SchemeWPA)
	writeField(&b, "S", Escape(c.ssid))
	writeField(&b, "P", Escape(c.password))
	writeHidden(&b, c.hidden)
	return finish(&b)
}

// MarshalText implements encoding.TextMarshaler.
func (c WPA) MarshalText() ([]byte, error) {
	return []byte(c.Encode()), nil
}
