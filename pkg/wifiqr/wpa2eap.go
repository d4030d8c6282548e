package wifiqr

import "strings"

// WPA2EAP is a built configuration for a WPA2-Enterprise network.
type WPA2EAP struct {
	ssid              string
	hidden            bool
	identity          string
	anonymousIdentity string
	password          string
	eap               EAPMethod
	phase2            Phase2Method
}

// WPA2EAPBuilder accumulates the fields of a WPA2EAP configuration.
// The zero value is an empty builder with both methods set to none.
type WPA2EAPBuilder struct {
	ssid              string
	identity          string
	anonymousIdentity string
	password          string

	hasSSID              bool
	hasIdentity          bool
	hasAnonymousIdentity bool
	hasPassword          bool

	hidden bool
	eap    EAPMethod
	phase2 Phase2Method
}

// NewWPA2EAPBuilder returns an empty builder.
func NewWPA2EAPBuilder() *WPA2EAPBuilder {
	return &WPA2EAPBuilder{eap: EAPMethodNone, phase2: Phase2MethodNone}
}

// SSID sets the network name.
func (b *WPA2EAPBuilder) SSID(ssid string) *WPA2EAPBuilder {
	b.ssid, b.hasSSID = ssid, true
	return b
}

// Password sets the credential used by the EAP method.
func (b *WPA2EAPBuilder) Password(password string) *WPA2EAPBuilder {
	b.password, b.hasPassword = password, true
	return b
}

// Hidden marks the network as not broadcasting its SSID.
func (b *WPA2EAPBuilder) Hidden(hidden bool) *WPA2EAPBuilder {
	b.hidden = hidden
	return b
}

// Identity sets the user identity.
func (b *WPA2EAPBuilder) Identity(identity string) *WPA2EAPBuilder {
	b.identity, b.hasIdentity = identity, true
	return b
}

// AnonymousIdentity sets the outer identity sent before the tunnel is established.
func (b *WPA2EAPBuilder) AnonymousIdentity(identity string) *WPA2EAPBuilder {
	b.anonymousIdentity, b.hasAnonymousIdentity = identity, true
	return b
}

// EAPMethod sets the outer EAP method.
func (b *WPA2EAPBuilder) EAPMethod(m EAPMethod) *WPA2EAPBuilder {
	b.eap = m
	return b
}

// Phase2Method sets the inner authentication method.
func (b *WPA2EAPBuilder) Phase2Method(m Phase2Method) *WPA2EAPBuilder {
	b.phase2 = m
	return b
}

// Build validates the builder and returns the configuration.
//
// Every required field is checked. The error Kind is the first missing field
// in the order ssid, identity, anonymous identity, password; Missing lists
// all of them.
func (b *WPA2EAPBuilder) Build() (WPA2EAP, error) {
	required := []struct {
		field Field
		set   bool
		kind  error
	}{
		{FieldSSID, b.hasSSID, ErrMissingSSID},
		{FieldIdentity, b.hasIdentity, ErrMissingIdentity},
		{FieldAnonymousIdentity, b.hasAnonymousIdentity, ErrMissingAnonymousIdentity},
		{FieldPassword, b.hasPassword, ErrMissingPassword},
	}

	var missing *BuildError
	for _, r := range required {
		if r.set {
			continue
		}
		if missing == nil {
			missing = &BuildError{Scheme: SchemeWPA2EAP, Kind: r.kind}
		}
		missing.Missing = append(missing.Missing, r.field)
	}
	if missing != nil {
		return WPA2EAP{}, missing
	}

	return WPA2EAP{
		ssid:              b.ssid,
		hidden:            b.hidden,
		identity:          b.identity,
		anonymousIdentity: b.anonymousIdentity,
		password:          b.password,
		eap:               b.eap,
		phase2:            b.phase2,
	}, nil
}

// SSID returns the network name.
func (c WPA2EAP) SSID() string { return c.ssid }

// IsHidden reports whether the network is hidden.
func (c WPA2EAP) IsHidden() bool { return c.hidden }

// Identity returns the user identity.
func (c WPA2EAP) Identity() string { return c.identity }

// AnonymousIdentity returns the outer identity.
func (c WPA2EAP) AnonymousIdentity() string { return c.anonymousIdentity }

// Password returns the credential.
func (c WPA2EAP) Password() string { return c.password }

// EAPMethod returns the outer EAP method.
func (c WPA2EAP) EAPMethod() EAPMethod { return c.eap }

// Phase2Method returns the inner authentication method.
func (c WPA2EAP) Phase2Method() Phase2Method { return c.phase2 }

// Scheme returns SchemeWPA2EAP.
func (WPA2EAP) Scheme() Scheme { return SchemeWPA2EAP }

// Encode returns the payload:
//
//	WIFI:T:WPA2-EAP;S:<ssid>;H:<hidden>;I:<identity>;A:<anonymous>;P:<password>;E:<eap>;PH2:<phase2>;;
//
// The E and PH2 values are written unescaped and are empty for none.
func (c WPA2EAP) Encode() string {
	var b strings.Builder
	writeHeader(&b, SchemeWPA2EAP)
	writeField(&b, "S", Escape(c.ssid))
	writeHidden(&b, c.hidden)
	writeField(&b, "I", Escape(c.identity))
	writeField(&b, "A", Escape(c.anonymousIdentity))
	writeField(&b, "P", Escape(c.password))
	writeField(&b, "E", c.eap.Token())
	writeField(&b, "PH2", c.phase2.Token())
	return finish(&b)
}

// MarshalText implements encoding.TextMarshaler.
func (c WPA2EAP) MarshalText() ([]byte, error) {
	return []byte(c.Encode()), nil
}
