// Package wifiqr builds the "WIFI:" payload carried by Wi-Fi network QR codes.
//
// Each authentication scheme has a builder that accumulates fields and a
// built value that renders the payload string:
//
//	cfg, err := wifiqr.NewWPABuilder().
//	    SSID("home").
//	    Password("P@ssw0rd").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	content := cfg.Encode() // WIFI:T:WPA;S:home;P:P@ssw0rd;H:false;;
//
// # Schemes
//
//   - NoPass: open network, no credentials
//   - WEP: legacy shared key
//   - WPA: WPA/WPA2/WPA3 personal (pre-shared key)
//   - WPA2EAP: WPA2-Enterprise with EAP and an optional phase-2 method
//
// # Payload Format
//
// Fields appear in a fixed order per scheme, each terminated by ';'. The
// payload itself ends with an extra ';':
//
//	WIFI:T:<type>;S:<ssid>;P:<password>;H:<hidden>;;
//	WIFI:T:WPA2-EAP;S:<ssid>;H:<hidden>;I:<identity>;A:<anonymous>;P:<password>;E:<eap>;PH2:<phase2>;;
//
// Free-text fields are escaped with Escape. Scheme, hidden and EAP tokens come
// from closed vocabularies and are written verbatim.
//
// # Validation
//
// Build returns a *BuildError when a required field was never set. Its Kind
// is one of the sentinel errors and can be tested with errors.Is; Missing
// lists every absent field. A field set to the empty string counts as set.
//
// Built values are immutable and safe for concurrent use. Builders are not.
package wifiqr

//go:generate go run ../../cmd/wifiqr-enumgen -vocab ../../docs/vocab.yaml -output vocab_gen.go
