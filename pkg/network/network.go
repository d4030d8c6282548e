package network

import (
	"errors"
	"fmt"

	"github.com/wifiqr/wifiqr-go/pkg/wifiqr"
)

// ErrUnexpectedField is returned when a field is set that the scheme does not use.
var ErrUnexpectedField = errors.New("field not used by scheme")

// Network describes one network. Optional strings are pointers so that an
// absent field stays distinguishable from an empty one.
type Network struct {
	Name              string  `yaml:"name,omitempty" cbor:"1,keyasint,omitempty"`
	Scheme            string  `yaml:"scheme" cbor:"2,keyasint"`
	SSID              *string `yaml:"ssid,omitempty" cbor:"3,keyasint,omitempty"`
	Password          *string `yaml:"password,omitempty" cbor:"4,keyasint,omitempty"`
	Hidden            bool    `yaml:"hidden,omitempty" cbor:"5,keyasint,omitempty"`
	Identity          *string `yaml:"identity,omitempty" cbor:"6,keyasint,omitempty"`
	AnonymousIdentity *string `yaml:"anonymous_identity,omitempty" cbor:"7,keyasint,omitempty"`
	EAP               string  `yaml:"eap,omitempty" cbor:"8,keyasint,omitempty"`
	Phase2            string  `yaml:"phase2,omitempty" cbor:"9,keyasint,omitempty"`
}

// Label returns the network name, falling back to the SSID.
func (n Network) Label() string {
	if n.Name != "" {
		return n.Name
	}
	if n.SSID != nil {
		return *n.SSID
	}
	return ""
}

// Payload builds the configuration described by n.
func (n Network) Payload() (wifiqr.Payload, error) {
	scheme, err := wifiqr.ParseScheme(n.Scheme)
	if err != nil {
		return nil, err
	}

	if err := n.checkFields(scheme); err != nil {
		return nil, err
	}

	switch scheme {
	case wifiqr.SchemeNoPass:
		b := wifiqr.NewNoPassBuilder().Hidden(n.Hidden)
		if n.SSID != nil {
			b.SSID(*n.SSID)
		}
		return asPayload(b.Build())

	case wifiqr.SchemeWEP:
		b := wifiqr.NewWEPBuilder().Hidden(n.Hidden)
		if n.SSID != nil {
			b.SSID(*n.SSID)
		}
		if n.Password != nil {
			b.Password(*n.Password)
		}
		return asPayload(b.Build())

	case wifiqr.SchemeWPA:
		b := wifiqr.NewWPABuilder().Hidden(n.Hidden)
		if n.SSID != nil {
			b.SSID(*n.SSID)
		}
		if n.Password != nil {
			b.Password(*n.Password)
		}
		return asPayload(b.Build())

	case wifiqr.SchemeWPA2EAP:
		eap, err := wifiqr.ParseEAPMethod(n.EAP)
		if err != nil {
			return nil, err
		}
		phase2, err := wifiqr.ParsePhase2Method(n.Phase2)
		if err != nil {
			return nil, err
		}
		b := wifiqr.NewWPA2EAPBuilder().
			Hidden(n.Hidden).
			EAPMethod(eap).
			Phase2Method(phase2)
		if n.SSID != nil {
			b.SSID(*n.SSID)
		}
		if n.Identity != nil {
			b.Identity(*n.Identity)
		}
		if n.AnonymousIdentity != nil {
			b.AnonymousIdentity(*n.AnonymousIdentity)
		}
		if n.Password != nil {
			b.Password(*n.Password)
		}
		return asPayload(b.Build())
	}

	return nil, fmt.Errorf("%w: %v", wifiqr.ErrUnknownScheme, scheme)
}

// checkFields rejects fields the scheme would silently drop.
func (n Network) checkFields(scheme wifiqr.Scheme) error {
	var unexpected []string
	if scheme == wifiqr.SchemeNoPass && n.Password != nil {
		unexpected = append(unexpected, "password")
	}
	if scheme != wifiqr.SchemeWPA2EAP {
		if n.Identity != nil {
			unexpected = append(unexpected, "identity")
		}
		if n.AnonymousIdentity != nil {
			unexpected = append(unexpected, "anonymous_identity")
		}
		if n.EAP != "" {
			unexpected = append(unexpected, "eap")
		}
		if n.Phase2 != "" {
			unexpected = append(unexpected, "phase2")
		}
	}
	if len(unexpected) > 0 {
		return fmt.Errorf("%w: %s does not use %v", ErrUnexpectedField, scheme.Token(), unexpected)
	}
	return nil
}

// asPayload drops the typed zero value a failed Build returns, so callers
// never see a non-nil Payload alongside an error.
func asPayload(cfg wifiqr.Payload, err error) (wifiqr.Payload, error) {
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
