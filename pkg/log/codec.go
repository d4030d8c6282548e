package log

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Events are stored as a plain sequence of CBOR maps, one per event, so a
// file can be appended to by independent processes and read as a stream.
var (
	eventEnc = mustEncMode(cbor.EncOptions{
		Sort:        cbor.SortCoreDeterministic,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	})
	eventDec = mustDecMode(cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	m, err := opts.EncMode()
	if err != nil {
		panic("log: cbor encoder options: " + err.Error())
	}
	return m
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	m, err := opts.DecMode()
	if err != nil {
		panic("log: cbor decoder options: " + err.Error())
	}
	return m
}

// EncodeEvent returns the CBOR form of a single event.
func EncodeEvent(e Event) ([]byte, error) { return eventEnc.Marshal(e) }

// DecodeEvent parses one CBOR-encoded event.
func DecodeEvent(data []byte) (e Event, err error) {
	err = eventDec.Unmarshal(data, &e)
	return e, err
}

// NewEncoder returns a stream encoder writing events to w.
func NewEncoder(w io.Writer) *cbor.Encoder { return eventEnc.NewEncoder(w) }

// NewDecoder returns a stream decoder reading events from r.
func NewDecoder(r io.Reader) *cbor.Decoder { return eventDec.NewDecoder(r) }
