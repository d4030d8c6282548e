package network

import (
	"errors"
	"time"

	"github.com/wifiqr/wifiqr-go/pkg/log"
	"github.com/wifiqr/wifiqr-go/pkg/wifiqr"
)

// Result is the outcome of encoding one network.
type Result struct {
	Name    string
	Scheme  string
	Payload string
	Err     error
}

// OK reports whether a payload was produced.
func (r Result) OK() bool { return r.Err == nil }

// Encoder encodes networks and records an event for each one.
type Encoder struct {
	source string
	logger log.Logger
	now    func() time.Time
}

// NewEncoder creates an Encoder. source is recorded in every event; a nil
// logger disables event logging.
func NewEncoder(source string, logger log.Logger) *Encoder {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Encoder{source: source, logger: logger, now: time.Now}
}

// EncodeNetwork builds and encodes a single network.
func (e *Encoder) EncodeNetwork(n Network) Result {
	// Unparseable schemes are recorded as written; anything else by its token.
	scheme := n.Scheme
	if s, err := wifiqr.ParseScheme(n.Scheme); err == nil {
		scheme = s.Token()
	}
	res := Result{Name: n.Label(), Scheme: scheme}

	event := log.Event{
		Timestamp: e.now(),
		Source:    e.source,
		Network:   n.Name,
		Scheme:    scheme,
	}
	if n.SSID != nil {
		event.SSID = *n.SSID
	}

	cfg, err := n.Payload()
	if err != nil {
		res.Err = err
		event.Outcome = log.OutcomeRejected
		event.Error = err.Error()
		var buildErr *wifiqr.BuildError
		if errors.As(err, &buildErr) {
			event.Missing = buildErr.MissingNames()
		}
		e.logger.Log(event)
		return res
	}

	res.Payload = cfg.Encode()
	event.Outcome = log.OutcomeEncoded
	event.PayloadLen = len(res.Payload)
	e.logger.Log(event)
	return res
}

// EncodeFile encodes every network in f, in order. A failing network does not
// stop the others.
func (e *Encoder) EncodeFile(f *File) []Result {
	results := make([]Result, 0, len(f.Networks))
	for _, n := range f.Networks {
		results = append(results, e.EncodeNetwork(n))
	}
	return results
}

// Failed returns the number of results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
