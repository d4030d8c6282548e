package wifiqr

import (
	"strconv"
	"strings"
)

// Payload framing.
const (
	// Prefix starts every payload.
	Prefix = "WIFI:"

	// Terminator ends every payload, after the last field's own ';'.
	Terminator = ";"
)

func writeHeader(b *strings.Builder, s Scheme) {
	b.WriteString(Prefix)
	writeField(b, "T", s.Token())
}

// writeField appends "<tag>:<value>;". value must already be escaped.
func writeField(b *strings.Builder, tag, value string) {
	b.WriteString(tag)
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteByte(';')
}

func writeHidden(b *strings.Builder, hidden bool) {
	writeField(b, "H", strconv.FormatBool(hidden))
}

func finish(b *strings.Builder) string {
	b.WriteString(Terminator)
	return b.String()
}
