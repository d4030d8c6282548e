// Package interactive provides the interactive payload shell for wifiqr.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/wifiqr/wifiqr-go/pkg/network"
	"github.com/wifiqr/wifiqr-go/pkg/wifiqr"
)

// Shell edits one network draft at a time and encodes it on demand.
type Shell struct {
	rl      *readline.Instance
	out     io.Writer
	encoder *network.Encoder
	draft   network.Network
}

// New creates a shell reading from the terminal. Encoded and rejected drafts
// are reported through encoder.
func New(encoder *network.Encoder) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "wifiqr> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(rl.Stdout(), encoder)
	s.rl = rl
	return s, nil
}

func newShell(out io.Writer, encoder *network.Encoder) *Shell {
	return &Shell{
		out:     out,
		encoder: encoder,
		draft:   network.Network{Scheme: wifiqr.SchemeWPA.Token()},
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}

		if !s.Execute(line) {
			return
		}
	}
}

// Execute runs a single command line. It returns false when the shell should
// exit.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	cmd, rest, _ := strings.Cut(input, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "scheme":
		s.cmdScheme(rest)

	case "set", "s":
		s.cmdSet(rest)

	case "unset", "u":
		s.cmdUnset(rest)

	case "show":
		s.cmdShow()

	case "encode", "e":
		s.cmdEncode()

	case "reset":
		s.draft = network.Network{Scheme: s.draft.Scheme}
		fmt.Fprintln(s.out, "OK")

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
wifiqr Shell Commands:
  Draft:
    scheme [name]        - Show or select the scheme (nopass, wep, wpa, wpa2-eap)
    set <field> <value>  - Set a field
    unset <field>        - Clear a field
    show                 - Show the current draft
    reset                - Clear every field, keeping the scheme

  Output:
    encode               - Build and print the payload

  General:
    help                 - Show this help
    quit                 - Exit shell

  Fields:
    ssid, password, hidden, identity, anonymous_identity, eap, phase2
    Values may be quoted to keep leading or trailing spaces: set ssid " lab "`)
}

func (s *Shell) cmdScheme(arg string) {
	if arg == "" {
		fmt.Fprintf(s.out, "scheme: %s\n", s.draft.Scheme)
		return
	}

	scheme, err := wifiqr.ParseScheme(arg)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.draft.Scheme = scheme.Token()
	fmt.Fprintf(s.out, "scheme: %s\n", s.draft.Scheme)
}

func (s *Shell) cmdSet(args string) {
	field, value, _ := strings.Cut(args, " ")
	if field == "" {
		fmt.Fprintln(s.out, "Usage: set <field> <value>")
		fmt.Fprintln(s.out, "  Example: set ssid HomeNetwork")
		return
	}
	value = unquote(strings.TrimSpace(value))

	switch strings.ToLower(field) {
	case "ssid":
		s.draft.SSID = &value
	case "password", "pw":
		s.draft.Password = &value
	case "identity", "id":
		s.draft.Identity = &value
	case "anonymous_identity", "anon":
		s.draft.AnonymousIdentity = &value
	case "hidden":
		hidden, err := strconv.ParseBool(value)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid hidden value: %q\n", value)
			return
		}
		s.draft.Hidden = hidden
	case "eap":
		m, err := wifiqr.ParseEAPMethod(value)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		s.draft.EAP = m.Token()
	case "phase2", "ph2":
		m, err := wifiqr.ParsePhase2Method(value)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		s.draft.Phase2 = m.Token()
	default:
		fmt.Fprintf(s.out, "Unknown field: %s\n", field)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdUnset(field string) {
	switch strings.ToLower(field) {
	case "ssid":
		s.draft.SSID = nil
	case "password", "pw":
		s.draft.Password = nil
	case "identity", "id":
		s.draft.Identity = nil
	case "anonymous_identity", "anon":
		s.draft.AnonymousIdentity = nil
	case "hidden":
		s.draft.Hidden = false
	case "eap":
		s.draft.EAP = ""
	case "phase2", "ph2":
		s.draft.Phase2 = ""
	case "":
		fmt.Fprintln(s.out, "Usage: unset <field>")
		return
	default:
		fmt.Fprintf(s.out, "Unknown field: %s\n", field)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdShow() {
	fmt.Fprintf(s.out, "  scheme:             %s\n", s.draft.Scheme)
	fmt.Fprintf(s.out, "  ssid:               %s\n", show(s.draft.SSID))
	fmt.Fprintf(s.out, "  password:           %s\n", mask(s.draft.Password))
	fmt.Fprintf(s.out, "  hidden:             %t\n", s.draft.Hidden)
	if s.draft.Scheme == wifiqr.SchemeWPA2EAP.Token() {
		fmt.Fprintf(s.out, "  identity:           %s\n", show(s.draft.Identity))
		fmt.Fprintf(s.out, "  anonymous_identity: %s\n", show(s.draft.AnonymousIdentity))
		fmt.Fprintf(s.out, "  eap:                %s\n", orNone(s.draft.EAP))
		fmt.Fprintf(s.out, "  phase2:             %s\n", orNone(s.draft.Phase2))
	}
}

func (s *Shell) cmdEncode() {
	res := s.encoder.EncodeNetwork(s.draft)
	if !res.OK() {
		fmt.Fprintf(s.out, "Error: %v\n", res.Err)
		return
	}
	fmt.Fprintln(s.out, res.Payload)
}

func completer() *readline.PrefixCompleter {
	fields := []readline.PrefixCompleterInterface{
		readline.PcItem("ssid"),
		readline.PcItem("password"),
		readline.PcItem("hidden", readline.PcItem("true"), readline.PcItem("false")),
		readline.PcItem("identity"),
		readline.PcItem("anonymous_identity"),
		readline.PcItem("eap"),
		readline.PcItem("phase2"),
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("scheme",
			readline.PcItem("nopass"),
			readline.PcItem("wep"),
			readline.PcItem("wpa"),
			readline.PcItem("wpa2-eap"),
		),
		readline.PcItem("set", fields...),
		readline.PcItem("unset", fields...),
		readline.PcItem("show"),
		readline.PcItem("encode"),
		readline.PcItem("reset"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func show(s *string) string {
	if s == nil {
		return "(unset)"
	}
	return strconv.Quote(*s)
}

func mask(s *string) string {
	if s == nil {
		return "(unset)"
	}
	return strings.Repeat("*", len(*s))
}

func orNone(token string) string {
	if token == "" {
		return "NONE"
	}
	return token
}
