package wifiqr

import "strings"

// escaper replaces the reserved payload characters. Pairs are applied in a
// single pass, so a backslash introduced by one replacement is never escaped
// again by another.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
)

// Escape prefixes every `\`, `"`, `;`, `,` and `:` in s with a backslash.
// All other characters are left unchanged.
func Escape(s string) string {
	return escaper.Replace(s)
}
