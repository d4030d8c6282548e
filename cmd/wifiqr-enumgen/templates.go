package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"constName":  constName,
	"hexByte":    func(v int) string { return fmt.Sprintf("0x%02X", v) },
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
	"quoteKeys":  quoteKeys,
	"recv":       func(name string) string { return strings.ToLower(name[:1]) },
	"firstValue": func(e RawEnumDef) RawEnumValue { return e.Values[0] },
}

// templates holds the parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	fileTmpl + enumTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// fileData holds data for the file template.
type fileData struct {
	Source  string
	Package string
	Enums   []RawEnumDef
}

const fileTmpl = `{{define "file"}}// Code generated by wifiqr-enumgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
"errors"
"fmt"
"strings"
)
{{range .Enums}}{{template "enum" .}}{{end}}
{{- end}}`

const enumTmpl = `{{define "enum"}}
// {{.Name}} represents {{.Description}}.
type {{.Name}} {{.Type}}

const (
{{- range $i, $v := .Values}}
// {{constName $.Name $v}} indicates {{$v.Description}}.
{{constName $.Name $v}} {{$.Name}} = {{hexByte $i}}
{{end -}}
)

// ErrUnknown{{.Name}} is returned by Parse{{.Name}} for unrecognized input.
var ErrUnknown{{.Name}} = errors.New("unknown {{.Name}}")

// String returns the value name.
func ({{recv .Name}} {{.Name}}) String() string {
switch {{recv .Name}} {
{{- range .Values}}
case {{constName $.Name .}}:
return {{quote .Name}}
{{- end}}
default:
return "UNKNOWN"
}
}

// Token returns the payload token. It is empty for {{constName .Name (firstValue .)}}.
func ({{recv .Name}} {{.Name}}) Token() string {
switch {{recv .Name}} {
{{- range .Values}}
{{- if .Token}}
case {{constName $.Name .}}:
return {{quote .Token}}
{{- end}}
{{- end}}
default:
return ""
}
}

// Parse{{.Name}} parses a token or name, ignoring case.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
switch strings.ToUpper(strings.TrimSpace(s)) {
{{- range .Values}}
case {{quoteKeys .}}:
return {{constName $.Name .}}, nil
{{- end}}
}
return 0, fmt.Errorf("%w: %q", ErrUnknown{{.Name}}, s)
}
{{end}}`

// constName returns the Go constant for a value, e.g. EAPMethodAKAPrime.
func constName(typeName string, v RawEnumValue) string {
	if v.GoName != "" {
		return typeName + v.GoName
	}
	return typeName + enumValueSuffix(v.Name)
}

// enumValueSuffix converts "SHUTTING_DOWN" to "ShuttingDown".
func enumValueSuffix(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

func quoteKeys(v RawEnumValue) string {
	keys := parseKeys(v)
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(quoted, ", ")
}
