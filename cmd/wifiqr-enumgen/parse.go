package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawVocab is a vocabulary file loaded from YAML.
type RawVocab struct {
	Package string       `yaml:"package"`
	Enums   []RawEnumDef `yaml:"enums"`
}

// RawEnumDef represents one closed enumeration.
type RawEnumDef struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"` // "uint8"
	Description string         `yaml:"description"`
	Values      []RawEnumValue `yaml:"values"`
}

// RawEnumValue represents a single enum value.
type RawEnumValue struct {
	Name        string   `yaml:"name"`   // upper-case name returned by String()
	GoName      string   `yaml:"goName"` // constant suffix, derived from Name if empty
	Token       string   `yaml:"token"`  // payload token, may be empty
	Aliases     []string `yaml:"aliases"`
	Description string   `yaml:"description"`
}

// ParseVocab parses and validates a vocabulary from YAML bytes.
func ParseVocab(data []byte) (*RawVocab, error) {
	var v RawVocab
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// LoadVocab loads and parses a vocabulary file.
func LoadVocab(path string) (*RawVocab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseVocab(data)
}

// Validate checks the vocabulary for missing names and ambiguous values.
func (v *RawVocab) Validate() error {
	if v.Package == "" {
		return fmt.Errorf("vocabulary missing package")
	}
	if len(v.Enums) == 0 {
		return fmt.Errorf("vocabulary has no enums")
	}
	seen := make(map[string]bool)
	for i := range v.Enums {
		e := &v.Enums[i]
		if e.Name == "" {
			return fmt.Errorf("enum %d missing name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate enum %s", e.Name)
		}
		seen[e.Name] = true
		if e.Type == "" {
			e.Type = "uint8"
		}
		if len(e.Values) == 0 {
			return fmt.Errorf("enum %s has no values", e.Name)
		}
		if len(e.Values) > 256 && e.Type == "uint8" {
			return fmt.Errorf("enum %s has too many values for uint8", e.Name)
		}
		if err := validateValues(e); err != nil {
			return err
		}
	}
	return nil
}

func validateValues(e *RawEnumDef) error {
	names := make(map[string]bool)
	tokens := make(map[string]bool)
	keys := make(map[string]string)
	for _, val := range e.Values {
		if val.Name == "" {
			return fmt.Errorf("enum %s: value missing name", e.Name)
		}
		if names[val.Name] {
			return fmt.Errorf("enum %s: duplicate value %s", e.Name, val.Name)
		}
		names[val.Name] = true
		if tokens[val.Token] {
			return fmt.Errorf("enum %s: duplicate token %q", e.Name, val.Token)
		}
		tokens[val.Token] = true
		for _, k := range parseKeys(val) {
			if owner, ok := keys[k]; ok && owner != val.Name {
				return fmt.Errorf("enum %s: %q parses to both %s and %s", e.Name, k, owner, val.Name)
			}
			keys[k] = val.Name
		}
	}
	return nil
}

// parseKeys returns the upper-cased strings that parse to val, without duplicates.
func parseKeys(val RawEnumValue) []string {
	var keys []string
	add := func(s string) {
		s = strings.ToUpper(s)
		for _, k := range keys {
			if k == s {
				return
			}
		}
		keys = append(keys, s)
	}
	add(val.Token)
	add(val.Name)
	for _, a := range val.Aliases {
		add(a)
	}
	return keys
}
