package main

import (
	"fmt"
	"strings"
)

// GenerateVocab renders Go source for every enum in the vocabulary.
// source is recorded in the generated header.
func GenerateVocab(v *RawVocab, source string) (code string, err error) {
	if err := v.Validate(); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generating %s: %v", v.Package, r)
		}
	}()

	var b strings.Builder
	renderTemplate(&b, "file", fileData{
		Source:  source,
		Package: v.Package,
		Enums:   v.Enums,
	})
	return b.String(), nil
}
