// Command wifiqr-enumgen generates the EAP vocabulary types from YAML.
//
// Usage:
//
//	wifiqr-enumgen -vocab docs/vocab.yaml -output pkg/wifiqr/vocab_gen.go
//
// Each enum in the vocabulary becomes a uint8 type with constants, String,
// Token and a case-insensitive Parse function. The output is formatted with
// goimports.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

func main() {
	vocabPath := flag.String("vocab", "", "Path to the vocabulary YAML")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	flag.Parse()

	if *vocabPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: wifiqr-enumgen -vocab <path> -output <path>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*vocabPath, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(vocabPath, outputPath string) error {
	vocab, err := LoadVocab(vocabPath)
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}

	code, err := GenerateVocab(vocab, filepath.ToSlash(sourceName(vocabPath)))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s\n", outputPath)
	return nil
}

// sourceName strips leading "../" elements so the generated header does not
// depend on the directory go generate ran in.
func sourceName(path string) string {
	clean := filepath.Clean(path)
	for {
		rest, ok := strings.CutPrefix(clean, ".."+string(filepath.Separator))
		if !ok {
			return clean
		}
		clean = rest
	}
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
