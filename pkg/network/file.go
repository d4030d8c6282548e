package network

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/wifiqr/wifiqr-go/pkg/version"
	"gopkg.in/yaml.v3"
)

// FileVersion is the format version written by Encode.
const FileVersion = version.Current

// File errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported network file version")
	ErrUnknownFormat      = errors.New("unknown network file format")
	ErrNoNetworks         = errors.New("network file has no networks")
)

// File is a list of network descriptors.
type File struct {
	Version  string    `yaml:"version" cbor:"1,keyasint"`
	Networks []Network `yaml:"networks" cbor:"2,keyasint"`
}

// Format identifies the encoding of a network file.
type Format uint8

const (
	// FormatYAML is a YAML document.
	FormatYAML Format = iota
	// FormatCBOR is a single CBOR-encoded File.
	FormatCBOR
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// FormatFromPath selects the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Base(path))
	}
}

var (
	fileEncMode cbor.EncMode
	fileDecMode cbor.DecMode
)

func init() {
	var err error

	fileEncMode, err = cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create network CBOR encoder mode: %v", err))
	}

	fileDecMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create network CBOR decoder mode: %v", err))
	}
}

// ParseYAML parses a network file from YAML bytes.
func ParseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing network file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseCBOR parses a network file from CBOR bytes.
func ParseCBOR(data []byte) (*File, error) {
	var f File
	if err := fileDecMode.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing network file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Parse parses data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(data)
	case FormatCBOR:
		return ParseCBOR(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Load reads a network file, choosing the format by extension.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, format)
}

// EncodeCBOR encodes the file as CBOR.
func (f *File) EncodeCBOR() ([]byte, error) {
	return fileEncMode.Marshal(f)
}

// EncodeYAML encodes the file as a YAML document.
func (f *File) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(f)
}

// Encode encodes the file in the given format.
func (f *File) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return f.EncodeYAML()
	case FormatCBOR:
		return f.EncodeCBOR()
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

func (f *File) validate() error {
	if err := version.Supported(f.Version); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedVersion, err)
	}
	if len(f.Networks) == 0 {
		return ErrNoNetworks
	}
	return nil
}
