package colview

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidWidth      = errors.New("invalid column width")
	ErrConflictingFlags  = errors.New("conflicting table flags")
	ErrRenderInProgress  = errors.New("render already in progress")
)

// Format represents an output format.
type Format string

const (
	Human  Format = "human"
	Raw    Format = "raw"
	Export Format = "export"
	JSON   Format = "json"
	YAML   Format = "yaml"
)

var formats = []Format{Human, Raw, Export, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string, typically a CLI flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls text alignment for the table title and cell overrides.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)
