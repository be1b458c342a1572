//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names --values
package config

import (
	"fmt"
	"strings"
)

const maxTextSourceDisplayLen = 12

// BytesSourceType supported BytesSource types. ENUM(
// text=1 // Inline YAML block.
// file   // Local file.
// )
type BytesSourceType uint16

// BytesSource is where a corpus is read from
type BytesSource struct {
	Type BytesSourceType
	From string
}

// TextBytesSource creates a source holding the passed lines
func TextBytesSource(lines ...string) BytesSource {
	return BytesSource{Type: BytesSourceTypeText, From: strings.Join(lines, "\n")}
}

// IsEmpty returns true if the source was not configured
func (s BytesSource) IsEmpty() bool {
	return s.From == ""
}

func (s BytesSource) String() string {
	switch s.Type {
	case BytesSourceTypeText:
		break

	case BytesSourceTypeFile:
		return fmt.Sprintf("file://%s", s.From)

	default:
		return fmt.Sprintf("unknown source (%s: %s)", s.Type, s.From)
	}

	text := s.From
	truncated := false

	if idx := strings.IndexRune(text, '\n'); idx != -1 {
		truncated = idx < len(text)-1 // don't count removing last char
		text = text[:idx]              // first line only
	}

	if len(text) > maxTextSourceDisplayLen { // truncate
		text = text[:maxTextSourceDisplayLen]
		truncated = true
	}

	if truncated {
		return fmt.Sprintf("%s...", text)
	}

	return text
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
func (s *BytesSource) UnmarshalText(data []byte) error {
	source := string(data)

	switch {
	// Inline definition in YAML (with literal style Block Scalar)
	case strings.ContainsAny(source, "\n"):
		*s = BytesSource{Type: BytesSourceTypeText, From: source}

	// corpora are static snapshots, they are never downloaded
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return fmt.Errorf("remote source '%s' is not supported, please download it to a local file", source)

	// Probably path to a local file
	default:
		*s = BytesSource{Type: BytesSourceTypeFile, From: strings.TrimPrefix(source, "file://")}
	}

	return nil
}
