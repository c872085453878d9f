package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// Format of a bookmark document on disk
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension, defaulting to YAML
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadFile reads a bookmark document from disk
func LoadFile(path string) (bookmark.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return bookmark.Document{}, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, FormatFor(path))
	if err != nil {
		return bookmark.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return doc, nil
}

// Decode reads one document. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (bookmark.Document, error) {
	var doc bookmark.Document

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return bookmark.Document{}, fmt.Errorf("invalid json document: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return bookmark.Document{}, fmt.Errorf("empty yaml document")
			}
			return bookmark.Document{}, fmt.Errorf("invalid yaml document: %w", err)
		}
	default:
		return bookmark.Document{}, fmt.Errorf("unsupported document format: %s", format)
	}

	return doc, nil
}

// Encode writes one document in the given format
func Encode(w io.Writer, doc bookmark.Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unsupported document format: %s", format)
	}
}
