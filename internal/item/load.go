package item

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultCatalog []byte

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the decoder from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
	}
}

func Load(r io.Reader, f Format) ([]Item, error) {
	var items []Item
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&items); err != nil {
			return nil, fmt.Errorf("decode json catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&items); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", f)
	}
	return items, nil
}

func LoadFile(path string) ([]Item, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Load(fh, f)
}

// Default returns the embedded trivia catalog.
func Default() []Item {
	items, err := Load(bytes.NewReader(defaultCatalog), FormatYAML)
	if err != nil {
		panic(err)
	}
	return items
}

// OpenCatalog loads path, or the embedded catalog when path is empty.
func OpenCatalog(path string, opts ...Option) (*Catalog, error) {
	items := Default()
	if path != "" {
		var err error
		if items, err = LoadFile(path); err != nil {
			return nil, err
		}
	}
	c, err := NewCatalog(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return c, nil
}
