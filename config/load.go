package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Format is the encoding of a config file.
type Format int

const (
	// TOML is selected by the .toml extension.
	TOML Format = iota

	// YAML is selected by the .yaml and .yml extensions.
	YAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Load reads the file at path over Default and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode TOML: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; it means "all defaults".
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode YAML: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes c in the given format.
func Marshal(c Config, format Format) ([]byte, error) {
	switch format {
	case TOML:
		return toml.Marshal(c)
	case YAML:
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}
