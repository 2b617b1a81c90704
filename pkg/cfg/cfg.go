package cfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// MaxDecimalPlacesLimit bounds MaxDecimalPlaces so that the resolved scale
// still fits in an int64 and in the exact integer range of a float64.
const MaxDecimalPlacesLimit = 15

// Config controls one path optimization run. It is passed by value and never
// modified by the optimizer.
type Config struct {
	// MaxDecimalPlaces is the largest number of fractional digits that the
	// scale resolver will preserve by rescaling coordinates.
	MaxDecimalPlaces int `toml:"maxDecimalPlaces" yaml:"maxDecimalPlaces" json:"maxDecimalPlaces"`

	// DevMode puts every command on its own line.
	DevMode bool `toml:"devmode" yaml:"devmode" json:"devmode"`

	ConvertToRelative bool `toml:"convertToRelative" yaml:"convertToRelative" json:"convertToRelative"`

	// KeepShorter keeps the absolute form of a converted command when it
	// renders shorter than the relative form.
	KeepShorter bool `toml:"keepShorter" yaml:"keepShorter" json:"keepShorter"`

	// CompactLetters omits a repeated command letter when the grammar allows it
	// and doing so saves a byte.
	CompactLetters bool `toml:"compactLetters" yaml:"compactLetters" json:"compactLetters"`

	// Lenient turns malformed operands into NaN instead of failing.
	Lenient bool `toml:"lenient" yaml:"lenient" json:"lenient"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		MaxDecimalPlaces:  2,
		ConvertToRelative: true,
		KeepShorter:       true,
		CompactLetters:    true,
	}
}

func (c Config) Validate() error {
	if c.MaxDecimalPlaces < 0 || c.MaxDecimalPlaces > MaxDecimalPlacesLimit {
		return fmt.Errorf("maxDecimalPlaces must be between 0 and %d, got %d",
			MaxDecimalPlacesLimit, c.MaxDecimalPlaces)
	}
	return nil
}

// Load reads an options file. The format is picked from the extension
// (.toml, .yaml/.yml or .json); fields missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes options in the given format over the defaults.
func Parse(data []byte, format string) (Config, error) {
	c := Default()
	var err error
	switch strings.ToLower(format) {
	case "toml":
		err = toml.Unmarshal(data, &c)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &c)
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	default:
		return Config{}, fmt.Errorf("unknown config format %q", format)
	}
	if err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}
