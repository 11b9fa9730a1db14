package arithmode

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arithmode/arithmode/internal/rewriter"
)

// DefaultConfigPath is where the CLI looks for settings when no path is
// given.
const DefaultConfigPath = ".arithmode.yaml"

// Config carries the CLI defaults. Flags override it field by field.
type Config struct {
	// Mode is the default policy name for one-shot rewrites.
	Mode string `yaml:"mode"`
	// Qualifier overrides the runtime package identifier in generated
	// calls.
	Qualifier string `yaml:"qualifier,omitempty"`
	// Marker is the package identifier of invocation sites the expander
	// looks for, e.g. "arith" for arith.Wrapping(...).
	Marker string `yaml:"marker,omitempty"`
	// RuntimeImport is the import path added to expanded files.
	RuntimeImport string `yaml:"runtime-import,omitempty"`
	// SaturatingShifts opts in to the experimental saturating-shift
	// capability.
	SaturatingShifts bool `yaml:"saturating-shifts"`
}

// DefaultConfig returns the settings used when no configuration file
// exists.
func DefaultConfig() Config {
	return Config{
		Mode:          rewriter.ModeWrapping.String(),
		Qualifier:     rewriter.DefaultQualifier,
		Marker:        "arith",
		RuntimeImport: "github.com/arithmode/arithmode/safemath",
	}
}

// LoadConfig reads path, falling back to defaults when path is empty and
// no default file exists.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	defer f.Close()

	config := DefaultConfig()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if _, err := rewriter.ParseMode(config.Mode); err != nil {
		return Config{}, fmt.Errorf("in %s: %w", path, err)
	}
	return config, nil
}
