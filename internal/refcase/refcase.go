// Package refcase loads reference luminance and contrast cases from TOML,
// YAML or JSON fixtures.
package refcase

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Case struct {
	Name string   `toml:"name" yaml:"name" json:"name"`
	A    [3]uint8 `toml:"a" yaml:"a" json:"a"`
	B    [3]uint8 `toml:"b" yaml:"b" json:"b"`
	// Contrast is the expected ratio between A and B. Zero means unchecked.
	Contrast float64 `toml:"contrast" yaml:"contrast" json:"contrast"`
	// LuminanceA is the expected luminance of A. Nil means unchecked.
	LuminanceA *float64 `toml:"luminance_a" yaml:"luminance_a" json:"luminance_a"`
	MinRatio   float64  `toml:"min_ratio" yaml:"min_ratio" json:"min_ratio"`
	Pass       *bool    `toml:"pass" yaml:"pass" json:"pass"`
}

type Set struct {
	Precision string `toml:"precision" yaml:"precision" json:"precision"`
	Cases     []Case `toml:"case" yaml:"case" json:"case"`
}

func Load(path string) (Set, error) {
	var set Set
	path = strings.TrimSpace(path)
	if path == "" {
		return set, errors.New("empty fixture path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return set, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &set); decodeErr != nil {
			return set, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &set); decodeErr != nil {
			return set, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &set); decodeErr != nil {
			return set, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return set, fmt.Errorf("unsupported fixture extension: %s", ext)
	}
	if err := validate(set); err != nil {
		return set, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

func validate(set Set) error {
	switch set.Precision {
	case "", "float32", "float64":
	default:
		return fmt.Errorf("unsupported precision: %q", set.Precision)
	}
	if len(set.Cases) == 0 {
		return errors.New("no cases")
	}
	seen := make(map[string]struct{}, len(set.Cases))
	for i, c := range set.Cases {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("case %d: missing name", i)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("case %d: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Contrast != 0 && (c.Contrast < 1 || c.Contrast > 21) {
			return fmt.Errorf("case %q: contrast %v outside [1,21]", c.Name, c.Contrast)
		}
		if c.Pass != nil && c.MinRatio <= 0 {
			return fmt.Errorf("case %q: pass requires min_ratio", c.Name)
		}
	}
	return nil
}
