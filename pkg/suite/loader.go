package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite is the on-disk structure of a check suite file
// (YAML or JSON).
type Suite struct {
	// Version is the suite file format version.
	Version string `yaml:"version" json:"version"`

	// Name identifies the suite in reports.
	Name string `yaml:"name" json:"name"`

	// Checks are the check definitions to evaluate.
	Checks []Definition `yaml:"checks" json:"checks"`
}

// LoadSuiteFile reads a single suite file. The format is chosen
// by extension: .yaml/.yml via yaml.v3, .json via encoding/json.
func LoadSuiteFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read suite file %s: %w", path, err,
		)
	}

	var s Suite

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf(
				"failed to parse YAML suite %s: %w",
				path, err,
			)
		}
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf(
				"failed to parse JSON suite %s: %w",
				path, err,
			)
		}
	default:
		return nil, fmt.Errorf(
			"unsupported suite file extension: %s", path,
		)
	}

	return &s, nil
}

// LoadSuiteDir loads all .yaml/.yml/.json suite files from a
// directory. It does not recurse into subdirectories.
func LoadSuiteDir(dir string) ([]*Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	var suites []*Suite

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		s, err := LoadSuiteFile(p)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}

		suites = append(suites, s)
	}

	return suites, nil
}
