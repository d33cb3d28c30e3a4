package dataset

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed states.yaml
var statesYAML []byte

// stateNames maps two-letter codes to full names. Seeded from the
// embedded table, optionally overlaid by LoadStateNames before serving
// begins.
var stateNames map[string]string

func init() {
	if err := yaml.Unmarshal(statesYAML, &stateNames); err != nil {
		panic(fmt.Sprintf("dataset: embedded states.yaml: %v", err))
	}
}

// StateName resolves a two-letter state code to its full name, falling
// back to the code itself for unknown values.
func StateName(code string) string {
	if name, ok := stateNames[code]; ok {
		return name
	}
	return code
}

// LoadStateNames overlays the embedded state table with entries from a
// YAML file of code: name pairs. Call before concurrent use.
func LoadStateNames(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read state names: %w", err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse state names %s: %w", path, err)
	}
	for code, name := range overrides {
		stateNames[code] = name
	}
	return nil
}
