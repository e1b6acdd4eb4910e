// Package prompts provides the ordered prompt list for a session.
package prompts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default is the standard benchmark prompt set.
var Default = []string{
	"How might you use a brick and a blanket?",
	"What architectural design features should be included in a tasteful home?",
	"Propose a solution to Los Angeles traffic.",
	"What activities might I include at a party for firefighters?",
	"How could we redesign the American education system to better prepare students for the 22nd century?",
}

type promptFile struct {
	Prompts []string `yaml:"prompts"`
}

// Load returns the prompt list from a YAML file, or a copy of Default when
// path is empty. Blank entries are rejected rather than skipped: a prompt
// list is part of the benchmark definition and should not be silently edited.
func Load(path string) ([]string, error) {
	if path == "" {
		return append([]string(nil), Default...), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}
	var pf promptFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}
	if len(pf.Prompts) == 0 {
		return nil, fmt.Errorf("prompts file %s defines no prompts", path)
	}
	for i, p := range pf.Prompts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("prompts file %s: prompt %d is blank", path, i+1)
		}
	}
	return pf.Prompts, nil
}
