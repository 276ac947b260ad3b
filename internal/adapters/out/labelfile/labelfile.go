// Package labelfile loads goods display labels from a YAML document mapping
// kind codes to labels:
//
//	RICE: Long grain rice
//	peas: Yellow split peas
//
// Codes are matched case-insensitively. Kinds missing from the file keep
// their default label.
package labelfile

import (
	"errors"
	"fmt"
	"os"

	"granary/internal/core/domain/model/goods"

	"gopkg.in/yaml.v3"
)

// Load reads path and returns goods.DefaultLabels with the file's entries
// applied on top. An empty path yields the defaults.
func Load(path string) (goods.LabelTable, error) {
	if path == "" {
		return goods.DefaultLabels(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read goods labels: %w", err)
	}

	overrides, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse goods labels %s: %w", path, err)
	}

	return goods.DefaultLabels().Merge(overrides), nil
}

// Parse decodes a label document. Unknown codes and blank labels are all
// reported together.
func Parse(data []byte) (goods.LabelTable, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	labels := make(goods.LabelTable, len(raw))
	var problems []error
	for code, label := range raw {
		kind, err := goods.ParseKind(code)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		labels[kind] = label
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	if err := labels.Validate(); err != nil {
		return nil, err
	}

	return labels, nil
}
