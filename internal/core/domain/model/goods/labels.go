package goods

import (
	"errors"
	"fmt"
	"strings"

	"granary/internal/pkg/errs"
)

// LabelTable maps kinds to human-readable names used by storage reports.
type LabelTable map[Kind]string

// DefaultLabels returns a fresh table with English labels for every kind.
func DefaultLabels() LabelTable {
	return LabelTable{
		Buckwheat: "Buckwheat",
		Rice:      "Rice",
		Millet:    "Millet",
		Peas:      "Peas",
		Bulgur:    "Bulgur",
	}
}

// Label returns the configured label, falling back to the kind code.
func (t LabelTable) Label(kind Kind) string {
	if label, ok := t[kind]; ok && label != "" {
		return label
	}
	return kind.String()
}

// Merge returns a copy of t with the entries of overrides applied on top.
func (t LabelTable) Merge(overrides LabelTable) LabelTable {
	merged := make(LabelTable, len(t)+len(overrides))
	for kind, label := range t {
		merged[kind] = label
	}
	for kind, label := range overrides {
		merged[kind] = label
	}
	return merged
}

// Validate reports every invalid kind and blank label in the table.
func (t LabelTable) Validate() error {
	var problems []error
	for _, kind := range All() {
		label, ok := t[kind]
		if ok && strings.TrimSpace(label) == "" {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"label",
				fmt.Errorf("label for %s is blank", kind),
			))
		}
	}
	for kind := range t {
		if err := kind.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	return errors.Join(problems...)
}
