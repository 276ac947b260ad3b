package goods

import (
	"fmt"
	"strings"

	"granary/internal/pkg/errs"
)

// Kind identifies a type of stored good. Containers are keyed by Kind.
type Kind int

const (
	// Unknown is the zero value and never addresses a container.
	Unknown Kind = iota
	Buckwheat
	Rice
	Millet
	Peas
	Bulgur
)

func getKindCodes() map[Kind]string {
	return map[Kind]string{
		Buckwheat: "BUCKWHEAT",
		Rice:      "RICE",
		Millet:    "MILLET",
		Peas:      "PEAS",
		Bulgur:    "BULGUR",
	}
}

// All returns every valid kind in declaration order.
func All() []Kind {
	return []Kind{Buckwheat, Rice, Millet, Peas, Bulgur}
}

// ParseKind resolves a code such as "RICE" (case-insensitive, surrounding
// spaces ignored).
func ParseKind(code string) (Kind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for kind, c := range getKindCodes() {
		if c == normalized {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"kind is invalid",
		fmt.Errorf("%q is not a known goods kind", code),
	)
}

// Validate fails with errs.ErrValueIsInvalid for Unknown and out of range values.
func (k Kind) Validate() error {
	if _, ok := getKindCodes()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind is invalid",
			fmt.Errorf("%d is not a valid goods kind", k),
		)
	}
	return nil
}

// String returns the stable code, or "UNKNOWN" for invalid values.
func (k Kind) String() string {
	if code, ok := getKindCodes()[k]; ok {
		return code
	}
	return "UNKNOWN"
}
