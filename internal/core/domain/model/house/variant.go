package house

import (
	"fmt"
	"strings"

	"housebuilder/internal/pkg/errs"
)

// Variant names the concrete builder that produces a house.
type Variant int

const (
	// UnknownVariant is the zero value and is never a valid variant.
	UnknownVariant Variant = iota

	// Standard houses are built by the standard builder.
	Standard

	// Luxury houses are built by the luxury builder.
	Luxury
)

func getVariantStrings() map[Variant]string {
	return map[Variant]string{
		UnknownVariant: "Unknown",
		Standard:       "Standard",
		Luxury:         "Luxury",
	}
}

// Variants returns every valid variant in declaration order.
func Variants() []Variant {
	return []Variant{Standard, Luxury}
}

// ParseVariant resolves a variant from its name, ignoring case.
//
// Example:
//
//	v, err := house.ParseVariant("luxury") // house.Luxury
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if strings.EqualFold(strings.TrimSpace(s), v.String()) {
			return v, nil
		}
	}
	return UnknownVariant, errs.NewValueIsInvalidErrorWithCause(
		"variant is invalid",
		fmt.Errorf("%q is not a known variant", s),
	)
}

// Validate checks that the variant is Standard or Luxury.
func (v Variant) Validate() error {
	if v != Standard && v != Luxury {
		return errs.NewValueIsInvalidErrorWithCause(
			"variant is invalid",
			fmt.Errorf("%d is not a valid variant", v),
		)
	}
	return nil
}

// String returns "Standard", "Luxury", or "Unknown" for anything else.
func (v Variant) String() string {
	if str, ok := getVariantStrings()[v]; ok {
		return str
	}
	return "Unknown"
}
