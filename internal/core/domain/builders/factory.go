package builders

import (
	"fmt"

	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/pkg/errs"
)

// ForHouse returns a builder of the house's variant that takes ownership of h.
// It is how a house created elsewhere (a queued order, a house loaded from
// storage) gets built: the caller must not hand h to another builder.
//
// Returns an error if h was not constructed or its variant has no builder.
func ForHouse(h *house.House, reporter Reporter) (HouseBuilder, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	switch h.Variant() {
	case house.Standard:
		return &StandardHouseBuilder{builder: newBuilder(h, reporter)}, nil
	case house.Luxury:
		return &LuxuryHouseBuilder{builder: newBuilder(h, reporter)}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"variant is invalid",
			fmt.Errorf("no builder for %s houses", h.Variant()),
		)
	}
}

// New returns a fresh builder for variant. It is the single place callers that
// only know a variant at runtime (an API request, a CLI flag) pick a builder.
func New(variant house.Variant, reporter Reporter) (HouseBuilder, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	switch variant {
	case house.Luxury:
		return NewLuxuryHouseBuilder(reporter), nil
	default:
		return NewStandardHouseBuilder(reporter), nil
	}
}
