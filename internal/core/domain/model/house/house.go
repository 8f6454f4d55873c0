package house

import (
	"errors"
	"fmt"

	"housebuilder/internal/core/domain/model/kernel"
)

// ErrHouseIsNotConstructed is returned when a House was not created through
// NewHouse or RestoreHouse.
var ErrHouseIsNotConstructed = errors.New("House must be created via NewHouse or RestoreHouse constructor")

// House is the product assembled step by step by a builder.
//
// A House is exclusively owned by the builder that assembles it. Its three
// descriptive fields start empty and are written by the build steps; setters
// accept any value, including the empty string, and never fail. Identity and
// variant are fixed at construction.
type House struct {
	// id identifies the house in storage and over the API
	id kernel.UUID

	// variant records which builder the house belongs to
	variant Variant

	foundation string
	walls      string
	roof       string

	// isConstructed ensures the house was created via a constructor
	isConstructed bool
}

// NewHouse creates an empty house of the given variant.
//
// Parameters:
//   - id: Unique identifier for the house (must be valid)
//   - variant: Standard or Luxury
//
// Returns:
//   - *House: an empty house in the Empty stage
//   - error: validation error if id or variant is invalid
//
// Example:
//
//	h, err := house.NewHouse(kernel.NewUUID(), house.Standard)
//	if err != nil {
//	    // Handle validation error
//	}
func NewHouse(id kernel.UUID, variant Variant) (*House, error) {
	h := &House{
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setVariant(variant),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHouse rebuilds a house from persisted state. Field values are taken as
// they are, empty or not.
func RestoreHouse(id kernel.UUID, variant Variant, foundation, walls, roof string) (*House, error) {
	h, err := NewHouse(id, variant)
	if err != nil {
		return nil, err
	}

	h.foundation = foundation
	h.walls = walls
	h.roof = roof
	return h, nil
}

// Validate ensures the house was created through a constructor.
func (h *House) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHouseIsNotConstructed
	}
	return nil
}

// ID returns the house identifier.
func (h *House) ID() kernel.UUID {
	return h.id
}

// Variant returns the variant the house is built as.
func (h *House) Variant() Variant {
	return h.variant
}

// Foundation returns the foundation description, empty until written.
func (h *House) Foundation() string {
	return h.foundation
}

// Walls returns the walls description, empty until written.
func (h *House) Walls() string {
	return h.walls
}

// Roof returns the roof description, empty until written.
func (h *House) Roof() string {
	return h.roof
}

// SetFoundation overwrites the foundation description.
func (h *House) SetFoundation(foundation string) {
	h.foundation = foundation
}

// SetWalls overwrites the walls description.
func (h *House) SetWalls(walls string) {
	h.walls = walls
}

// SetRoof overwrites the roof description.
func (h *House) SetRoof(roof string) {
	h.roof = roof
}

// Stage reports build progress derived from the written fields.
func (h *House) Stage() Stage {
	return stageOf(h.foundation, h.walls, h.roof)
}

// IsComplete reports whether foundation, walls and roof are all written.
func (h *House) IsComplete() bool {
	return h.Stage() == Complete
}

// Description summarises the house in a single line.
//
// Example:
//
//	fmt.Println(h.Description())
//	// Output: House with Foundation: Standard Foundation, Walls: Standard Walls, and Roof: Standard Roof
func (h *House) Description() string {
	return fmt.Sprintf("House with Foundation: %s, Walls: %s, and Roof: %s", h.foundation, h.walls, h.roof)
}

// String implements fmt.Stringer and returns Description.
func (h *House) String() string {
	return h.Description()
}

func (h *House) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *House) setVariant(variant Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}
	h.variant = variant
	return nil
}
