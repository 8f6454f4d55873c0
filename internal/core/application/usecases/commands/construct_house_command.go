package commands

import (
	"errors"

	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"
	"housebuilder/internal/pkg/guard"
)

var ErrConstructHouseCommandIsNotConstructed = errors.New(
	"ConstructHouseCommand must be created via NewConstructHouseCommand constructor",
)

// ConstructHouseCommand requests a house of a given variant to be built right
// away and stored.
//
// Example:
//
//	cmd, err := NewConstructHouseCommand(kernel.NewUUID(), house.Luxury)
//	if err != nil {
//	    return fmt.Errorf("invalid house request: %w", err)
//	}
//
//	h, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to construct house: %w", err)
//	}
//	fmt.Println(h.Description())
type ConstructHouseCommand struct { //nolint:recvcheck //using for validation
	houseID kernel.UUID
	variant house.Variant

	guard guard.ConstructorGuard
}

// NewConstructHouseCommand validates the house id and variant.
// Returns every validation failure joined into one error.
func NewConstructHouseCommand(houseID kernel.UUID, variant house.Variant) (ConstructHouseCommand, error) {
	cmd := ConstructHouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHouseID(houseID),
		cmd.setVariant(variant),
	); err != nil {
		return ConstructHouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConstructHouseCommand) Validate() error {
	return c.guard.Validate(ErrConstructHouseCommandIsNotConstructed)
}

// HouseID returns the identifier the new house will carry.
func (c ConstructHouseCommand) HouseID() kernel.UUID {
	return c.houseID
}

// Variant returns the requested variant.
func (c ConstructHouseCommand) Variant() house.Variant {
	return c.variant
}

func (c *ConstructHouseCommand) setHouseID(houseID kernel.UUID) error {
	if err := houseID.Validate(); err != nil {
		return err
	}

	c.houseID = houseID
	return nil
}

func (c *ConstructHouseCommand) setVariant(variant house.Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}

	c.variant = variant
	return nil
}
