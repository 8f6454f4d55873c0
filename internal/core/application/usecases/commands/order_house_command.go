package commands

import (
	"errors"

	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"
	"housebuilder/internal/pkg/guard"
)

var ErrOrderHouseCommandIsNotConstructed = errors.New(
	"OrderHouseCommand must be created via NewOrderHouseCommand constructor",
)

// OrderHouseCommand queues a house for construction. The house is stored empty
// and finished later by FinishHousesCommand.
//
// Example:
//
//	cmd, err := NewOrderHouseCommand(kernel.NewUUID(), house.Standard)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to queue house: %w", err)
//	}
type OrderHouseCommand struct { //nolint:recvcheck //using for validation
	houseID kernel.UUID
	variant house.Variant

	guard guard.ConstructorGuard
}

// NewOrderHouseCommand validates the house id and variant.
func NewOrderHouseCommand(houseID kernel.UUID, variant house.Variant) (OrderHouseCommand, error) {
	cmd := OrderHouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHouseID(houseID),
		cmd.setVariant(variant),
	); err != nil {
		return OrderHouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OrderHouseCommand) Validate() error {
	return c.guard.Validate(ErrOrderHouseCommandIsNotConstructed)
}

// HouseID returns the identifier of the queued house.
func (c OrderHouseCommand) HouseID() kernel.UUID {
	return c.houseID
}

// Variant returns the requested variant.
func (c OrderHouseCommand) Variant() house.Variant {
	return c.variant
}

func (c *OrderHouseCommand) setHouseID(houseID kernel.UUID) error {
	if err := houseID.Validate(); err != nil {
		return err
	}

	c.houseID = houseID
	return nil
}

func (c *OrderHouseCommand) setVariant(variant house.Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}

	c.variant = variant
	return nil
}
