package builders

import (
	"fmt"

	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"
)

// ConstructionSteps is the part of a builder a director needs: the three build
// steps. Each step writes exactly one field of the owned house.
type ConstructionSteps interface {
	BuildFoundation()
	BuildWalls()
	BuildRoof()
}

// HouseBuilder assembles a house step by step and gives access to it.
//
// House may be called at any time. Before all steps have run it returns a
// partially or completely empty house; that is not an error.
type HouseBuilder interface {
	ConstructionSteps
	House() *house.House
}

var (
	_ HouseBuilder = (*StandardHouseBuilder)(nil)
	_ HouseBuilder = (*LuxuryHouseBuilder)(nil)
)

// builder holds what every variant shares: the owned house and the reporter.
type builder struct {
	house    *house.House
	reporter Reporter
}

func newBuilder(h *house.House, reporter Reporter) builder {
	if reporter == nil {
		reporter = Discard
	}
	return builder{
		house:    h,
		reporter: reporter,
	}
}

// House returns the owned house by reference.
func (b *builder) House() *house.House {
	return b.house
}

// newEmptyHouse creates the house a fresh builder owns. A generated id and a
// constant variant cannot fail validation.
func newEmptyHouse(variant house.Variant) *house.House {
	h, err := house.NewHouse(kernel.NewUUID(), variant)
	if err != nil {
		panic(fmt.Sprintf("builders: creating %s house: %v", variant, err))
	}
	return h
}
