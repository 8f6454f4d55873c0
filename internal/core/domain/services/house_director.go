package services

import "housebuilder/internal/core/domain/builders"

// HouseDirector is a domain service that runs the build steps of a builder in
// the fixed order foundation, walls, roof.
//
// The director holds a reference to the builder but does not own it, nor the
// house it produces: callers read the finished house from the builder.
//
// Example usage:
//
//	b := builders.NewStandardHouseBuilder(builders.NewWriterReporter(os.Stdout))
//	director := NewHouseDirector(b)
//	director.ConstructHouse()
//	fmt.Println(b.House().Description())
type HouseDirector struct {
	steps builders.ConstructionSteps
}

// NewHouseDirector creates a director driving steps.
//
// Parameters:
//   - steps: the builder whose steps are sequenced
//
// Returns:
//   - HouseDirector: ready to construct houses
func NewHouseDirector(steps builders.ConstructionSteps) HouseDirector {
	return HouseDirector{steps: steps}
}

// ConstructHouse calls BuildFoundation, BuildWalls and BuildRoof on the builder,
// in that order and unconditionally. Calling it again rebuilds every field.
func (d HouseDirector) ConstructHouse() {
	d.steps.BuildFoundation()
	d.steps.BuildWalls()
	d.steps.BuildRoof()
}
