package builders

import "housebuilder/internal/core/domain/model/house"

// Field values written by StandardHouseBuilder.
const (
	StandardFoundation = "Standard Foundation"
	StandardWalls      = "Standard Walls"
	StandardRoof       = "Standard Roof"
)

// StandardHouseBuilder builds standard houses.
type StandardHouseBuilder struct {
	builder
}

// NewStandardHouseBuilder creates a builder owning a new, empty Standard house.
// A nil reporter discards progress notices.
func NewStandardHouseBuilder(reporter Reporter) *StandardHouseBuilder {
	return &StandardHouseBuilder{
		builder: newBuilder(newEmptyHouse(house.Standard), reporter),
	}
}

// BuildFoundation writes the standard foundation.
func (b *StandardHouseBuilder) BuildFoundation() {
	b.house.SetFoundation(StandardFoundation)
	b.reporter.Report("Building standard foundation...")
}

// BuildWalls writes the standard walls.
func (b *StandardHouseBuilder) BuildWalls() {
	b.house.SetWalls(StandardWalls)
	b.reporter.Report("Building standard walls...")
}

// BuildRoof writes the standard roof.
func (b *StandardHouseBuilder) BuildRoof() {
	b.house.SetRoof(StandardRoof)
	b.reporter.Report("Building standard roof...")
}
