package builders

import "housebuilder/internal/core/domain/model/house"

// Field values written by LuxuryHouseBuilder.
const (
	LuxuryFoundation = "Luxury Foundation with Basement"
	LuxuryWalls      = "Luxury Walls with High-Quality Materials"
	LuxuryRoof       = "Luxury Roof with Solar Panels"
)

// LuxuryHouseBuilder builds luxury houses.
type LuxuryHouseBuilder struct {
	builder
}

// NewLuxuryHouseBuilder creates a builder owning a new, empty Luxury house.
// A nil reporter discards progress notices.
func NewLuxuryHouseBuilder(reporter Reporter) *LuxuryHouseBuilder {
	return &LuxuryHouseBuilder{
		builder: newBuilder(newEmptyHouse(house.Luxury), reporter),
	}
}

// BuildFoundation writes the luxury foundation with basement.
func (b *LuxuryHouseBuilder) BuildFoundation() {
	b.house.SetFoundation(LuxuryFoundation)
	b.reporter.Report("Building luxury foundation with basement...")
}

// BuildWalls writes the luxury walls.
func (b *LuxuryHouseBuilder) BuildWalls() {
	b.house.SetWalls(LuxuryWalls)
	b.reporter.Report("Building luxury walls...")
}

// BuildRoof writes the luxury roof with solar panels.
func (b *LuxuryHouseBuilder) BuildRoof() {
	b.house.SetRoof(LuxuryRoof)
	b.reporter.Report("Building luxury roof...")
}
