// Package services contains domain services of the housebuilder system: logic
// that coordinates domain objects without belonging to any one of them.
//
// HouseDirector sequences the steps of a builders.HouseBuilder so callers get a
// complete house without knowing the order of construction.
package services
