// Package builders implements the construction side of the Builder pattern for
// houses: the HouseBuilder capability set and its Standard and Luxury variants.
//
// Each builder exclusively owns one house from construction onwards. A build
// step writes one field of that house and emits a progress notice through a
// Reporter. Steps never fail and are not ordered: calling them out of order or
// repeatedly simply overwrites the targeted field.
//
// Typical usage pairs a builder with services.HouseDirector:
//
//	b := builders.NewLuxuryHouseBuilder(builders.NewWriterReporter(os.Stdout))
//	services.NewHouseDirector(b).ConstructHouse()
//	fmt.Println(b.House())
package builders
