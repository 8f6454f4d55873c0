package house

// Stage reports how far a house has progressed through the build sequence.
//
// Stage transitions:
//
//	Empty ──BuildFoundation──> FoundationSet ──BuildWalls──> WallsSet ──BuildRoof──> Complete
//
// Builders never reject a step, so steps may run out of order or repeatedly.
// Stage therefore measures the longest in-order prefix of written fields: a house
// with only its roof written is still Empty.
type Stage int

const (
	// Empty means the foundation has not been written.
	Empty Stage = iota

	// FoundationSet means the foundation is written but the walls are not.
	FoundationSet

	// WallsSet means foundation and walls are written but the roof is not.
	WallsSet

	// Complete means all three fields are written.
	Complete
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Empty:         "Empty",
		FoundationSet: "FoundationSet",
		WallsSet:      "WallsSet",
		Complete:      "Complete",
	}
}

// String returns the stage name, or "Unknown" for values outside the enum.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func stageOf(foundation, walls, roof string) Stage {
	switch {
	case foundation == "":
		return Empty
	case walls == "":
		return FoundationSet
	case roof == "":
		return WallsSet
	default:
		return Complete
	}
}
