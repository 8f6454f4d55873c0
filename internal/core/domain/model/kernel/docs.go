// Package kernel holds the shared value objects of the housebuilder domain.
//
// Currently this is UUID, the identity carried by every persisted house. Value
// objects in this package are immutable and their zero values fail validation,
// so they can be embedded in aggregates without extra nil checks.
package kernel
