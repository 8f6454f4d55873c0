// Package house provides the House product assembled by the builders, together
// with the Variant that produced it and the Stage it has reached.
//
// The package includes:
//   - House: a mutable record of foundation, walls and roof plus its identity
//   - Variant: the flavour of builder responsible for a house (Standard, Luxury)
//   - Stage: how far the build sequence foundation -> walls -> roof has progressed
//
// Key rules:
//   - Fields start empty and accept any string; writing a field never fails
//   - A house remembers its variant so it can be handed back to a builder of the same kind
//   - Stage is derived from the fields, never stored independently
package house
