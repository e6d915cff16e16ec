// Package primitives provides the serializable configuration types for
// von Mises parameter sets.
//
// A ParamSet is what the CLI and the stores in internal/production read and
// write: a named list of (location, concentration) pairs plus the evaluator
// settings they should be evaluated with. Types carry both json and yaml tags.
//
// Core invariants:
// - Validate applies the same rules as circstatx.New
// - Distribution names are unique within a set
// - ComputeVersion is deterministic for a given set
package primitives
