// Package suggest implements the pure email domain suggestion model for
// mailfill.
//
// It owns domain matching (ComputeMatches, Index) and the interaction state
// machine (State). Nothing here renders or performs I/O; the autocomplete
// package drives these transitions from terminal events.
package suggest
