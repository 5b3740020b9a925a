// Package registry provides the ordered store of interception rules.
//
// Rules are stored under their derived Key and enumerated in
// first-insertion order, which is the precedence order the dispatcher
// scans in. Re-registering a rule under an existing key replaces the
// handler but keeps the slot's original position, so precedence never
// moves on overwrite.
//
// The store is safe for concurrent use and offers no snapshot
// isolation: enumeration via the cursor always observes the latest
// state, so rules added or removed during an in-flight dispatch are
// visible to every step that has not yet run.
package registry
