// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (sheet chrome, the bottom-anchored
//   overlay compositor)
//
// Not allowed here:
// - lifecycle state, snap geometry, key handling, or animation stepping
package widgets
