// Package engine hosts the layout controller: it reacts to structural and
// geometry notifications from a rendering surface, recomputes field placement
// through the preset, field, and layout packages, and writes the resulting
// snapshot back to the surface. A two-state reentrancy guard keeps the
// controller's own write-backs from feeding a recompute loop.
package engine
