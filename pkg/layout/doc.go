// Package layout holds the pure placement math of the engine: per-pass
// configuration resolution, desired-span precedence, live column computation,
// group-gap annotation, and the snapshot types the engine publishes. Nothing
// in this package keeps state between calls; each function is deterministic
// in its inputs.
package layout
