// Package geometry resolves CSS-style length expressions to pixels. Layout
// configuration may express dimensions in units like rem or ch; a Measurer
// supplies the live unit ratios of the rendering surface, and conventional
// fallback ratios keep resolution total when no measurer is available.
package geometry
