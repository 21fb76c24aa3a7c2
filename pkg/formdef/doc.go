// Package formdef reads declarative form documents: a titled, ordered list
// of controls with raw attributes, parsed from JSON or YAML. A document can
// be turned into a static surface that stands in for a live rendering
// environment, which is how the CLI, the previews, and most tests feed the
// engine.
package formdef
