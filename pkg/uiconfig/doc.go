// Package uiconfig loads external layout configuration: grid settings,
// preset overrides, and per-group gaps, parsed from JSON or YAML documents
// on any fs.FS. The resulting store plugs into the engine as its
// configuration source; a theme-backed source can layer design-token
// overrides on top.
package uiconfig
