// Package preset resolves named layout presets for form fields. A preset
// bundles the default span, group, and format for fields whose name matches
// one of its patterns; explicit preset keys and exact name matches win over
// pattern scanning. Registries are safe for concurrent use and resolution is
// a pure function of the field and the registry contents.
package preset
