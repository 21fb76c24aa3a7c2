// Package field defines the raw control and normalized descriptor types the
// layout pipeline works from, plus the extraction rules that map one to the
// other. Extraction is a pure function: the same control always yields the
// same descriptor, and nothing in this package mutates its inputs.
package field
