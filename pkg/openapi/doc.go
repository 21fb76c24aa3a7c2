// Package openapi defines the contracts for deriving form controls from an
// OpenAPI document: where the document lives, how it is fetched, and how an
// operation's request body flattens into controls the layout engine can
// place. The kin-openapi backed implementation lives under internal/openapi.
package openapi
