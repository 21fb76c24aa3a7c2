// Package openapi implements the public openapi contracts with kin-openapi:
// a loader over file, fs.FS, and HTTP sources, and a control source that
// flattens an operation's request body into layout-ready controls.
package openapi
