// Package d2tdb holds build information for the d2tdb application.
package d2tdb

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
