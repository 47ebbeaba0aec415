// Package testutil provides seeded random color, palette, and image
// generators for tests and benchmarks.
package testutil
