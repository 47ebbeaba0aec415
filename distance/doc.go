// Package distance exposes the float32 vector operations used by the
// nearest-palette resolver: squared L2 distance for candidate ranking and
// L2 normalization helpers for converters that need unit-length output.
//
// Squared distance is used instead of true Euclidean distance so the hot
// path never pays for a square root; ordering is unaffected.
package distance
