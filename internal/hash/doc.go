// Package hash provides checksum helpers shared across the module.
package hash
