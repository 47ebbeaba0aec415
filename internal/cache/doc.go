// Package cache provides the sharded memoization map backing Mapper.Resolve.
// This is an internal package - external users interact with it only through
// the palettize package.
package cache
