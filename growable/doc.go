// Package growable implements an unboxed, index-addressable, growable
// sequence of one scalar kind.
//
// The capacity policy is kept apart from the storage: Grow and Shrink work on
// anything that implements Resizable, so every specialization grows and
// shrinks the same way. A Buffer is not safe for concurrent use.
package growable
