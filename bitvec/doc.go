// Package bitvec provides fixed-length bit vectors with value semantics.
//
// A Vector is backed by a packed, immutable byte string, so two Vectors
// compare equal with == exactly when they have the same length and the same
// bits. That makes Vector usable as a map key and as a state in search
// algorithms that deduplicate states by equality.
//
// Every operation returns a fresh Vector; nothing mutates in place.
package bitvec
