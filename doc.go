// Package jtrim implements a single-pass, allocation-conscious JSON decoder
// for RFC 8259 compliant UTF-8 text.
//
// It exposes two operations: Decode, which materialises an entire document
// into a tree of Value, and Get, which extracts a single sub-value addressed
// by a dotted/bracketed path, skipping everything outside that path without
// materialising it. Both share the same byte-level scanning state machines;
// Get's skip engine is a non-allocating mirror of the decoder.
//
// The package has no dependencies beyond the standard library and performs
// no I/O: callers pass a complete []byte and get back either a Value or an
// error carrying the byte offset of the first offending character.
package jtrim
