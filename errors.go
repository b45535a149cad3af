package jtrim

import "fmt"

// DecodeError reports malformed input. Pos is the byte offset of the first
// byte that could not be consumed in the current parser state.
type DecodeError struct {
	Pos int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jtrim: invalid character at offset %d", e.Pos)
}

// PathError reports that Get could not resolve a path against a document.
// Pos is the last byte position visited during the unsuccessful search,
// typically the closing '}' or ']' of the container that should have held
// the target.
type PathError struct {
	Pos int
}

func (e *PathError) Error() string {
	return fmt.Sprintf("jtrim: path not found at offset %d", e.Pos)
}

func errInvalid(pos int) error { return &DecodeError{Pos: pos} }

func errNotFound(pos int) error { return &PathError{Pos: pos} }
