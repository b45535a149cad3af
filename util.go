package jtrim

import "unsafe"

// bytesToString borrows b's backing array as a string without copying.
// Callers must not mutate b afterward; this backs the string fast path's
// subslice-of-the-input behaviour.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringToBytesView borrows s's bytes read-only. The parser never writes
// through a buffer obtained this way.
func stringToBytesView(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipWhitespace(buf []byte, pos int) int {
	for pos < len(buf) && isWhitespace(buf[pos]) {
		pos++
	}
	return pos
}
