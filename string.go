package jtrim

import "unicode/utf8"

// nextStringBoundary returns the index of the next '"' or '\\' byte at or
// after pos, or len(buf) if neither occurs before the end of input. Under
// ScanUTF8Run it advances past a lead byte and the continuation bytes that
// follow it in one step instead of one byte at a time: lead and
// continuation bytes above ASCII can never equal '"' (0x22) or '\\' (0x5C),
// and only bytes in 0x80-0xBF are jumped over, so a truncated sequence
// never hides a following '"' or '\\'.
func nextStringBoundary(buf []byte, pos int, mode StringScanMode) int {
	n := len(buf)
	if mode != ScanUTF8Run {
		for pos < n {
			c := buf[pos]
			if c == '"' || c == '\\' {
				return pos
			}
			pos++
		}
		return n
	}
	for pos < n {
		c := buf[pos]
		w := 1
		switch {
		case c == '"' || c == '\\':
			return pos
		case c >= 0xC2 && c <= 0xDF:
			w = 2
		case c >= 0xE0 && c <= 0xEF:
			w = 3
		case c >= 0xF0 && c <= 0xF4:
			w = 4
		}
		pos++
		for k := 1; k < w && pos < n && buf[pos] >= 0x80 && buf[pos] <= 0xBF; k++ {
			pos++
		}
	}
	return n
}

// parseHex4 reads the 4 hex digits at buf[pos:pos+4] and returns their
// value plus the position past them.
func parseHex4(buf []byte, pos int) (int, int, error) {
	if pos+4 > len(buf) {
		return 0, len(buf), errInvalid(len(buf))
	}
	v := 0
	for i := 0; i < 4; i++ {
		c := buf[pos+i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return 0, pos + i, errInvalid(pos + i)
		}
		v = v*16 + d
	}
	return v, pos + 4, nil
}

// decodeEscape consumes one escape sequence starting at pos (the byte right
// after the '\') and appends its decoded bytes to out. A high surrogate
// not followed by a valid low surrogate is tolerated as a literal '?',
// which is the one recovery rule in the whole parser; a lone low surrogate
// is an error.
func decodeEscape(buf []byte, pos int, out []byte) ([]byte, int, error) {
	n := len(buf)
	if pos >= n {
		return out, pos, errInvalid(n)
	}
	switch buf[pos] {
	case '"', '\\', '/':
		return append(out, buf[pos]), pos + 1, nil
	case 'b':
		return append(out, 0x08), pos + 1, nil
	case 'f':
		return append(out, 0x0C), pos + 1, nil
	case 'n':
		return append(out, '\n'), pos + 1, nil
	case 'r':
		return append(out, '\r'), pos + 1, nil
	case 't':
		return append(out, '\t'), pos + 1, nil
	case 'u':
		cp, p2, err := parseHex4(buf, pos+1)
		if err != nil {
			return out, pos + 1, err
		}
		switch {
		case cp >= 0xD800 && cp <= 0xDBFF:
			if p2+1 < n && buf[p2] == '\\' && buf[p2+1] == 'u' {
				lo, p3, err2 := parseHex4(buf, p2+2)
				if err2 == nil && lo >= 0xDC00 && lo <= 0xDFFF {
					r := rune((cp-0xD800)<<10 + (lo - 0xDC00) + 0x10000)
					return utf8.AppendRune(out, r), p3, nil
				}
			}
			return append(out, '?'), p2, nil
		case cp >= 0xDC00 && cp <= 0xDFFF:
			// Lone low surrogate: not covered by the '?' tolerance.
			return out, pos + 1, errInvalid(pos + 1)
		default:
			return utf8.AppendRune(out, rune(cp)), p2, nil
		}
	default:
		return out, pos, errInvalid(pos)
	}
}

// decodeString parses a JSON string. pos is the byte right after the
// opening '"'.
func decodeString(buf []byte, pos int, opts *DecodeOptions) (Value, int, error) {
	start := pos
	n := len(buf)
	mode := ScanByte
	if opts != nil {
		mode = opts.StringScan
	}

	boundary := nextStringBoundary(buf, pos, mode)
	if boundary >= n {
		return Value{}, n, errInvalid(n)
	}
	if buf[boundary] == '"' {
		return Value{Kind: KindString, Str: bytesToString(buf[start:boundary])}, boundary + 1, nil
	}

	bufPtr := getStringBuf(n - start)
	out := append((*bufPtr)[:0], buf[start:boundary]...)
	pos = boundary

	for {
		if pos >= n {
			putStringBuf(bufPtr)
			return Value{}, n, errInvalid(n)
		}
		c := buf[pos]
		if c == '"' {
			result := string(out)
			putStringBuf(bufPtr)
			return Value{Kind: KindString, Str: result}, pos + 1, nil
		}
		if c != '\\' {
			seg := nextStringBoundary(buf, pos, mode)
			out = append(out, buf[pos:seg]...)
			pos = seg
			continue
		}
		var err error
		out, pos, err = decodeEscape(buf, pos+1, out)
		if err != nil {
			putStringBuf(bufPtr)
			return Value{}, pos, err
		}
	}
}

// skipString consumes a string without building a value. It only
// recognizes "\"" as an escape that keeps the string open; every other
// backslash-prefixed byte is counted as a single ordinary byte and the
// byte that follows it is inspected on its own terms, trading exactness
// for speed on subtrees whose content is discarded anyway.
func skipString(buf []byte, pos int) (int, error) {
	n := len(buf)
	for pos < n {
		c := buf[pos]
		if c == '"' {
			return pos + 1, nil
		}
		if c == '\\' {
			if pos+1 < n && buf[pos+1] == '"' {
				pos += 2
				continue
			}
			pos++
			continue
		}
		pos++
	}
	return n, errInvalid(n)
}
