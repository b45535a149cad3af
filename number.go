package jtrim

import (
	"errors"
	"strconv"
)

// isRangeErr reports whether err is strconv's out-of-range error, which
// strconv.ParseFloat still returns alongside a correctly rounded ±Inf or
// near-zero result: that is a valid decode, not a malformed document.
func isRangeErr(err error) bool {
	var ne *strconv.NumError
	return errors.As(err, &ne) && ne.Err == strconv.ErrRange
}

// decodeNumber scans a JSON number starting at pos (which may be '-')
// through its integer, fractional, and exponent parts. It returns the
// decoded Value and the position of the first byte not consumed by the
// number; the terminator byte itself is left unconsumed.
func decodeNumber(buf []byte, pos int) (Value, int, error) {
	start := pos
	n := len(buf)
	isFloat := false

	if pos < n && buf[pos] == '-' {
		pos++
	}
	if pos >= n {
		return Value{}, pos, errInvalid(pos)
	}

	switch {
	case buf[pos] == '0':
		pos++
		if pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
			return Value{}, pos, errInvalid(pos)
		}
	case buf[pos] >= '1' && buf[pos] <= '9':
		pos++
		for pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
			pos++
		}
	default:
		return Value{}, pos, errInvalid(pos)
	}

	if pos < n && buf[pos] == '.' {
		isFloat = true
		pos++
		digitStart := pos
		for pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
			pos++
		}
		if pos == digitStart {
			return Value{}, pos, errInvalid(pos)
		}
	}

	if pos < n && (buf[pos] == 'e' || buf[pos] == 'E') {
		isFloat = true
		pos++
		if pos < n && (buf[pos] == '+' || buf[pos] == '-') {
			pos++
		}
		digitStart := pos
		for pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
			pos++
		}
		if pos == digitStart {
			return Value{}, pos, errInvalid(pos)
		}
	}

	lit := bytesToString(buf[start:pos])
	if !isFloat {
		i, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			// Out of int64 range: fall back to the platform's float parse.
			f, ferr := strconv.ParseFloat(lit, 64)
			if ferr != nil && !isRangeErr(ferr) {
				return Value{}, start, errInvalid(start)
			}
			return Value{Kind: KindFloat, Float: f}, pos, nil
		}
		return Value{Kind: KindInteger, Int: i}, pos, nil
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !isRangeErr(err) {
		return Value{}, start, errInvalid(start)
	}
	return Value{Kind: KindFloat, Float: f}, pos, nil
}

// skipNumber discards the accumulated digits and returns only the new
// position, sharing decodeNumber's state transitions.
func skipNumber(buf []byte, pos int) (int, error) {
	n := len(buf)

	if pos < n && buf[pos] == '-' {
		pos++
	}
	if pos >= n {
		return pos, errInvalid(pos)
	}

	switch {
	case buf[pos] == '0':
		pos++
		if pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
			return pos, errInvalid(pos)
		}
	case buf[pos] >= '1' && buf[pos] <= '9':
		pos++
		for pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
			pos++
		}
	default:
		return pos, errInvalid(pos)
	}

	if pos < n && buf[pos] == '.' {
		pos++
		digitStart := pos
		for pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
			pos++
		}
		if pos == digitStart {
			return pos, errInvalid(pos)
		}
	}

	if pos < n && (buf[pos] == 'e' || buf[pos] == 'E') {
		pos++
		if pos < n && (buf[pos] == '+' || buf[pos] == '-') {
			pos++
		}
		digitStart := pos
		for pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
			pos++
		}
		if pos == digitStart {
			return pos, errInvalid(pos)
		}
	}

	return pos, nil
}
