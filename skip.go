package jtrim

// skipValue is a mirror of decodeValue that advances pos past one JSON
// value without allocating or retaining anything. Literal tokens are
// matched in full and skipped by their fixed four/five-byte length, the
// same check decodeValue makes, so a malformed "truX" is rejected here too.
func skipValue(buf []byte, pos int) (int, error) {
	pos = skipWhitespace(buf, pos)
	if pos >= len(buf) {
		return pos, errInvalid(pos)
	}
	switch buf[pos] {
	case '{':
		return skipObject(buf, pos+1)
	case '[':
		return skipArray(buf, pos+1)
	case '"':
		return skipString(buf, pos+1)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return skipNumber(buf, pos)
	case 't':
		if hasLiteral(buf, pos, "true") {
			return pos + 4, nil
		}
		return pos, errInvalid(pos)
	case 'f':
		if hasLiteral(buf, pos, "false") {
			return pos + 5, nil
		}
		return pos, errInvalid(pos)
	case 'n':
		if hasLiteral(buf, pos, "null") {
			return pos + 4, nil
		}
		return pos, errInvalid(pos)
	default:
		return pos, errInvalid(pos)
	}
}
