package jtrim

// Decode parses buf and returns the first well-formed value starting at
// byte 0 after leading whitespace. Trailing bytes are not inspected; use
// DecodeStrict to reject them.
func Decode(buf []byte) (Value, error) {
	return DecodeWithOptions(buf, defaultOptions)
}

// DecodeWithOptions is Decode with an explicit DecodeOptions.
func DecodeWithOptions(buf []byte, opts DecodeOptions) (Value, error) {
	pos := skipWhitespace(buf, 0)
	v, _, err := decodeValue(buf, pos, &opts)
	return v, err
}

// DecodeStrict is Decode, but additionally rejects any non-whitespace byte
// left over after the decoded root value.
func DecodeStrict(buf []byte) (Value, error) {
	pos := skipWhitespace(buf, 0)
	v, end, err := decodeValue(buf, pos, &defaultOptions)
	if err != nil {
		return Value{}, err
	}
	end = skipWhitespace(buf, end)
	if end != len(buf) {
		return Value{}, errInvalid(end)
	}
	return v, nil
}

// decodeValue dispatches on the next byte to the matching value parser.
func decodeValue(buf []byte, pos int, opts *DecodeOptions) (Value, int, error) {
	pos = skipWhitespace(buf, pos)
	if pos >= len(buf) {
		return Value{}, pos, errInvalid(pos)
	}
	switch buf[pos] {
	case '{':
		return decodeObject(buf, pos+1, opts)
	case '[':
		return decodeArray(buf, pos+1, opts)
	case '"':
		return decodeString(buf, pos+1, opts)
	case '-':
		return decodeNumber(buf, pos)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return decodeNumber(buf, pos)
	case 't':
		if hasLiteral(buf, pos, "true") {
			return Value{Kind: KindBool, Bool: true}, pos + 4, nil
		}
		return Value{}, pos, errInvalid(pos)
	case 'f':
		if hasLiteral(buf, pos, "false") {
			return Value{Kind: KindBool, Bool: false}, pos + 5, nil
		}
		return Value{}, pos, errInvalid(pos)
	case 'n':
		if hasLiteral(buf, pos, "null") {
			return Value{Kind: KindNull}, pos + 4, nil
		}
		return Value{}, pos, errInvalid(pos)
	default:
		return Value{}, pos, errInvalid(pos)
	}
}

func hasLiteral(buf []byte, pos int, lit string) bool {
	if pos+len(lit) > len(buf) {
		return false
	}
	return string(buf[pos:pos+len(lit)]) == lit
}
