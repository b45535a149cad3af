package jtrim

// decodeObject parses an object's members, cycling through key, colon,
// value, and comma-or-close. pos is the byte right after the opening '{'.
func decodeObject(buf []byte, pos int, opts *DecodeOptions) (Value, int, error) {
	obj := &Object{Map: make(map[string]Value)}
	keepDup := opts != nil && opts.DuplicateKeys == KeepDuplicates

	pos = skipWhitespace(buf, pos)
	if pos >= len(buf) {
		return Value{}, pos, errInvalid(pos)
	}
	if buf[pos] == '}' {
		return Value{Kind: KindObject, Obj: obj}, pos + 1, nil
	}

	for {
		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) || buf[pos] != '"' {
			return Value{}, pos, errInvalid(pos)
		}
		keyVal, next, err := decodeString(buf, pos+1, opts)
		if err != nil {
			return Value{}, next, err
		}
		pos = skipWhitespace(buf, next)
		if pos >= len(buf) || buf[pos] != ':' {
			return Value{}, pos, errInvalid(pos)
		}
		pos = skipWhitespace(buf, pos+1)

		val, next2, err := decodeValue(buf, pos, opts)
		if err != nil {
			return Value{}, next2, err
		}
		pos = next2

		obj.Map[keyVal.Str] = val
		if keepDup {
			obj.Entries = append(obj.Entries, ObjectEntry{Key: keyVal.Str, Value: val})
		}

		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) {
			return Value{}, pos, errInvalid(pos)
		}
		switch buf[pos] {
		case ',':
			pos++
			continue
		case '}':
			return Value{Kind: KindObject, Obj: obj}, pos + 1, nil
		default:
			return Value{}, pos, errInvalid(pos)
		}
	}
}

// skipObject discards an object's members without building a value. pos is
// the byte right after the opening '{'.
func skipObject(buf []byte, pos int) (int, error) {
	pos = skipWhitespace(buf, pos)
	if pos >= len(buf) {
		return pos, errInvalid(pos)
	}
	if buf[pos] == '}' {
		return pos + 1, nil
	}

	for {
		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) || buf[pos] != '"' {
			return pos, errInvalid(pos)
		}
		var err error
		pos, err = skipString(buf, pos+1)
		if err != nil {
			return pos, err
		}
		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) || buf[pos] != ':' {
			return pos, errInvalid(pos)
		}
		pos = skipWhitespace(buf, pos+1)

		pos, err = skipValue(buf, pos)
		if err != nil {
			return pos, err
		}

		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) {
			return pos, errInvalid(pos)
		}
		switch buf[pos] {
		case ',':
			pos++
			continue
		case '}':
			return pos + 1, nil
		default:
			return pos, errInvalid(pos)
		}
	}
}
