package jtrim

import (
	"fmt"
	"strconv"
)

// PathComponent is one element of a Path: either an object key (IsKey) or
// a 1-based array index.
type PathComponent struct {
	Key   string
	Index int
	IsKey bool
}

// Path is a finite ordered sequence of path components. The empty Path
// means "decode the value at the current position".
type Path []PathComponent

// ParsePath parses both dotted ("a.b.2") and bracketed ("a.b[2]") path
// notation into a reusable Path.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return nil, nil
	}
	var comps Path
	i, n := 0, len(path)
	for i < n {
		if path[i] == '[' {
			j := i + 1
			for j < n && path[j] != ']' {
				j++
			}
			if j >= n {
				return nil, fmt.Errorf("jtrim: malformed path %q: unterminated '['", path)
			}
			idx, err := strconv.Atoi(path[i+1 : j])
			if err != nil {
				return nil, fmt.Errorf("jtrim: malformed path %q: %w", path, err)
			}
			comps = append(comps, PathComponent{Index: idx})
			i = j + 1
			if i < n && path[i] == '.' {
				i++
			}
			continue
		}

		j := i
		for j < n && path[j] != '.' && path[j] != '[' {
			j++
		}
		key := path[i:j]
		if key == "" {
			return nil, fmt.Errorf("jtrim: malformed path %q: empty component", path)
		}
		if idx, ok := parseDecimal(key); ok {
			comps = append(comps, PathComponent{Index: idx})
		} else {
			comps = append(comps, PathComponent{Key: key, IsKey: true})
		}
		i = j
		if i < n && path[i] == '.' {
			i++
		}
	}
	return comps, nil
}

func parseDecimal(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Get extracts the sub-value addressed by path from buf. It returns a
// *PathError wrapped as error when the path cannot be resolved, and a
// *DecodeError when the input is malformed at or before the point where
// the target would have been located.
func Get(path string, buf []byte) (Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Value{}, err
	}
	return GetPath(p, buf)
}

// GetString is Get for a JSON document already held as a string.
func GetString(path string, doc string) (Value, error) {
	return Get(path, stringToBytesView(doc))
}

// GetPath is Get with an already-parsed Path, avoiding repeated path-string
// parsing when the same path is applied to many documents.
func GetPath(p Path, buf []byte) (Value, error) {
	pos := skipWhitespace(buf, 0)
	return walkPath(p, buf, pos)
}

// walkPath is the path driver's top-level dispatch: an empty path switches
// to the materialising decoder; otherwise the next component's shape
// requirement (object key vs array index) is checked against the next
// non-whitespace byte before descending into the matching container
// walker. A shape mismatch (e.g. a key component over an array) resolves
// to a not-found error.
func walkPath(path Path, buf []byte, pos int) (Value, error) {
	if len(path) == 0 {
		v, _, err := decodeValue(buf, pos, &defaultOptions)
		return v, err
	}

	pos = skipWhitespace(buf, pos)
	if pos >= len(buf) {
		return Value{}, errInvalid(pos)
	}

	head := path[0]
	if head.IsKey {
		if buf[pos] != '{' {
			return Value{}, errNotFound(pos)
		}
		return walkObject(path, buf, pos+1)
	}
	if buf[pos] != '[' {
		return Value{}, errNotFound(pos)
	}
	return walkArray(path, buf, pos+1)
}

// walkObject is the object half of the path-matching walk: every key is
// decoded and compared against the path head; a match descends with the
// path tail, a mismatch skips the value and the loop moves on to the next
// key. pos is the byte right after the container's opening '{'.
func walkObject(path Path, buf []byte, pos int) (Value, error) {
	head := path[0]

	pos = skipWhitespace(buf, pos)
	if pos >= len(buf) {
		return Value{}, errInvalid(pos)
	}
	if buf[pos] == '}' {
		return Value{}, errNotFound(pos)
	}

	for {
		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) || buf[pos] != '"' {
			return Value{}, errInvalid(pos)
		}
		key, next, err := decodeString(buf, pos+1, &defaultOptions)
		if err != nil {
			return Value{}, err
		}
		pos = skipWhitespace(buf, next)
		if pos >= len(buf) || buf[pos] != ':' {
			return Value{}, errInvalid(pos)
		}
		pos = skipWhitespace(buf, pos+1)

		if key.Str == head.Key {
			return walkPath(path[1:], buf, pos)
		}

		pos, err = skipValue(buf, pos)
		if err != nil {
			return Value{}, err
		}

		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) {
			return Value{}, errInvalid(pos)
		}
		switch buf[pos] {
		case ',':
			pos++
		case '}':
			return Value{}, errNotFound(pos)
		default:
			return Value{}, errInvalid(pos)
		}
	}
}

// walkArray is the array half of the path-matching walk. pos is the byte
// right after the container's opening '['; indices are 1-based starting at
// the first element.
func walkArray(path Path, buf []byte, pos int) (Value, error) {
	head := path[0]

	pos = skipWhitespace(buf, pos)
	if pos >= len(buf) {
		return Value{}, errInvalid(pos)
	}
	if buf[pos] == ']' {
		return Value{}, errNotFound(pos)
	}

	idx := 1
	for {
		pos = skipWhitespace(buf, pos)
		if idx == head.Index {
			return walkPath(path[1:], buf, pos)
		}

		var err error
		pos, err = skipValue(buf, pos)
		if err != nil {
			return Value{}, err
		}

		pos = skipWhitespace(buf, pos)
		if pos >= len(buf) {
			return Value{}, errInvalid(pos)
		}
		switch buf[pos] {
		case ',':
			pos++
			idx++
		case ']':
			return Value{}, errNotFound(pos)
		default:
			return Value{}, errInvalid(pos)
		}
	}
}
