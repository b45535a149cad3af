package jtrim

import "testing"

// TestSkipEqualsDecodePosition checks that the position returned by
// skipValue for any well-formed value equals the position returned by
// decodeValue for the same value at the same start.
func TestSkipEqualsDecodePosition(t *testing.T) {
	docs := []string{
		`{"a":1,"b":[1,2,3],"c":{"d":"e"},"f":null,"g":true,"h":-1.5e3}`,
		`[1,[2,[3,[4]]],"x",{"y":"z"},null,false]`,
		`"plain string with \n escape and é"`,
		`  -0.5e+2  `,
	}
	for _, doc := range docs {
		buf := []byte(doc)
		start := skipWhitespace(buf, 0)
		_, decEnd, err := decodeValue(buf, start, &defaultOptions)
		if err != nil {
			t.Fatalf("decodeValue(%q) error = %v", doc, err)
		}
		skipEnd, err := skipValue(buf, start)
		if err != nil {
			t.Fatalf("skipValue(%q) error = %v", doc, err)
		}
		if decEnd != skipEnd {
			t.Fatalf("%q: decode end %d != skip end %d", doc, decEnd, skipEnd)
		}
	}
}

func TestSkipValue_InvalidStart(t *testing.T) {
	_, err := skipValue([]byte("x"), 0)
	if err == nil {
		t.Fatal("expected error for invalid value start")
	}
}
