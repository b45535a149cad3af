package jtrim

import "testing"

func TestDecodeError_Error(t *testing.T) {
	err := &DecodeError{Pos: 7}
	if err.Error() == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestPathError_Error(t *testing.T) {
	err := &PathError{Pos: 3}
	if err.Error() == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestDecodeStrict_RejectsMalformed(t *testing.T) {
	tests := []string{"tru", "truee", "fals", "falsee", "nul", "nulll", "TRUE", "{", "[", `{"a"}`, `{"a":1,}`, `[1,]`}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := DecodeStrict([]byte(in)); err == nil {
				t.Fatalf("DecodeStrict(%q) expected error", in)
			}
		})
	}
}
