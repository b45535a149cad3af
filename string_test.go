package jtrim

import "testing"

func TestDecodeString_FastPath(t *testing.T) {
	v, end, err := decodeString([]byte(`"hello world"`), 1, &defaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	if v.Str != "hello world" {
		t.Fatalf("got %q", v.Str)
	}
	if end != 13 {
		t.Fatalf("end = %d, want 13", end)
	}
}

func TestDecodeString_Escapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"\""`, `"`},
		{`"\\"`, `\`},
		{`"\/"`, `/`},
		{`"\b"`, "\b"},
		{`"\f"`, "\f"},
		{`"\n"`, "\n"},
		{`"\r"`, "\r"},
		{`"\t"`, "\t"},
		{`"a\tb"`, "a\tb"},
		{`"A"`, "A"},
		{`"😀"`, "\U0001F600"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, _, err := decodeString([]byte(tt.in), 1, &defaultOptions)
			if err != nil {
				t.Fatalf("decodeString(%q) error = %v", tt.in, err)
			}
			if v.Str != tt.want {
				t.Fatalf("decodeString(%q) = %q, want %q", tt.in, v.Str, tt.want)
			}
		})
	}
}

func TestDecodeString_LoneHighSurrogate(t *testing.T) {
	v, _, err := decodeString([]byte(`"\uD83D"`), 1, &defaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	if v.Str != "?" {
		t.Fatalf("got %q, want ?", v.Str)
	}
}

func TestDecodeString_InvalidEscape(t *testing.T) {
	_, _, err := decodeString([]byte(`"\q"`), 1, &defaultOptions)
	if err == nil {
		t.Fatal("expected error for invalid escape")
	}
}

func TestDecodeString_Unterminated(t *testing.T) {
	_, _, err := decodeString([]byte(`"abc`), 1, &defaultOptions)
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestDecodeString_UTF8RunEquivalence(t *testing.T) {
	in := `"漢字テスト with \n escape and 😀 emoji"`
	byteMode, _, err := decodeString([]byte(in), 1, &DecodeOptions{StringScan: ScanByte})
	if err != nil {
		t.Fatal(err)
	}
	runMode, _, err := decodeString([]byte(in), 1, &DecodeOptions{StringScan: ScanUTF8Run})
	if err != nil {
		t.Fatal(err)
	}
	if byteMode.Str != runMode.Str {
		t.Fatalf("diverged: %q != %q", byteMode.Str, runMode.Str)
	}
}

func TestSkipString_MatchesDecodeLength(t *testing.T) {
	in := `"hello \n world"`
	_, decEnd, err := decodeString([]byte(in), 1, &defaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	skipEnd, err := skipString([]byte(in), 1)
	if err != nil {
		t.Fatal(err)
	}
	if decEnd != skipEnd {
		t.Fatalf("decode end %d != skip end %d", decEnd, skipEnd)
	}
}

func TestSkipString_EscapedQuoteKeepsStringOpen(t *testing.T) {
	in := `"a\"b"`
	end, err := skipString([]byte(in), 1)
	if err != nil {
		t.Fatal(err)
	}
	if end != len(in) {
		t.Fatalf("end = %d, want %d", end, len(in))
	}
}
