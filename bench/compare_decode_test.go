package bench

import (
	"encoding/json"
	"testing"

	"github.com/dhawalhost/jtrim"
	"github.com/valyala/fastjson"
)

var usersDoc = GenerateUsers(2000)

func BenchmarkDecode_Jtrim(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(usersDoc)))
	for i := 0; i < b.N; i++ {
		if _, err := jtrim.Decode(usersDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_FastJSON(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(usersDoc)))
	var p fastjson.Parser
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseBytes(usersDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_EncodingJSON(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(usersDoc)))
	for i := 0; i < b.N; i++ {
		var v any
		if err := json.Unmarshal(usersDoc, &v); err != nil {
			b.Fatal(err)
		}
	}
}
