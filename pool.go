package jtrim

import "sync"

// Buffer pools for the string escape slow path. There is deliberately no
// package-level result or path cache alongside these: a decode-result cache
// keyed on document content would be observable shared state across calls.
// A checked-out buffer here never outlives the call that checked it out,
// so pooling is purely an allocator optimisation with no observable effect.
var (
	smallStringPool = sync.Pool{
		New: func() any {
			b := make([]byte, 0, 64)
			return &b
		},
	}
	largeStringPool = sync.Pool{
		New: func() any {
			b := make([]byte, 0, 1024)
			return &b
		},
	}
)

func getStringBuf(hint int) *[]byte {
	if hint > 256 {
		return largeStringPool.Get().(*[]byte)
	}
	return smallStringPool.Get().(*[]byte)
}

func putStringBuf(buf *[]byte) {
	*buf = (*buf)[:0]
	if cap(*buf) > 256 {
		largeStringPool.Put(buf)
		return
	}
	smallStringPool.Put(buf)
}
