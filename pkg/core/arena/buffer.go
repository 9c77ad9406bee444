package arena

import (
	"sync"
	"unicode/utf8"
	"unsafe"
)

// Buffer is the scratch space strings are assembled in before they are
// committed to an Arena. Only one StringBuilder is live per Buffer: taking
// a new one clears the buffer and retires the previous builder.
type Buffer struct {
	buf []byte
	gen uint64
}

// NewBuffer returns a buffer with room for sizeHint bytes.
func NewBuffer(sizeHint int) *Buffer {
	return &Buffer{buf: make([]byte, 0, sizeHint)}
}

// Builder clears the buffer and returns the only valid builder for it.
// Whatever an earlier builder left behind is discarded.
func (b *Buffer) Builder() StringBuilder {
	b.buf = b.buf[:0]
	b.gen++
	return StringBuilder{buf: b, gen: b.gen}
}

// Reset clears the buffer and retires any outstanding builder
// (sync.Pool compliant).
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.gen++
}

// StringBuilder appends pieces to its Buffer. A builder that was finished,
// or whose Buffer has handed out a newer builder, ignores further writes.
type StringBuilder struct {
	buf *Buffer
	gen uint64
}

func (s *StringBuilder) live() bool {
	return s.buf != nil && s.buf.gen == s.gen
}

// PushStr appends str.
func (s *StringBuilder) PushStr(str string) {
	if s.live() {
		s.buf.buf = append(s.buf.buf, str...)
	}
}

// PushChar appends r encoded as UTF-8.
func (s *StringBuilder) PushChar(r rune) {
	if s.live() {
		s.buf.buf = utf8.AppendRune(s.buf.buf, r)
	}
}

// Len returns the number of bytes written since the builder was taken.
func (s *StringBuilder) Len() int {
	if !s.live() {
		return 0
	}
	return len(s.buf.buf)
}

// StringAllocator takes ownership of a copy of a string. *Arena satisfies it.
type StringAllocator interface {
	AllocStr(s string) string
}

// Finish copies the text into a and ends the builder. The result holds
// exactly what was written since the builder was taken.
func (s *StringBuilder) Finish(a StringAllocator) string {
	if !s.live() {
		return ""
	}
	// The view only lives until AllocStr has copied it.
	view := unsafe.String(unsafe.SliceData(s.buf.buf), len(s.buf.buf))
	out := a.AllocStr(view)
	s.buf.gen++
	s.buf = nil
	return out
}

var bufferPool = sync.Pool{
	New: func() any { return NewBuffer(64) },
}

// GetBuffer takes a cleared buffer from the shared pool.
func GetBuffer() *Buffer {
	return bufferPool.Get().(*Buffer)
}

// PutBuffer resets b and returns it to the pool.
func PutBuffer(b *Buffer) {
	b.Reset()
	bufferPool.Put(b)
}
