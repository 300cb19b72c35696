// Package percent exposes percent-encoded bytes as if they were already decoded,
// without decoding them into a separate buffer.
package percent

import (
	"github.com/indigo-web/reqline/http/status"
	"github.com/indigo-web/reqline/internal/hexconv"
)

// Iterator is a bidirectional cursor over encoded bytes. Each step moves over a
// single decoded byte, which is either a plain byte or a whole %XX escape. The
// length of the underlying slice is the end of the range.
type Iterator struct {
	buf []byte
	pos int
}

// MakeIterator returns an iterator positioned at pos within buf.
func MakeIterator(buf []byte, pos int) (Iterator, error) {
	if pos < 0 || pos > len(buf) {
		return Iterator{}, status.ErrInvalidRange
	}

	return Iterator{buf: buf, pos: pos}, nil
}

// Pos returns the offset of the iterator within the encoded bytes.
func (it Iterator) Pos() int {
	return it.pos
}

// Done reports whether the iterator reached the end of the range.
func (it Iterator) Done() bool {
	return it.pos >= len(it.buf)
}

// CanDecode reports whether Value would succeed as far as the length is concerned.
// Hex digits are not validated.
func (it Iterator) CanDecode() bool {
	if it.Done() {
		return false
	}

	return it.buf[it.pos] != '%' || len(it.buf)-it.pos >= 3
}

// Value returns the decoded byte at the current position.
func (it Iterator) Value() (byte, error) {
	if it.Done() {
		return 0, status.ErrInvalidRange
	}

	if it.buf[it.pos] != '%' {
		return it.buf[it.pos], nil
	}

	if len(it.buf)-it.pos < 3 {
		return 0, status.ErrIncompleteEscape
	}

	char, ok := hexconv.Decode(it.buf[it.pos+1], it.buf[it.pos+2])
	if !ok {
		return 0, status.ErrBadEscape
	}

	return char, nil
}

// Next moves over the current decoded byte. It does nothing at the end of the range.
func (it *Iterator) Next() error {
	if it.Done() {
		return nil
	}

	if it.buf[it.pos] != '%' {
		it.pos++
		return nil
	}

	if len(it.buf)-it.pos < 3 {
		return status.ErrIncompleteEscape
	}

	it.pos += 3

	return nil
}

// Prev moves back by a single decoded byte. If the byte two positions before
// the one just stepped on is '%', the iterator lands on that escape instead.
func (it *Iterator) Prev() error {
	if it.pos == 0 {
		return status.ErrInvalidRange
	}

	it.pos--
	if it.pos >= 2 && it.buf[it.pos-2] == '%' {
		it.pos -= 2
	}

	return nil
}
