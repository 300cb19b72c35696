package percent

import (
	"github.com/indigo-web/reqline/http/status"
	"github.com/indigo-web/utils/uf"
)

// View is a range of encoded bytes consumed front to back as decoded ones. It
// doesn't own the bytes: they must stay valid and unmodified while the view is
// in use.
type View struct {
	cursor Iterator
}

// MakeView returns a view over buf[first:last].
func MakeView(buf []byte, first, last int) (View, error) {
	if first < 0 || first > last || last > len(buf) {
		return View{}, status.ErrInvalidRange
	}

	return View{cursor: Iterator{buf: buf[:last], pos: first}}, nil
}

// ViewOf returns a view over the whole slice.
func ViewOf(buf []byte) View {
	return View{cursor: Iterator{buf: buf}}
}

// ViewOfString returns a view over the string without copying it.
func ViewOfString(str string) View {
	return ViewOf(uf.S2B(str))
}

func (v View) Empty() bool {
	return v.cursor.Done()
}

func (v View) CanDecode() bool {
	return v.cursor.CanDecode()
}

// Front returns the first decoded byte.
func (v View) Front() (byte, error) {
	return v.cursor.Value()
}

// Advance drops the first decoded byte. It does nothing on an empty view.
func (v *View) Advance() error {
	return v.cursor.Next()
}

// AdvanceN drops n decoded bytes.
func (v *View) AdvanceN(n int) error {
	for i := 0; i < n; i++ {
		if err := v.cursor.Next(); err != nil {
			return err
		}
	}

	return nil
}

// At returns the decoded byte at the decoded index pos.
func (v View) At(pos int) (byte, error) {
	if err := v.AdvanceN(pos); err != nil {
		return 0, err
	}

	return v.Front()
}

// Size counts the decoded bytes. It walks the whole view, so it's O(n). A
// truncated trailing escape counts as a single byte.
func (v View) Size() (n int) {
	for buf, pos := v.cursor.buf, v.cursor.pos; pos < len(buf); n++ {
		if buf[pos] == '%' {
			pos += 3
		} else {
			pos++
		}
	}

	return n
}

// Begin returns an iterator at the front of the view.
func (v View) Begin() Iterator {
	return v.cursor
}

// End returns an iterator past the last byte of the view.
func (v View) End() Iterator {
	return Iterator{buf: v.cursor.buf, pos: len(v.cursor.buf)}
}

// Raw returns the encoded bytes left in the view.
func (v View) Raw() []byte {
	return v.cursor.buf[v.cursor.pos:]
}

// AppendTo appends the decoded bytes to dst.
func (v View) AppendTo(dst []byte) ([]byte, error) {
	for !v.Empty() {
		char, err := v.Front()
		if err != nil {
			return dst, err
		}

		dst = append(dst, char)
		if err = v.Advance(); err != nil {
			return dst, err
		}
	}

	return dst, nil
}

// Bytes returns a decoded copy of the view.
func (v View) Bytes() ([]byte, error) {
	return v.AppendTo(make([]byte, 0, v.Size()))
}

// Decode returns a decoded copy of the view as a string.
func (v View) Decode() (string, error) {
	decoded, err := v.Bytes()
	return uf.B2S(decoded), err
}
