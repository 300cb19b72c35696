package requestgen

import (
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/reqline/http/method"
	"github.com/indigo-web/reqline/http/proto"
)

var segmentChars = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_.")

// Path returns an origin-form path of n random segments, segLen characters each.
// Every other segment ends with a percent-encoded space.
func Path(n, segLen int) string {
	var b strings.Builder

	for i := 0; i < n; i++ {
		b.WriteByte('/')
		b.WriteString(uniuri.NewLenChars(segLen, segmentChars))
		if i%2 == 1 {
			b.WriteString("%20")
		}
	}

	if b.Len() == 0 {
		return "/"
	}

	return b.String()
}

// Query returns n key-value pairs joined by '&'.
func Query(n int) string {
	pairs := make([]string, n)
	for i := range pairs {
		pairs[i] = "key" + strconv.Itoa(i) + "=" + uniuri.NewLenChars(8, segmentChars)
	}

	return strings.Join(pairs, "&")
}

// Generate returns a CRLF-terminated request line.
func Generate(m method.Method, target string, version proto.Version) (line []byte) {
	line = append(line, m.String()...)
	line = append(line, ' ')
	line = append(line, target...)
	line = append(line, ' ')
	line = append(line, version.String()...)

	return append(line, '\r', '\n')
}
