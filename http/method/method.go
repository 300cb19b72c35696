package method

import (
	"fmt"

	"github.com/indigo-web/reqline/http/status"
)

// Method is a closed enumeration; values outside of it must never be constructed.
type Method uint8

const (
	OPTIONS Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	TRACE
	CONNECT

	// Count is the number of known methods.
	Count = iota
)

// List contains all the supported HTTP methods, sorted by their integer value.
var List = []Method{OPTIONS, GET, HEAD, POST, PUT, DELETE, TRACE, CONNECT}

var names = [Count]string{
	OPTIONS: "OPTIONS",
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	TRACE:   "TRACE",
	CONNECT: "CONNECT",
}

// String returns the method name. Calling it on a value outside the enumeration
// is a programming error and panics.
func (m Method) String() string {
	if int(m) >= len(names) {
		panic(fmt.Sprintf("BUG: unknown method: %d", uint8(m)))
	}

	return names[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Parse recognizes a method token. The first character, case-insensitively,
// selects the candidates; the token must then equal one of them exactly.
func Parse(token string) (Method, error) {
	if len(token) == 0 {
		return 0, status.ErrMethodNotImplemented
	}

	var candidate Method

	switch token[0] &^ 0x20 {
	case 'O':
		candidate = OPTIONS
	case 'G':
		candidate = GET
	case 'H':
		candidate = HEAD
	case 'P':
		if token == "PUT" {
			return PUT, nil
		}

		candidate = POST
	case 'D':
		candidate = DELETE
	case 'T':
		candidate = TRACE
	case 'C':
		candidate = CONNECT
	default:
		return 0, status.ErrMethodNotImplemented
	}

	if token != names[candidate] {
		return 0, status.ErrMethodNotImplemented
	}

	return candidate, nil
}
