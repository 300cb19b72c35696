package proto

import (
	"strconv"

	"github.com/indigo-web/reqline/http/grammar"
	"github.com/indigo-web/reqline/http/status"
	"github.com/indigo-web/reqline/parsing"
)

type Proto uint8

const (
	Unknown Proto = 0
	HTTP10  Proto = 1 << iota
	HTTP11
	HTTP2

	HTTP1 = HTTP10 | HTTP11
)

// String returns protocol as a string
func (p Proto) String() string {
	lut := [...]string{HTTP10: "HTTP/1.0", HTTP11: "HTTP/1.1", HTTP2: "HTTP/2"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

var majorMinorVersionLUT = [10][10]Proto{
	1: {0: HTTP10, 1: HTTP11},
	2: {0: HTTP2},
}

// Version is the protocol version as written in the request line. Only single-digit
// major and minor versions are representable.
type Version struct {
	Major, Minor uint8
}

const (
	majorVersionOffset = len("HTTP/x") - 1
	minorVersionOffset = len("HTTP/x.x") - 1
)

// Parse reads the version out of a protocol token. Anything after the minor
// version digit is not consumed.
func Parse(token []byte) (Version, error) {
	var buff [4]parsing.Result
	parts := grammar.HTTPVersion.Split(buff[:0], token)
	if !parts[len(parts)-1].Found {
		return Version{}, status.ErrUnsupportedProtocol
	}

	return Version{
		Major: token[majorVersionOffset] - '0',
		Minor: token[minorVersionOffset] - '0',
	}, nil
}

// Full returns the version as a decimal number, e.g. 1.1
func (v Version) Full() float64 {
	return float64(v.Major) + float64(v.Minor)/10
}

// Proto maps the version onto a known protocol. Versions nobody speaks map onto
// Unknown.
func (v Version) Proto() Proto {
	if v.Major > 9 || v.Minor > 9 {
		return Unknown
	}

	return majorMinorVersionLUT[v.Major][v.Minor]
}

func (v Version) String() string {
	return "HTTP/" + strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
