package http

import (
	"github.com/indigo-web/reqline/http/method"
	"github.com/indigo-web/reqline/http/proto"
	"github.com/indigo-web/reqline/http/uri"
)

// Request is a decomposed request line. Just like uri.URI, it refers to the buffer
// it was parsed from.
type Request struct {
	Method  method.Method
	URI     uri.URI
	Version proto.Version
}

// Clone returns a copy of the request that doesn't refer to the parsed buffer anymore.
func (r Request) Clone() Request {
	return Request{
		Method:  r.Method,
		URI:     r.URI.Clone(),
		Version: r.Version,
	}
}
