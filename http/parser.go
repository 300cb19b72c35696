package http

import (
	"github.com/indigo-web/reqline/config"
	"github.com/indigo-web/reqline/http/method"
	"github.com/indigo-web/reqline/http/proto"
	"github.com/indigo-web/reqline/http/status"
	"github.com/indigo-web/reqline/http/uri"
	"github.com/indigo-web/utils/uf"
)

// Parser turns request lines shaped as "<METHOD> <URI> <HTTP-VERSION>" into requests.
// It keeps no state between calls, so a single instance may be shared.
type Parser struct {
	cfg *config.Config
}

// NewParser returns a parser using the config. Nil config means config.Default().
func NewParser(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Parser{cfg: cfg}
}

// MaxLineLength is the longest line Parse accepts, line terminator excluded.
func (p *Parser) MaxLineLength() int {
	return p.cfg.RequestLine.MaxLength
}

var defaultParser = NewParser(nil)

// ParseRequest parses the line with the default config.
func ParseRequest(line []byte) (Request, error) {
	return defaultParser.Parse(line)
}

// Parse parses a single request line. A trailing CRLF, LF or CR is tolerated. The three
// tokens must be separated by exactly one whitespace character each.
//
// The returned request refers to the line, so the line must outlive it.
func (p *Parser) Parse(line []byte) (request Request, err error) {
	line = trimEOL(line)
	if len(line) > p.cfg.RequestLine.MaxLength {
		return request, status.ErrRequestLineTooLong
	}

	methodToken, target, protoToken, ok := split(line)
	if !ok {
		return request, status.ErrBadRequestLine
	}

	if request.Method, err = method.Parse(uf.B2S(methodToken)); err != nil {
		return request, err
	}

	if request.URI, err = uri.ParseWith(target, p.cfg.URI); err != nil {
		return request, err
	}

	request.Version, err = proto.Parse(protoToken)

	return request, err
}

func trimEOL(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}

	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return line
}

func split(line []byte) (methodToken, target, protoToken []byte, ok bool) {
	sp := indexSpace(line)
	if sp <= 0 {
		return nil, nil, nil, false
	}

	methodToken, line = line[:sp], line[sp+1:]
	sp = indexSpace(line)
	if sp <= 0 {
		return nil, nil, nil, false
	}

	target, protoToken = line[:sp], line[sp+1:]
	if len(protoToken) == 0 || indexSpace(protoToken) != -1 {
		return nil, nil, nil, false
	}

	return methodToken, target, protoToken, true
}

func indexSpace(b []byte) int {
	for i, c := range b {
		switch c {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			return i
		}
	}

	return -1
}
