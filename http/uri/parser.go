package uri

import (
	"bytes"

	"github.com/indigo-web/reqline/config"
	"github.com/indigo-web/reqline/http/grammar"
	"github.com/indigo-web/reqline/http/status"
	"github.com/indigo-web/reqline/parsing"
	"github.com/indigo-web/utils/uf"
)

// Parse decomposes the request target using the default config. See ParseWith.
func Parse(raw []byte) (URI, error) {
	return ParseWith(raw, config.Default().URI)
}

// ParseWith decomposes the request target. Returned strings are views of raw, nothing
// is copied.
//
// The host is only parsed if a scheme was found, so a schemeless target is always
// taken as a path optionally followed by a query and a fragment.
func ParseWith(raw []byte, cfg config.URI) (uri URI, err error) {
	uri.Port = cfg.DefaultPort

	if len(raw) == 1 && raw[0] == '*' {
		// asterisk-form, e.g. OPTIONS * HTTP/1.1
		uri.Path = uf.B2S(raw)
		return uri, nil
	}

	var buff [4]parsing.Result
	rest := raw

	parts := grammar.Scheme.Split(buff[:0], rest)
	hasScheme := parts[1].Found
	if hasScheme {
		uri.Scheme = uf.B2S(parts[0].Of(rest))
		rest = rest[parts[1].End:]
	} else if looksLikeScheme(rest) {
		return uri, status.ErrBadScheme
	}

	uri.Auth, rest, err = parseAuth(rest)
	if err != nil {
		return uri, err
	}

	if hasScheme {
		parts = grammar.Host.Split(buff[:0], rest)
		if !parts[0].Found {
			return uri, status.ErrBadHost
		}

		uri.Host = uf.B2S(parts[0].Of(rest))
		rest = rest[parts[0].End:]
	}

	if hasScheme || (len(rest) > 0 && rest[0] == ':') {
		uri.Port, rest, err = parsePortInfo(rest, cfg.DefaultPort)
		if err != nil {
			return uri, err
		}
	}

	parts = grammar.Path.Split(buff[:0], rest)
	uri.Path = uf.B2S(parts[0].Of(rest))
	rest = rest[parts[0].End:]

	if len(rest) > 0 && rest[0] == '?' {
		rest = rest[1:]
		end := bytes.IndexByte(rest, '#')
		if end == -1 {
			end = len(rest)
		}

		uri.Query = uf.B2S(rest[:end])
		rest = rest[end:]
	}

	if len(rest) > 0 {
		if rest[0] != '#' {
			return uri, status.ErrBadPath
		}

		uri.Fragment = uf.B2S(rest[1:])
	}

	if cfg.Strict && !conforms(raw, hasScheme) {
		return uri, status.ErrBadRequestTarget
	}

	return uri, nil
}

// looksLikeScheme reports whether the target carries a scheme delimiter before its
// path, but the scheme didn't match the grammar.
func looksLikeScheme(rest []byte) bool {
	delim := bytes.Index(rest, []byte("://"))
	if delim == -1 {
		return false
	}

	slash := bytes.IndexByte(rest, '/')
	return slash == delim+1
}

// parseAuth takes the userinfo off if there's an '@' before the path begins. The
// userinfo is split at the first colon.
func parseAuth(rest []byte) (auth Auth, tail []byte, err error) {
	boundary := bytes.IndexByte(rest, '/')
	if boundary == -1 {
		boundary = len(rest)
	}

	at := bytes.IndexByte(rest[:boundary], '@')
	if at == -1 {
		return auth, rest, nil
	}

	username, password := rest[:at], []byte(nil)
	if colon := bytes.IndexByte(username, ':'); colon != -1 {
		username, password = username[:colon], username[colon+1:]
		if !grammar.Full(grammar.Password, password) {
			return auth, nil, status.ErrBadAuth
		}
	}

	if !grammar.Full(grammar.Username, username) {
		return auth, nil, status.ErrBadAuth
	}

	auth.Username, auth.Password = uf.B2S(username), uf.B2S(password)

	return auth, rest[at+1:], nil
}

// parsePortInfo returns the default port if the path, query or fragment begins right
// away. Otherwise, the port runs up to any of them.
func parsePortInfo(rest []byte, defaultPort uint16) (port uint16, tail []byte, err error) {
	if len(rest) == 0 {
		return defaultPort, rest, nil
	}

	switch rest[0] {
	case '/', '?', '#':
		return defaultPort, rest, nil
	case ':':
	default:
		return 0, nil, status.ErrBadHost
	}

	end := indexDelimiter(rest)
	region := rest[:end]
	if bytes.IndexByte(region[1:], ':') != -1 {
		// host:port:port, we can't tell which one is meant
		return 0, nil, status.ErrPortOverflow
	}

	var buff [2]parsing.Result
	parts := grammar.Port.Split(buff[:0], region)
	if !parts[1].Found {
		return 0, nil, status.ErrBadPort
	}

	if parts[1].End != len(region) {
		if digits(region[parts[1].End:]) {
			return 0, nil, status.ErrPortOverflow
		}

		return 0, nil, status.ErrBadPort
	}

	port, err = parsePort(parts[1].Of(region))

	return port, rest[end:], err
}

func indexDelimiter(b []byte) int {
	for i, c := range b {
		switch c {
		case '/', '?', '#':
			return i
		}
	}

	return len(b)
}

func digits(b []byte) bool {
	return grammar.Full(grammar.Digit, b)
}

func conforms(raw []byte, hasScheme bool) bool {
	if hasScheme {
		return grammar.Full(grammar.AbsoluteURI, raw)
	}

	return grammar.Full(grammar.OriginForm, raw)
}
