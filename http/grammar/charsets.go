// Package grammar assembles the URI and request-line languages out of the
// parsing primitives. It only answers whether and how much of a span matches;
// turning matches into values is up to the uri and http packages.
package grammar

import "github.com/indigo-web/reqline/parsing"

var (
	Dot       = parsing.Chr('.')
	Digit     = parsing.Rng('0', '9')
	Alpha     = parsing.AnyOf(parsing.Rng('a', 'z'), parsing.Rng('A', 'Z'))
	Hex       = parsing.AnyOf(parsing.Rng('a', 'f'), parsing.Rng('A', 'F'), parsing.Rng('0', '9'))
	Safe      = parsing.Set("$-_@.&+")
	Extra     = parsing.Set("!*\"/(),")
	Reserved  = parsing.Set("=;/#?: ")
	Alphanum2 = parsing.AnyOf(Alpha, Digit, parsing.Set("-_.+"))

	// Escape is a single percent-encoded octet.
	Escape = parsing.Seq(parsing.One(parsing.Chr('%')), parsing.One(Hex), parsing.One(Hex))

	// XAlpha is a single unit of URI text: either a plain character or an escape.
	XAlpha   = parsing.OneOf(parsing.One(parsing.AnyOf(Alpha, Digit, Safe, Extra)), Escape)
	XPAlpha  = parsing.OneOf(XAlpha, parsing.One(parsing.Chr('+')))
	XAlphas  = parsing.OneOrMore(XAlpha)
	XPAlphas = parsing.OneOrMore(XPAlpha)
	IAlpha   = parsing.Seq(parsing.One(Alpha), parsing.ZeroOrMore(XAlpha))
)

func char(c byte) parsing.Matcher {
	return parsing.One(parsing.Chr(c))
}
