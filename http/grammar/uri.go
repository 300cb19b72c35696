package grammar

import "github.com/indigo-web/reqline/parsing"

var (
	// SchemeName is a letter followed by letters, digits, '+', '-' or '.'.
	SchemeName = parsing.Seq(
		parsing.One(Alpha),
		parsing.ZeroOrMore(parsing.One(parsing.AnyOf(Alpha, Digit, parsing.Set("+-.")))),
	)
	// Label is a single letter-led component of a host name.
	Label = parsing.Seq(
		parsing.One(Alpha),
		parsing.ZeroOrMore(parsing.One(parsing.AnyOf(Alpha, Digit, parsing.Chr('-')))),
	)
	Hostname   = parsing.Seq(Label, parsing.ZeroOrMore(parsing.Seq(parsing.One(Dot), Label)))
	octet      = parsing.AtLeastUpTo(1, 3, parsing.One(Digit))
	Hostnumber = parsing.Seq(octet, parsing.RepeatN(3, parsing.Seq(parsing.One(Dot), octet)))
	Portnumber = parsing.AtLeastUpTo(1, 5, parsing.One(Digit))
	Segment    = XPAlphas
	Username   = parsing.OneOrMore(parsing.One(Alphanum2))
	Password   = parsing.OneOrMore(parsing.One(Alphanum2))
)

var (
	Scheme   = parsing.ParseParts(SchemeName, parsing.Literal("://"))
	Userinfo = parsing.ParseParts(Username, char(':'), Password, char('@'))
	Host     = parsing.ParseParts(parsing.OneOf(Hostname, Hostnumber))
	Port     = parsing.ParseParts(char(':'), Portnumber)
	// segments may be empty, so "/" and "/a/" are valid paths
	Path  = parsing.ParseParts(parsing.ZeroOrMore(parsing.Seq(char('/'), parsing.OneOrNone(Segment))))
	Query = parsing.ParseParts(
		char('?'),
		parsing.Seq(XAlphas, parsing.ZeroOrMore(parsing.Seq(char('+'), XAlphas))),
	)
	Fragment = parsing.ParseParts(char('#'), XPAlphas)

	// AbsoluteURI is the whole absolute-form request target.
	AbsoluteURI = parsing.Seq(
		Scheme,
		parsing.OneOrNone(Userinfo),
		Host,
		parsing.OneOrNone(Port),
		Path,
		parsing.OneOrNone(Query),
		parsing.OneOrNone(Fragment),
	)
	// OriginForm is a path with optional query and fragment.
	OriginForm = parsing.Seq(Path, parsing.OneOrNone(Query), parsing.OneOrNone(Fragment))
)

// Full reports whether the matcher consumes the whole span.
func Full(m parsing.Matcher, span []byte) bool {
	result := m.Match(span)
	return result.Found && result.End == len(span)
}
