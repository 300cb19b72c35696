package grammar

import "github.com/indigo-web/reqline/parsing"

// HTTPVersion is the literal protocol name followed by single-digit major and
// minor versions. Whatever follows the minor digit is left unconsumed.
var HTTPVersion = parsing.ParseParts(parsing.Literal("HTTP/"), parsing.One(Digit), parsing.One(Dot), parsing.One(Digit))
