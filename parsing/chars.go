package parsing

import (
	"fmt"
	"strings"
)

// Matcher tests whether a prefix of a span belongs to the language it describes.
// Implementations hold no mutable state and may be shared between goroutines.
type Matcher interface {
	Match(span []byte) Result
}

// Class is a character predicate. Its span form consumes the longest prefix of
// characters satisfying the predicate, requiring at least one.
type Class interface {
	Matcher
	Test(c byte) bool
}

func run(class Class, span []byte) Result {
	n := 0
	for n < len(span) && class.Test(span[n]) {
		n++
	}

	if n == 0 {
		return miss()
	}

	return hit(n)
}

// Chr matches exactly the character itself.
type Chr byte

func (c Chr) Test(char byte) bool {
	return char == byte(c)
}

func (c Chr) Match(span []byte) Result {
	return run(c, span)
}

type rng struct {
	first, last byte
}

// Rng matches every character within [first, last].
func Rng(first, last byte) Class {
	if first > last {
		panic(fmt.Sprintf("parsing: bad range: %q > %q", first, last))
	}

	return rng{first: first, last: last}
}

func (r rng) Test(c byte) bool {
	return r.first <= c && c <= r.last
}

func (r rng) Match(span []byte) Result {
	return run(r, span)
}

// Set matches any of its characters.
type Set string

func (s Set) Test(c byte) bool {
	return strings.IndexByte(string(s), c) != -1
}

func (s Set) Match(span []byte) Result {
	return run(s, span)
}

type anyChar struct{}

// Any matches every character.
var Any Class = anyChar{}

func (anyChar) Test(byte) bool {
	return true
}

func (a anyChar) Match(span []byte) Result {
	return run(a, span)
}

type anyOf []Class

// AnyOf is a character-level alternation: true whenever any of the classes is.
func AnyOf(classes ...Class) Class {
	return anyOf(classes)
}

func (a anyOf) Test(c byte) bool {
	for _, class := range a {
		if class.Test(c) {
			return true
		}
	}

	return false
}

func (a anyOf) Match(span []byte) Result {
	return run(a, span)
}

type neg struct {
	class Class
}

// Neg inverts the class.
func Neg(class Class) Class {
	return neg{class: class}
}

// Until matches characters up to (not including) the first one of the stop class.
func Until(stop Class) Class {
	return Neg(stop)
}

func (n neg) Test(c byte) bool {
	return !n.class.Test(c)
}

func (n neg) Match(span []byte) Result {
	return run(n, span)
}

type one struct {
	class Class
}

// One consumes exactly a single character of the class.
func One(class Class) Matcher {
	return one{class: class}
}

func (o one) Match(span []byte) Result {
	if len(span) == 0 || !o.class.Test(span[0]) {
		return miss()
	}

	return hit(1)
}
