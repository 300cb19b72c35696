package parsing

import "fmt"

type sequence []Matcher

// Seq requires every matcher to succeed, each one being applied to whatever the
// previous one left over.
func Seq(matchers ...Matcher) Matcher {
	return sequence(matchers)
}

func (s sequence) Match(span []byte) Result {
	end := 0

	for _, m := range s {
		result := m.Match(span[end:])
		if !result.Found {
			return miss()
		}

		end += result.End
	}

	return hit(end)
}

type oneOf []Matcher

// OneOf returns the result of the first matcher that succeeds. The order of
// alternatives is significant.
func OneOf(matchers ...Matcher) Matcher {
	return oneOf(matchers)
}

func (o oneOf) Match(span []byte) Result {
	for _, m := range o {
		if result := m.Match(span); result.Found {
			return result
		}
	}

	return miss()
}

type repeatN struct {
	matcher Matcher
	n       int
}

// RepeatN requires exactly n consecutive successful applications of the matcher.
func RepeatN(n int, m Matcher) Matcher {
	if n < 0 {
		panic(fmt.Sprintf("parsing: negative repetition count: %d", n))
	}

	return repeatN{matcher: m, n: n}
}

func (r repeatN) Match(span []byte) Result {
	end := 0

	for i := 0; i < r.n; i++ {
		result := r.matcher.Match(span[end:])
		if !result.Found {
			return miss()
		}

		end += result.End
	}

	return hit(end)
}

type atLeastUpTo struct {
	min     repeatN
	matcher Matcher
	extra   int
}

// AtLeastUpTo requires min applications of the matcher and then greedily takes up
// to max-min more of them.
func AtLeastUpTo(min, max int, m Matcher) Matcher {
	if min < 0 || min > max {
		panic(fmt.Sprintf("parsing: bad repetition bounds: [%d, %d]", min, max))
	}

	return atLeastUpTo{
		min:     repeatN{matcher: m, n: min},
		matcher: m,
		extra:   max - min,
	}
}

func (a atLeastUpTo) Match(span []byte) Result {
	result := a.min.Match(span)
	if !result.Found {
		return result
	}

	end := result.End
	for i := 0; i < a.extra && end < len(span); i++ {
		next := a.matcher.Match(span[end:])
		if !next.Found || next.End == 0 {
			break
		}

		end += next.End
	}

	return hit(end)
}

type zeroOrMore struct {
	matcher Matcher
}

// ZeroOrMore greedily applies the matcher until it fails, matches nothing or the
// span is exhausted. It always succeeds.
func ZeroOrMore(m Matcher) Matcher {
	return zeroOrMore{matcher: m}
}

func (z zeroOrMore) Match(span []byte) Result {
	end := 0

	for end < len(span) {
		result := z.matcher.Match(span[end:])
		if !result.Found || result.End == 0 {
			break
		}

		end += result.End
	}

	return hit(end)
}

// AtLeastN requires n applications of the matcher followed by as many as possible.
func AtLeastN(n int, m Matcher) Matcher {
	return Seq(RepeatN(n, m), ZeroOrMore(m))
}

// OneOrMore is the Kleene plus.
func OneOrMore(m Matcher) Matcher {
	return AtLeastN(1, m)
}

// OneOrNone makes the matcher optional.
func OneOrNone(m Matcher) Matcher {
	return AtLeastUpTo(0, 1, m)
}

// Literal matches the exact sequence of characters.
func Literal(str string) Matcher {
	chars := make(sequence, len(str))
	for i := 0; i < len(str); i++ {
		chars[i] = One(Chr(str[i]))
	}

	return chars
}
