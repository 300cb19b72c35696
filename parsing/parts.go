package parsing

// Parts is an ordered tuple of matchers, each applied to the remainder left by
// the previous one. Unlike Seq, it remembers where every part begins and ends.
type Parts []Matcher

// ParseParts groups the matchers into Parts.
func ParseParts(parts ...Matcher) Parts {
	return parts
}

// Split appends a result per part to dst. Positions are absolute within span, so
// they can be used to slice it directly. Once a part fails, it and every part
// after it are reported as not found.
func (p Parts) Split(dst []Result, span []byte) []Result {
	pos := 0
	failed := false

	for _, part := range p {
		if failed {
			dst = append(dst, miss())
			continue
		}

		result := part.Match(span[pos:])
		if !result.Found {
			failed = true
			dst = append(dst, miss())
			continue
		}

		dst = append(dst, Result{Start: pos, End: pos + result.End, Found: true})
		pos += result.End
	}

	return dst
}

// Match succeeds when every part does.
func (p Parts) Match(span []byte) Result {
	return sequence(p).Match(span)
}
