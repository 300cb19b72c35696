package parsing

// Result describes how much of a span was consumed by a matcher. Start and End
// carry no meaning when Found is false. Matchers are anchored at the beginning
// of the span they are given, so Start is 0 for everything except the results
// produced by Parts.Split, which are positioned within the original span.
type Result struct {
	Start, End int
	Found      bool
}

// Len returns the number of consumed bytes.
func (r Result) Len() int {
	return r.End - r.Start
}

// Of slices the span the result was produced for.
func (r Result) Of(span []byte) []byte {
	return span[r.Start:r.End]
}

func hit(end int) Result {
	return Result{End: end, Found: true}
}

func miss() Result {
	return Result{}
}
