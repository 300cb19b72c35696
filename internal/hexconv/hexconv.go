package hexconv

// Halfbyte maps a hex digit onto its value. Any other character maps onto 0xFF,
// so a pair of digits may be validated at once with (a|b) <= 0x0f.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-'a'+'A'] = c - 'a' + 10
	}

	return table
}()

// Decode combines two hex digits into a byte. ok is false if either of them is not
// a valid hex digit.
func Decode(high, low byte) (char byte, ok bool) {
	a, b := Halfbyte[high], Halfbyte[low]
	if a|b > 0x0f {
		return 0, false
	}

	return a<<4 | b, true
}
