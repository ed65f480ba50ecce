package conv

import "golang.org/x/exp/constraints"

// batched covers the unsigned types wide enough for the four-digit decimal
// fast path; its power-of-ten constants do not fit in uint8, so the 8-bit
// entry points take the generic loop instead.
type batched interface {
	~uint16 | ~uint32 | ~uint64 | ~uint
}

// emitBase10 writes the decimal digits of u into buf starting at index 0,
// least significant first, and returns the number of bytes written.  It
// extracts four digits per division: one %10000 pulls off a group, then the
// group's digits come from cheap sub-thousand divisions, cutting the count of
// full-width divisions roughly 4:1 against a digit-at-a-time loop.
func emitBase10[T batched](u T, buf []byte) int {
	idx := 0
	for u > 9999 {
		rem := u % 10000
		buf[idx+3] = digits[rem/1000]
		buf[idx+2] = digits[rem%1000/100]
		buf[idx+1] = digits[rem%100/10]
		buf[idx] = digits[rem%10]
		idx += 4
		u /= 10000
	}

	// Final group: write only the significant digits, no leading zeros.
	if u > 999 {
		rem := u % 1000
		buf[idx+3] = digits[u/1000]
		buf[idx+2] = digits[rem/100]
		buf[idx+1] = digits[rem%100/10]
		buf[idx] = digits[rem%10]
		idx += 4
	} else if u > 99 {
		rem := u % 100
		buf[idx+2] = digits[u/100]
		buf[idx+1] = digits[rem/10]
		buf[idx] = digits[rem%10]
		idx += 3
	} else if u > 9 {
		buf[idx+1] = digits[u/10]
		buf[idx] = digits[u%10]
		idx += 2
	} else {
		buf[idx] = digits[u]
		idx++
	}
	return idx
}

// emitDigits writes the digits of u in the given base into buf starting at
// index 0, least significant first, and returns the number of bytes written.
// Works for any base in [MinBase, MaxBase].
func emitDigits[T constraints.Unsigned](u, base T, buf []byte) int {
	idx := 0
	for u != 0 {
		buf[idx] = digits[u%base]
		idx++
		u /= base
	}
	return idx
}
