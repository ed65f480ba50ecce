package conv

import "github.com/basefmt/basefmt/converr"

/*
 * Checked variants of the conversion entry points, for callers that cannot
 * guarantee the base range or the buffer size up front.  Only the 64-bit
 * forms are provided: any narrower integer widens into them losslessly.
 *
 * On failure the buffer is left untouched; the representation is built in a
 * stack scratch array and copied out only once it is known to fit.
 */

// CheckedInt64ToBytes is Int64ToBytes with its preconditions validated.
// It returns the number of bytes written, or a converr error if base is
// outside [MinBase, MaxBase] or buf cannot hold the full representation.
func CheckedInt64ToBytes(n int64, base int64, buf []byte) (int, error) {
	if base < MinBase || base > MaxBase {
		return 0, converr.New(converr.InvalidBase, "base %d is outside the supported range [%d, %d]", base, MinBase, MaxBase)
	}

	var scratch [Int64BufSize]byte
	length := Int64ToBytes(n, base, scratch[:])
	if length > len(buf) {
		return 0, converr.New(converr.BufferTooSmall, "%d byte buffer cannot hold the %d byte representation of %d in base %d", len(buf), length, n, base)
	}

	copy(buf, scratch[:length])
	return length, nil
}

// CheckedUint64ToBytes is Uint64ToBytes with its preconditions validated.
// It returns the number of bytes written, or a converr error if base is
// outside [MinBase, MaxBase] or buf cannot hold the full representation.
func CheckedUint64ToBytes(n uint64, base uint64, buf []byte) (int, error) {
	if base < MinBase || base > MaxBase {
		return 0, converr.New(converr.InvalidBase, "base %d is outside the supported range [%d, %d]", base, MinBase, MaxBase)
	}

	var scratch [Uint64BufSize]byte
	length := Uint64ToBytes(n, base, scratch[:])
	if length > len(buf) {
		return 0, converr.New(converr.BufferTooSmall, "%d byte buffer cannot hold the %d byte representation of %d in base %d", len(buf), length, n, base)
	}

	copy(buf, scratch[:length])
	return length, nil
}
