package conv

/*
 * This package converts integers of any standard width and signedness into
 * their text representation in a caller-chosen base between 2 and 36, writing
 * directly into a caller-supplied byte slice with no allocation.  The text
 * occupies buf[0:n] where n is the returned count; bytes past n are left as
 * they were.
 *
 * The XToBytes entry points trust their callers: base must be within
 * [MinBase, MaxBase], and buf must be large enough for the full
 * representation including a leading '-' for negative values.  An undersized
 * buffer panics on the out-of-bounds write rather than truncating.  The
 * XXXBufSize constants give the worst-case size (base 2) for each type, so a
 * buffer sized with them can be reused for every base.
 *
 * Callers that cannot uphold those obligations should use the Checked
 * variants, which validate first and report violations as converr errors.
 */

// Supported base range. Bases above 10 use uppercase letters for the extra
// digit values.
const (
	MinBase = 2
	MaxBase = 36
)

// Worst-case representation sizes, reached in base 2 at the extreme value of
// each type (plus a sign byte for the signed types).
const (
	Int8BufSize   = 9
	Int16BufSize  = 17
	Int32BufSize  = 33
	Int64BufSize  = 65
	IntBufSize    = Int64BufSize
	Uint8BufSize  = 8
	Uint16BufSize = 16
	Uint32BufSize = 32
	Uint64BufSize = 64
	UintBufSize   = Uint64BufSize
)

// A lookup table from digit value to its character, shared by every base.
// Indexing a constant table beats a branch per digit in the extraction loops.
const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Digit extraction produces the representation least-significant digit first;
// reverse restores reading order in place.
func reverse(buf []byte, length int) {
	for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
