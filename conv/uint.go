package conv

// Uint8ToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func Uint8ToBytes(n uint8, base uint8, buf []byte) int {
	if n == 0 {
		buf[0] = '0'
		return 1
	}

	idx := emitDigits(n, base, buf)
	reverse(buf, idx)
	return idx
}

// Uint16ToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func Uint16ToBytes(n uint16, base uint16, buf []byte) int {
	if n == 0 {
		buf[0] = '0'
		return 1
	}

	var idx int
	if base == 10 {
		idx = emitBase10(n, buf)
	} else {
		idx = emitDigits(n, base, buf)
	}

	reverse(buf, idx)
	return idx
}

// Uint32ToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func Uint32ToBytes(n uint32, base uint32, buf []byte) int {
	if n == 0 {
		buf[0] = '0'
		return 1
	}

	var idx int
	if base == 10 {
		idx = emitBase10(n, buf)
	} else {
		idx = emitDigits(n, base, buf)
	}

	reverse(buf, idx)
	return idx
}

// Uint64ToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func Uint64ToBytes(n uint64, base uint64, buf []byte) int {
	if n == 0 {
		buf[0] = '0'
		return 1
	}

	var idx int
	if base == 10 {
		idx = emitBase10(n, buf)
	} else {
		idx = emitDigits(n, base, buf)
	}

	reverse(buf, idx)
	return idx
}

// UintToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func UintToBytes(n uint, base uint, buf []byte) int {
	if n == 0 {
		buf[0] = '0'
		return 1
	}

	var idx int
	if base == 10 {
		idx = emitBase10(n, buf)
	} else {
		idx = emitDigits(n, base, buf)
	}

	reverse(buf, idx)
	return idx
}
