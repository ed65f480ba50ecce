package conv

// Int8ToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func Int8ToBytes(n int8, base int8, buf []byte) int {
	u := uint8(n)
	if n < 0 {
		u = -u
	} else if n == 0 {
		buf[0] = '0'
		return 1
	}

	idx := emitDigits(u, uint8(base), buf)

	if n < 0 {
		buf[idx] = '-'
		idx++
	}

	reverse(buf, idx)
	return idx
}

// Int16ToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func Int16ToBytes(n int16, base int16, buf []byte) int {
	u := uint16(n)
	if n < 0 {
		u = -u
	} else if n == 0 {
		buf[0] = '0'
		return 1
	}

	var idx int
	if base == 10 {
		idx = emitBase10(u, buf)
	} else {
		idx = emitDigits(u, uint16(base), buf)
	}

	if n < 0 {
		buf[idx] = '-'
		idx++
	}

	reverse(buf, idx)
	return idx
}

// Int32ToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func Int32ToBytes(n int32, base int32, buf []byte) int {
	u := uint32(n)
	if n < 0 {
		// Negating the same-width unsigned value yields the magnitude
		// even for the minimum value, where negating n would overflow.
		u = -u
	} else if n == 0 {
		buf[0] = '0'
		return 1
	}

	var idx int
	if base == 10 {
		idx = emitBase10(u, buf)
	} else {
		idx = emitDigits(u, uint32(base), buf)
	}

	if n < 0 {
		buf[idx] = '-'
		idx++
	}

	reverse(buf, idx)
	return idx
}

// Int64ToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func Int64ToBytes(n int64, base int64, buf []byte) int {
	u := uint64(n)
	if n < 0 {
		u = -u
	} else if n == 0 {
		buf[0] = '0'
		return 1
	}

	var idx int
	if base == 10 {
		idx = emitBase10(u, buf)
	} else {
		idx = emitDigits(u, uint64(base), buf)
	}

	if n < 0 {
		buf[idx] = '-'
		idx++
	}

	reverse(buf, idx)
	return idx
}

// IntToBytes writes the text form of n in the given base into buf and
// returns the number of bytes written.
func IntToBytes(n int, base int, buf []byte) int {
	u := uint(n)
	if n < 0 {
		u = -u
	} else if n == 0 {
		buf[0] = '0'
		return 1
	}

	var idx int
	if base == 10 {
		idx = emitBase10(u, buf)
	} else {
		idx = emitDigits(u, uint(base), buf)
	}

	if n < 0 {
		buf[idx] = '-'
		idx++
	}

	reverse(buf, idx)
	return idx
}
