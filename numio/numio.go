package numio

/*
 * This package writes integers to an io.Writer without allocating, by
 * formatting them through the conv package into a scratch array held inside
 * the Writer.  A Writer reuses its scratch across calls and is therefore not
 * safe for concurrent use; give each goroutine its own.
 */

import (
	"io"

	"github.com/pkg/errors"

	"github.com/basefmt/basefmt/conv"
)

type Writer struct {
	w       io.Writer
	scratch [conv.Int64BufSize]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteInt64 writes the text form of n in the given base to the underlying
// writer and returns the number of bytes written.
func (nw *Writer) WriteInt64(n int64, base int64) (int, error) {
	length := conv.Int64ToBytes(n, base, nw.scratch[:])
	written, err := nw.w.Write(nw.scratch[:length])
	if err != nil {
		return written, errors.Errorf("Unable to write number: %s", err)
	}
	return written, nil
}

// WriteUint64 writes the text form of n in the given base to the underlying
// writer and returns the number of bytes written.
func (nw *Writer) WriteUint64(n uint64, base uint64) (int, error) {
	length := conv.Uint64ToBytes(n, base, nw.scratch[:])
	written, err := nw.w.Write(nw.scratch[:length])
	if err != nil {
		return written, errors.Errorf("Unable to write number: %s", err)
	}
	return written, nil
}

// WriteInt writes n in decimal.
func (nw *Writer) WriteInt(n int) (int, error) {
	return nw.WriteInt64(int64(n), 10)
}

// WriteUint writes n in decimal.
func (nw *Writer) WriteUint(n uint) (int, error) {
	return nw.WriteUint64(uint64(n), 10)
}
