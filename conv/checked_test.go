package conv_test

import (
	"math"

	. "github.com/basefmt/basefmt/conv"
	"github.com/basefmt/basefmt/converr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Checked conversion functions", func() {
	Context("CheckedInt64ToBytes", func() {
		var buf = [Int64BufSize]byte{}
		It("should convert when the preconditions hold", func() {
			n, err := CheckedInt64ToBytes(-6235, 10, buf[:])
			Expect(err).ToNot(HaveOccurred())
			Expect(buf[:n]).To(Equal([]byte("-6235")))
		})
		It("should convert the minimum int64", func() {
			n, err := CheckedInt64ToBytes(math.MinInt64, 2, buf[:])
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(65))
		})
		It("should reject base below the supported range", func() {
			for _, base := range []int64{-10, 0, 1} {
				_, err := CheckedInt64ToBytes(42, base, buf[:])
				Expect(err).To(HaveOccurred())
				Expect(err.(converr.Error).GetCode()).To(Equal(converr.InvalidBase))
			}
		})
		It("should reject base above the supported range", func() {
			_, err := CheckedInt64ToBytes(42, 37, buf[:])
			Expect(err).To(HaveOccurred())
			Expect(err.(converr.Error).GetCode()).To(Equal(converr.InvalidBase))
		})
		It("should reject an undersized buffer without touching it", func() {
			small := []byte("xxxx")
			_, err := CheckedInt64ToBytes(-12345, 10, small)
			Expect(err).To(HaveOccurred())
			Expect(err.(converr.Error).GetCode()).To(Equal(converr.BufferTooSmall))
			Expect(small).To(Equal([]byte("xxxx")))
		})
		It("should accept a buffer of exactly the required size", func() {
			exact := make([]byte, 6)
			n, err := CheckedInt64ToBytes(-12345, 10, exact)
			Expect(err).ToNot(HaveOccurred())
			Expect(exact[:n]).To(Equal([]byte("-12345")))
		})
	})
	Context("CheckedUint64ToBytes", func() {
		var buf = [Uint64BufSize]byte{}
		It("should convert when the preconditions hold", func() {
			n, err := CheckedUint64ToBytes(math.MaxUint64, 10, buf[:])
			Expect(err).ToNot(HaveOccurred())
			Expect(buf[:n]).To(Equal([]byte("18446744073709551615")))
		})
		It("should reject an invalid base", func() {
			_, err := CheckedUint64ToBytes(42, 1, buf[:])
			Expect(err).To(HaveOccurred())
			Expect(err.(converr.Error).GetCode()).To(Equal(converr.InvalidBase))
		})
		It("should reject an undersized buffer", func() {
			_, err := CheckedUint64ToBytes(math.MaxUint64, 2, make([]byte, 63))
			Expect(err).To(HaveOccurred())
			Expect(err.(converr.Error).GetCode()).To(Equal(converr.BufferTooSmall))
		})
	})
})
