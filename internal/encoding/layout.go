package encoding

import (
	"github.com/harlequix/hammify/internal/bitvec"
)

// MinimumCheckBits returns the smallest K for which 2^K - 1 >= length + K,
// i.e. the check positions 1, 2, 4, ... can address every position of a
// codeword carrying length message bits.
func MinimumCheckBits(length uint) uint {
	k := uint(0)
	for (uint64(1)<<k)-1 < uint64(length)+uint64(k) {
		k++
	}
	return k
}

// CodewordBits returns N = K + M + 1 for a message of length bits.
func CodewordBits(length uint) uint {
	return MinimumCheckBits(length) + length + 1
}

func isCheckPosition(i uint) bool {
	return bitvec.IsPowerOfTwo(uint64(i))
}

func isMessagePosition(i uint) bool {
	return i != 0 && !isCheckPosition(i)
}

// ExtractCheckBits collects the bits at power-of-two positions of codeword,
// lowest first.
func ExtractCheckBits(codeword *bitvec.Vector, messageLength uint) *bitvec.Vector {
	checks := bitvec.New(MinimumCheckBits(messageLength))
	next := uint(0)
	for i := uint(0); i < codeword.Len() && next < checks.Len(); i++ {
		if isCheckPosition(i) {
			checks.Set(next, codeword.Test(i))
			next++
		}
	}
	return checks
}

// ExtractMessageBits collects the bits at positions that are neither 0 nor a
// power of two, lowest first.
func ExtractMessageBits(codeword *bitvec.Vector, messageLength uint) *bitvec.Vector {
	message := bitvec.New(messageLength)
	next := uint(0)
	for i := uint(0); i < codeword.Len() && next < messageLength; i++ {
		if isMessagePosition(i) {
			message.Set(next, codeword.Test(i))
			next++
		}
	}
	return message
}
