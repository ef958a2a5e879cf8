package bitvec

// IsPowerOfTwo reports whether x has exactly one bit set.
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}

// BitsToBytes converts a bit count to whole bytes without rounding. Callers
// validate byte alignment first.
func BitsToBytes(bits uint) uint {
	return bits / 8
}

// MinimumBytes returns the number of bytes needed to hold bitCount bits.
func MinimumBytes(bitCount uint) uint {
	if bitCount%8 == 0 {
		return bitCount / 8
	}
	return bitCount/8 + 1
}

// Concat returns a followed by b. When a has no set bits, b itself is
// returned and a is dropped, even if a is non-empty.
func Concat(a, b *Vector) *Vector {
	if a.None() {
		return b
	}
	out := New(a.n + b.n)
	for i, ok := a.set.NextSet(0); ok && i < a.n; i, ok = a.set.NextSet(i + 1) {
		out.set.Set(i)
	}
	for i, ok := b.set.NextSet(0); ok && i < b.n; i, ok = b.set.NextSet(i + 1) {
		out.set.Set(a.n + i)
	}
	return out
}

// Append returns a followed by b with no special casing.
func Append(a, b *Vector) *Vector {
	out := a.Clone().Resize(a.n + b.n)
	for i, ok := b.set.NextSet(0); ok && i < b.n; i, ok = b.set.NextSet(i + 1) {
		out.set.Set(a.n + i)
	}
	return out
}
