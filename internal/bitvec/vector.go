// Package bitvec holds the fixed-length bit sequences the Hamming coder works on.
//
// Index 0 is the first (least-significant) position. A Vector never grows on
// its own: every access is checked against Len and an out-of-range index
// panics with *IndexError.
package bitvec

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// IndexError is the panic value for an access outside [0, Len).
type IndexError struct {
	Index uint
	Len   uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitvec: index %d out of range [0, %d)", e.Index, e.Len)
}

// Vector is an owned bit sequence with an explicit length.
type Vector struct {
	set *bitset.BitSet
	n   uint
}

// New returns an all-zero vector of n bits.
func New(n uint) *Vector {
	return &Vector{
		set: bitset.New(n),
		n:   n,
	}
}

// FromUint64 returns an n-bit vector holding the low n bits of value.
func FromUint64(n uint, value uint64) *Vector {
	v := New(n)
	for i := uint(0); i < n && i < 64; i++ {
		if value&(1<<i) != 0 {
			v.set.Set(i)
		}
	}
	return v
}

// FromBools builds a vector from a slice of booleans, element i at position i.
func FromBools(bits []bool) *Vector {
	v := New(uint(len(bits)))
	for i, b := range bits {
		if b {
			v.set.Set(uint(i))
		}
	}
	return v
}

func (v *Vector) check(i uint) {
	if i >= v.n {
		panic(&IndexError{Index: i, Len: v.n})
	}
}

// Len returns the number of bits.
func (v *Vector) Len() uint {
	return v.n
}

// Test reports whether bit i is set.
func (v *Vector) Test(i uint) bool {
	v.check(i)
	return v.set.Test(i)
}

// Set assigns bit i.
func (v *Vector) Set(i uint, value bool) *Vector {
	v.check(i)
	v.set.SetTo(i, value)
	return v
}

// Flip toggles bit i.
func (v *Vector) Flip(i uint) *Vector {
	v.check(i)
	v.set.Flip(i)
	return v
}

// Count returns the number of set bits.
func (v *Vector) Count() uint {
	return v.set.Count()
}

// None reports whether no bit is set. An empty vector has no set bits.
func (v *Vector) None() bool {
	return v.set.None()
}

// Parity returns the count of set bits mod 2.
func (v *Vector) Parity() bool {
	return v.Count()%2 == 1
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	return &Vector{
		set: v.set.Clone(),
		n:   v.n,
	}
}

// Resize changes the length in place. Growing appends zero bits, shrinking
// drops the highest positions.
func (v *Vector) Resize(n uint) *Vector {
	for i := n; i < v.n; i++ {
		v.set.Clear(i)
	}
	v.n = n
	return v
}

// Xor returns v XOR o. Both vectors must have the same length.
func (v *Vector) Xor(o *Vector) *Vector {
	if v.n != o.n {
		panic(fmt.Sprintf("bitvec: xor of vectors with lengths %d and %d", v.n, o.n))
	}
	return &Vector{
		set: v.set.SymmetricDifference(o.set),
		n:   v.n,
	}
}

// Uint64 interprets the vector as an unsigned integer, position 0 being the
// least significant bit. Set bits at positions 64 and above do not fit and
// saturate the result to the maximum value.
func (v *Vector) Uint64() uint64 {
	var out uint64
	for i, ok := v.set.NextSet(0); ok && i < v.n; i, ok = v.set.NextSet(i + 1) {
		if i >= 64 {
			return ^uint64(0)
		}
		out |= 1 << i
	}
	return out
}

// Equal reports whether both vectors have the same length and bits.
func (v *Vector) Equal(o *Vector) bool {
	if v.n != o.n {
		return false
	}
	return v.set.SymmetricDifference(o.set).None()
}

// Bools returns the bits as a slice of booleans.
func (v *Vector) Bools() []bool {
	out := make([]bool, v.n)
	for i := range out {
		out[i] = v.set.Test(uint(i))
	}
	return out
}

// String renders the vector with the highest position first, the way a
// binary literal is written.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(int(v.n))
	for i := v.n; i > 0; i-- {
		if v.set.Test(i - 1) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse reads a binary literal as produced by String.
func Parse(s string) (*Vector, error) {
	n := uint(len(s))
	v := New(n)
	for i := uint(0); i < n; i++ {
		switch s[n-1-i] {
		case '1':
			v.set.Set(i)
		case '0':
		default:
			return nil, fmt.Errorf("bitvec: invalid digit %q at offset %d", s[n-1-i], n-1-i)
		}
	}
	return v, nil
}
