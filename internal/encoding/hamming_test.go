package encoding

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlequix/hammify/internal/bitvec"
)

func flip(v *bitvec.Vector, positions ...uint) *bitvec.Vector {
	out := v.Clone()
	for _, p := range positions {
		out.Flip(p)
	}
	return out
}

// validCodeword checks the parity equations every codeword must satisfy.
func validCodeword(t *testing.T, word *bitvec.Vector) {
	n := word.Len()
	for i := uint(1); i < n; i <<= 1 {
		parity := false
		for j := uint(0); j < n; j++ {
			if i != j && i&j != 0 && word.Test(j) {
				parity = !parity
			}
		}
		assert.Equalf(t, parity, word.Test(i), "check bit C%d", i)
	}
	rest := false
	for j := uint(1); j < n; j++ {
		if word.Test(j) {
			rest = !rest
		}
	}
	assert.Equal(t, rest, word.Test(0), "global parity")
}

func TestMinimumCheckBits(t *testing.T) {
	cases := map[uint]uint{
		0: 0, 1: 2, 4: 3, 5: 4, 8: 4, 11: 4, 12: 5,
		16: 5, 26: 5, 27: 6, 57: 6, 58: 7, 64: 7,
	}
	for length, want := range cases {
		assert.Equalf(t, want, MinimumCheckBits(length), "length %d", length)
	}

	prev := uint(0)
	for n := uint(0); n < 4096; n++ {
		k := MinimumCheckBits(n)
		require.GreaterOrEqual(t, k, prev, "monotone at %d", n)
		require.GreaterOrEqual(t, uint64(1)<<k-1, uint64(n), "bound at %d", n)
		prev = k
	}
}

func TestLayoutPartitionsPositions(t *testing.T) {
	for m := uint(1); m <= 128; m++ {
		n := CodewordBits(m)
		checks, messages := uint(0), uint(0)
		for i := uint(1); i < n; i++ {
			if isCheckPosition(i) {
				checks++
			} else {
				messages++
			}
		}
		require.Equalf(t, MinimumCheckBits(m), checks, "check positions for m=%d", m)
		require.Equalf(t, m, messages, "message positions for m=%d", m)
	}
}

func TestExtract(t *testing.T) {
	word := bitvec.FromUint64(13, 0xff)
	assert.Equal(t, "0111", ExtractCheckBits(word, 8).String())
	assert.Equal(t, "00001111", ExtractMessageBits(word, 8).String())
}

func TestEncodeScenario(t *testing.T) {
	message := bitvec.FromUint64(8, 0b00001111)
	word := Encode(message)
	require.EqualValues(t, 13, word.Len())
	assert.Equal(t, "0000011111111", word.String())
	validCodeword(t, word)

	word = Encode(bitvec.FromUint64(8, 0b11110000))
	assert.EqualValues(t, 7697, word.Uint64())
	validCodeword(t, word)
}

func TestDecodeScenario(t *testing.T) {
	message := bitvec.FromUint64(8, 0b00001111)
	word := Encode(message)

	t.Run("clean", func(t *testing.T) {
		out, report, err := DecodeReport(word, 8)
		require.NoError(t, err)
		assert.True(t, message.Equal(out))
		assert.False(t, report.Corrected)
		assert.Zero(t, report.Syndrome)
	})

	t.Run("bit 5", func(t *testing.T) {
		out, report, err := DecodeReport(flip(word, 5), 8)
		require.NoError(t, err)
		assert.True(t, message.Equal(out))
		assert.True(t, report.Corrected)
		assert.EqualValues(t, 5, report.Position)
	})

	t.Run("bits 3 and 9", func(t *testing.T) {
		out, err := Decode(flip(word, 3, 9), 8)
		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, ErrUncorrectable))
		assert.True(t, errors.Is(err, ErrGlobalParityMismatch))
	})

	t.Run("bits 4 and 9", func(t *testing.T) {
		_, err := Decode(flip(word, 4, 9), 8)
		var uerr *UncorrectableError
		require.True(t, errors.As(err, &uerr))
		assert.Equal(t, SyndromeOutOfRange, uerr.Kind)
		assert.EqualValues(t, 13, uerr.Syndrome)
		assert.True(t, errors.Is(err, ErrSyndromeOutOfRange))
		assert.False(t, errors.Is(err, ErrGlobalParityMismatch))
	})

	t.Run("input untouched", func(t *testing.T) {
		corrupted := flip(word, 5)
		before := corrupted.String()
		_, err := Decode(corrupted, 8)
		require.NoError(t, err)
		assert.Equal(t, before, corrupted.String())
	})
}

func TestZeroPassThrough(t *testing.T) {
	zero := bitvec.New(8)
	assert.Same(t, zero, Encode(zero))

	word := bitvec.New(13)
	out, err := Decode(word, 8)
	require.NoError(t, err)
	assert.Same(t, word, out)

	empty := bitvec.New(0)
	assert.Same(t, empty, Encode(empty))
}

func TestDecodeShortCodeword(t *testing.T) {
	_, err := Decode(bitvec.FromUint64(12, 1), 8)
	assert.Equal(t, ErrCodewordLength, err)
	assert.False(t, errors.Is(err, ErrUncorrectable))
}

func TestByteRoundTrip(t *testing.T) {
	for value := uint64(0); value < 256; value++ {
		message := bitvec.FromUint64(8, value)
		out, err := Decode(Encode(message), 8)
		require.NoError(t, err)
		require.EqualValuesf(t, value, out.Uint64(), "value %d", value)
	}
}

func TestSingleBitCorrection(t *testing.T) {
	for value := uint64(1); value < 256; value++ {
		message := bitvec.FromUint64(8, value)
		word := Encode(message)
		for p := uint(0); p < word.Len(); p++ {
			out, report, err := DecodeReport(flip(word, p), 8)
			require.NoErrorf(t, err, "value %d position %d", value, p)
			require.Truef(t, message.Equal(out), "value %d position %d", value, p)
			require.True(t, report.Corrected)
			require.Equal(t, p, report.Position)
		}
	}
}

func TestDoubleBitDetection(t *testing.T) {
	for value := uint64(1); value < 256; value++ {
		word := Encode(bitvec.FromUint64(8, value))
		for p := uint(0); p < word.Len(); p++ {
			for q := p + 1; q < word.Len(); q++ {
				_, err := Decode(flip(word, p, q), 8)
				require.Truef(t, errors.Is(err, ErrUncorrectable), "value %d positions %d,%d", value, p, q)
			}
		}
	}
}

func TestRandomLengths(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for _, m := range []uint{1, 2, 3, 4, 5, 7, 11, 12, 16, 24, 26, 27, 32, 57, 64, 100, 256} {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			for trial := 0; trial < 20; trial++ {
				bits := make([]bool, m)
				for i := range bits {
					bits[i] = r.Intn(2) == 1
				}
				bits[r.Intn(int(m))] = true
				message := bitvec.FromBools(bits)

				word := Encode(message)
				require.Equal(t, CodewordBits(m), word.Len())
				validCodeword(t, word)

				out, err := Decode(word, m)
				require.NoError(t, err)
				require.True(t, message.Equal(out))

				p := uint(r.Intn(int(word.Len())))
				out, err = Decode(flip(word, p), m)
				require.NoError(t, err)
				require.True(t, message.Equal(out))

				q := uint(r.Intn(int(word.Len())))
				if q != p {
					_, err = Decode(flip(word, p, q), m)
					require.True(t, errors.Is(err, ErrUncorrectable))
				}
			}
		})
	}
}

func TestLabel(t *testing.T) {
	labels := []string{"G", "C1", "C2", "M1", "C4", "M2", "M3", "M4", "C8", "M5", "M6", "M7", "M8"}
	for i, want := range labels {
		assert.Equal(t, want, Label(uint(i)))
	}
	out := Describe(Encode(bitvec.FromUint64(8, 0b00001111)))
	assert.Contains(t, out, "  M8  M7")
	assert.Contains(t, out, "   G")
}

func BenchmarkEncode(b *testing.B) {
	message := bitvec.FromUint64(64, 0xdeadbeefcafebabe)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(message)
	}
}

func BenchmarkDecode(b *testing.B) {
	word := Encode(bitvec.FromUint64(64, 0xdeadbeefcafebabe))
	word.Flip(17)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(word, 64); err != nil {
			b.Fatal(err)
		}
	}
}
