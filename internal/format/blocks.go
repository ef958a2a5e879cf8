package format

import (
	"fmt"

	"github.com/harlequix/hammify/internal/bitvec"
	"github.com/harlequix/hammify/internal/encoding"
)

// MaxMessageBits bounds the chunk size accepted from configuration.
const MaxMessageBits = 65528

// Layout holds the sizes of one chunk before and after encoding.
type Layout struct {
	MessageBits   uint
	CheckBits     uint
	CodewordBits  uint
	MessageBytes  uint
	CodewordBytes uint
}

// NewLayout returns the layout for chunks of messageBits bits. The message
// size must be a positive whole number of bytes.
func NewLayout(messageBits uint) (Layout, error) {
	if messageBits == 0 || messageBits%8 != 0 || messageBits > MaxMessageBits {
		return Layout{}, fmt.Errorf("buffer size %d: must be a positive multiple of 8 up to %d", messageBits, MaxMessageBits)
	}
	n := encoding.CodewordBits(messageBits)
	return Layout{
		MessageBits:   messageBits,
		CheckBits:     encoding.MinimumCheckBits(messageBits),
		CodewordBits:  n,
		MessageBytes:  bitvec.BitsToBytes(messageBits),
		CodewordBytes: bitvec.MinimumBytes(n),
	}, nil
}

func (l Layout) String() string {
	return fmt.Sprintf("M=%d K=%d N=%d (%d -> %d bytes per chunk)",
		l.MessageBits, l.CheckBits, l.CodewordBits, l.MessageBytes, l.CodewordBytes)
}

// Pack writes the first 8*nbytes bits of v into bytes, least significant bit
// first. Positions past the end of v are written as zero.
func Pack(v *bitvec.Vector, nbytes uint) []byte {
	out := make([]byte, nbytes)
	limit := v.Len()
	if limit > nbytes*8 {
		limit = nbytes * 8
	}
	for i := uint(0); i < limit; i++ {
		if v.Test(i) {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// Unpack reads nbits bits from b, least significant bit first. Bits past the
// end of b are zero.
func Unpack(b []byte, nbits uint) *bitvec.Vector {
	v := bitvec.New(nbits)
	for i := uint(0); i < nbits && i/8 < uint(len(b)); i++ {
		if b[i/8]&(1<<(i%8)) != 0 {
			v.Set(i, true)
		}
	}
	return v
}

// Block is one chunk of input staged for the coder.
type Block struct {
	Index uint64
	Data  []byte
}

// EncodeBlock packs a message chunk into its padded codeword bytes. A short
// chunk is zero padded to the layout's message size.
func (l Layout) EncodeBlock(data []byte) []byte {
	message := Unpack(data, l.MessageBits)
	codeword := encoding.Encode(message)
	return Pack(codeword, l.CodewordBytes)
}

// DecodeBlock recovers the message bytes from one codeword chunk.
func (l Layout) DecodeBlock(data []byte) ([]byte, encoding.Report, error) {
	if uint(len(data)) != l.CodewordBytes {
		return nil, encoding.Report{}, fmt.Errorf("codeword chunk has %d bytes, want %d", len(data), l.CodewordBytes)
	}
	codeword := Unpack(data, l.CodewordBits)
	message, report, err := encoding.DecodeReport(codeword, l.MessageBits)
	if err != nil {
		return nil, report, err
	}
	// the all-zero pass through keeps the codeword length
	message.Resize(l.MessageBits)
	return Pack(message, l.MessageBytes), report, nil
}
