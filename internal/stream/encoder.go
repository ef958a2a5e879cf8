package stream

import (
	"context"
	"io"

	"github.com/harlequix/hammify/internal/format"
)

// Encoder turns a byte stream into Hamming codewords.
type Encoder struct {
	p *pipeline
}

// NewEncoder returns an Encoder for chunks of opts.MessageBits bits.
func NewEncoder(opts Options) (*Encoder, error) {
	p, err := newPipeline(opts, "Encoder")
	if err != nil {
		return nil, err
	}
	p.chunkSize = p.layout.MessageBytes
	p.allowShort = true
	p.code = func(block *format.Block) (result, error) {
		return result{data: p.layout.EncodeBlock(block.Data)}, nil
	}
	return &Encoder{p: p}, nil
}

// Layout returns the chunk layout in use.
func (e *Encoder) Layout() format.Layout {
	return e.p.layout
}

// Encode reads r until EOF and writes one codeword per chunk to w. The last
// chunk is zero padded to a full message.
func (e *Encoder) Encode(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	return e.p.run(ctx, r, w)
}
