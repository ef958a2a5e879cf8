package stream

import (
	"context"
	"io"

	"github.com/harlequix/hammify/internal/format"
)

// Decoder recovers the original bytes from a stream of codewords.
type Decoder struct {
	p *pipeline
}

// NewDecoder returns a Decoder for codewords of opts.MessageBits message bits.
func NewDecoder(opts Options) (*Decoder, error) {
	p, err := newPipeline(opts, "Decoder")
	if err != nil {
		return nil, err
	}
	p.chunkSize = p.layout.CodewordBytes
	p.code = func(block *format.Block) (result, error) {
		data, report, err := p.layout.DecodeBlock(block.Data)
		if err != nil {
			return result{}, err
		}
		return result{data: data, report: report}, nil
	}
	return &Decoder{p: p}, nil
}

// Layout returns the chunk layout in use.
func (d *Decoder) Layout() format.Layout {
	return d.p.layout
}

// Decode reads whole codeword chunks from r and writes the messages to w.
// The first uncorrectable chunk aborts the run; the messages of batches
// completed before it are written to w.
func (d *Decoder) Decode(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	return d.p.run(ctx, r, w)
}
