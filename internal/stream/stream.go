// Package stream runs the Hamming coder over byte streams, one fixed-size
// chunk at a time. Chunks of a batch are coded concurrently and written back
// in input order.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/harlequix/hammify/internal/encoding"
	"github.com/harlequix/hammify/internal/format"
	log "github.com/harlequix/hammify/log"
)

// ErrTruncated is returned when the encoded input ends inside a codeword.
var ErrTruncated = errors.New("input ends inside a codeword chunk")

// Options sizes the chunks and the worker pool of a pipeline.
type Options struct {
	MessageBits uint
	Workers     int
	Batch       int
}

// Stats summarizes one run.
type Stats struct {
	Chunks    uint64
	Corrected uint64
	BytesIn   uint64
	BytesOut  uint64
}

type result struct {
	data   []byte
	report encoding.Report
}

type codeFunc func(*format.Block) (result, error)

type pipeline struct {
	layout    format.Layout
	opts      Options
	chunkSize uint
	// allowShort pads a short trailing chunk instead of failing.
	allowShort bool
	code       codeFunc
	log        *log.Logger
}

func newPipeline(opts Options, name string) (*pipeline, error) {
	layout, err := format.NewLayout(opts.MessageBits)
	if err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Batch < 1 {
		opts.Batch = 1
	}
	return &pipeline{
		layout: layout,
		opts:   opts,
		log:    log.NewLogger(name),
	}, nil
}

// readBatch reads up to opts.Batch chunks. It returns done once r is drained.
func (p *pipeline) readBatch(r io.Reader, next uint64) ([]*format.Block, bool, error) {
	blocks := make([]*format.Block, 0, p.opts.Batch)
	for len(blocks) < p.opts.Batch {
		buf := make([]byte, p.chunkSize)
		n, err := io.ReadFull(r, buf)
		switch {
		case err == io.EOF:
			return blocks, true, nil
		case err == io.ErrUnexpectedEOF:
			if !p.allowShort {
				return nil, false, fmt.Errorf("chunk %d: %w (%d of %d bytes)", next+uint64(len(blocks)), ErrTruncated, n, p.chunkSize)
			}
			blocks = append(blocks, &format.Block{Index: next + uint64(len(blocks)), Data: buf[:n]})
			return blocks, true, nil
		case err != nil:
			return nil, false, err
		}
		blocks = append(blocks, &format.Block{Index: next + uint64(len(blocks)), Data: buf})
	}
	return blocks, false, nil
}

func (p *pipeline) codeBatch(ctx context.Context, blocks []*format.Block) ([]result, error) {
	results := make([]result, len(blocks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, block := range blocks {
		i, block := i, block
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.code(block)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", block.Index, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// run codes r into w. Chunks of batches that completed before a failure are
// flushed to w before the error is returned.
func (p *pipeline) run(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	out := bufio.NewWriter(w)
	logger := p.log.WithField("layout", p.layout.String())
	logger.Debug("starting")

	err := p.copyChunks(ctx, bufio.NewReader(r), out, &stats, logger)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return stats, err
	}
	logger.WithField("chunks", stats.Chunks).
		WithField("corrected", stats.Corrected).
		WithField("in", stats.BytesIn).
		WithField("out", stats.BytesOut).
		Debug("finished")
	return stats, nil
}

func (p *pipeline) copyChunks(ctx context.Context, in io.Reader, out io.Writer, stats *Stats, logger *logrus.Entry) error {
	for done := false; !done; {
		if err := ctx.Err(); err != nil {
			return err
		}
		var blocks []*format.Block
		var err error
		blocks, done, err = p.readBatch(in, stats.Chunks)
		if err != nil {
			return err
		}
		results, err := p.codeBatch(ctx, blocks)
		if err != nil {
			return err
		}
		for i, res := range results {
			if res.report.Corrected {
				stats.Corrected++
				logger.WithField("chunk", blocks[i].Index).
					WithField("syndrome", res.report.Syndrome).
					WithField("position", res.report.Position).
					Debug("corrected single bit error")
			}
			if _, err := out.Write(res.data); err != nil {
				return err
			}
			stats.Chunks++
			stats.BytesIn += uint64(len(blocks[i].Data))
			stats.BytesOut += uint64(len(res.data))
		}
	}
	return nil
}
