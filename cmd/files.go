package cmd

import (
	"context"
	"io"
	"os"

	"github.com/harlequix/hammify/internal/stream"
)

type runFunc func(ctx context.Context, r io.Reader, w io.Writer) (stream.Stats, error)

// processFile runs fn from input into output. A failed run removes the
// partial output.
func processFile(ctx context.Context, input, output string, fn runFunc) (stream.Stats, error) {
	in, err := os.Open(input)
	if err != nil {
		return stream.Stats{}, err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return stream.Stats{}, err
	}

	stats, err := fn(ctx, in, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(output)
		return stats, err
	}
	return stats, nil
}
