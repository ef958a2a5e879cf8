package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harlequix/hammify/internal/stream"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode Hamming codewords, correcting single bit errors",
	Long: `decode reads an encoded file chunk by chunk. Any single flipped bit in
a chunk is corrected. A chunk with a detected double error stops the run and
the partial output is removed.`,
	Args: cobra.NoArgs,
	RunE: decode,
}

func init() {
	decodeCmd.Flags().StringP("input", "i", "", "encoded file")
	decodeCmd.Flags().StringP("output", "o", "output.bin", "decoded file")
	decodeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	opts, err := cfg.StreamOptions()
	if err != nil {
		return err
	}
	dec, err := stream.NewDecoder(opts)
	if err != nil {
		return err
	}
	stats, err := processFile(commandContext(cmd), input, output, dec.Decode)
	if err != nil {
		return err
	}
	entry := logger.WithField("input", input).
		WithField("output", output).
		WithField("chunks", stats.Chunks).
		WithField("corrected", stats.Corrected)
	if stats.Corrected > 0 {
		entry.Warn("decoded with corrections")
	} else {
		entry.Info("decoded")
	}
	return nil
}
