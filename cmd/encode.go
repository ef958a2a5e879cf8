package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harlequix/hammify/internal/stream"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a file into Hamming codewords",
	Args:  cobra.NoArgs,
	RunE:  encode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "file to encode")
	encodeCmd.Flags().StringP("output", "o", "output.wham", "encoded file")
	encodeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	opts, err := cfg.StreamOptions()
	if err != nil {
		return err
	}
	enc, err := stream.NewEncoder(opts)
	if err != nil {
		return err
	}
	stats, err := processFile(commandContext(cmd), input, output, enc.Encode)
	if err != nil {
		return err
	}
	logger.WithField("input", input).
		WithField("output", output).
		WithField("layout", enc.Layout().String()).
		WithField("chunks", stats.Chunks).
		WithField("bytes", stats.BytesOut).
		Info("encoded")
	return nil
}
