package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harlequix/hammify/internal/bitvec"
	"github.com/harlequix/hammify/internal/encoding"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <value>",
	Short: "Encode one chunk and print its codeword layout",
	Long: `inspect encodes a single integer (decimal, 0x, 0o or 0b prefixed) as one
chunk of the configured buffer size and prints every codeword position.
Use --flip to corrupt positions and see how decode reacts.`,
	Args: cobra.ExactArgs(1),
	RunE: inspect,
}

func init() {
	inspectCmd.Flags().UintSlice("flip", nil, "codeword positions to flip before decoding")
	rootCmd.AddCommand(inspectCmd)
}

func inspect(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return err
	}
	flips, _ := cmd.Flags().GetUintSlice("flip")

	message := bitvec.FromUint64(cfg.MessageBits, value)
	codeword := encoding.Encode(message)
	if codeword.Len() != encoding.CodewordBits(cfg.MessageBits) {
		codeword = codeword.Clone().Resize(encoding.CodewordBits(cfg.MessageBits))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "message:  %s\n", message)
	fmt.Fprintf(out, "codeword: %s\n", codeword)
	fmt.Fprintf(out, "checks:   %s\n", encoding.ExtractCheckBits(codeword, cfg.MessageBits))
	fmt.Fprintf(out, "%s\n", encoding.Describe(codeword))
	if len(flips) == 0 {
		return nil
	}

	received := codeword.Clone()
	for _, p := range flips {
		if p >= received.Len() {
			return fmt.Errorf("position %d outside codeword of %d bits", p, received.Len())
		}
		received.Flip(p)
	}
	fmt.Fprintf(out, "received: %s\n", received)
	decoded, report, err := encoding.DecodeReport(received, cfg.MessageBits)
	if err != nil {
		fmt.Fprintf(out, "decode:   %v\n", err)
		return nil
	}
	decoded = decoded.Resize(cfg.MessageBits)
	fmt.Fprintf(out, "syndrome: %d\n", report.Syndrome)
	if report.Corrected {
		fmt.Fprintf(out, "fixed:    %s (position %d)\n", encoding.Label(report.Position), report.Position)
	}
	fmt.Fprintf(out, "decoded:  %s\n", decoded)
	return nil
}
