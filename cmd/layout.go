package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hammify/internal/format"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show chunk and codeword sizes for the configured buffer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := format.NewLayout(cfg.MessageBits)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "message bits:   %d\n", l.MessageBits)
		fmt.Fprintf(out, "check bits:     %d\n", l.CheckBits)
		fmt.Fprintf(out, "codeword bits:  %d\n", l.CodewordBits)
		fmt.Fprintf(out, "message bytes:  %d\n", l.MessageBytes)
		fmt.Fprintf(out, "codeword bytes: %d\n", l.CodewordBytes)
		fmt.Fprintf(out, "overhead:       %.2fx\n", float64(l.CodewordBytes)/float64(l.MessageBytes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
