package encoding

import (
	"fmt"
	"strings"

	"github.com/harlequix/hammify/internal/bitvec"
)

const ONE byte = '1'
const ZERO byte = '0'

// Label names position i of a codeword: "G", "C<i>" or "M<n>".
func Label(i uint) string {
	switch {
	case i == 0:
		return "G"
	case isCheckPosition(i):
		return fmt.Sprintf("C%d", i)
	default:
		m := i
		for p := uint(1); p <= i; p <<= 1 {
			m--
		}
		return fmt.Sprintf("M%d", m)
	}
}

// Describe renders a codeword as a three row table of positions, labels
// and bit values, highest position first.
func Describe(codeword *bitvec.Vector) string {
	var pos, lbl, val strings.Builder
	for i := codeword.Len(); i > 0; i-- {
		fmt.Fprintf(&pos, "%4d", i-1)
		fmt.Fprintf(&lbl, "%4s", Label(i-1))
		b := ZERO
		if codeword.Test(i - 1) {
			b = ONE
		}
		fmt.Fprintf(&val, "%4c", b)
	}
	return strings.Join([]string{pos.String(), lbl.String(), val.String()}, "\n")
}
