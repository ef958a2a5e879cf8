// Package encoding implements the SECDED Hamming code used by hammify.
//
// A codeword for an M-bit message has N = K + M + 1 positions. Position 0
// holds the global parity bit G, the power-of-two positions hold the check
// bits and every other position carries a message bit in ascending order:
//
//	position  12 11 10 09 08 07 06 05 04 03 02 01 00
//	bit       M8 M7 M6 M5 C8 M4 M3 M2 C4 M1 C2 C1 G
//
// Check bit Ci is the parity of every position j != i with i&j != 0.
package encoding

import (
	"github.com/harlequix/hammify/internal/bitvec"
)

// Report describes what Decode did to a codeword.
type Report struct {
	// Syndrome is the recomputed check bits XOR the received ones.
	Syndrome uint64
	// Corrected is true when a bit was flipped back.
	Corrected bool
	// Position is the flipped position, meaningful only when Corrected.
	Position uint
}

// placeMessage spreads message over the non-check positions of an n-bit word.
func placeMessage(message *bitvec.Vector, n uint) *bitvec.Vector {
	word := bitvec.New(n)
	next := uint(0)
	for i := uint(0); i < n && next < message.Len(); i++ {
		if isMessagePosition(i) {
			word.Set(i, message.Test(next))
			next++
		}
	}
	return word
}

// groupParity is the parity of the bits in check position i's group.
func groupParity(word *bitvec.Vector, i, n uint) bool {
	parity := false
	for j := uint(0); j < n; j++ {
		if i != j && i&j != 0 && word.Test(j) {
			parity = !parity
		}
	}
	return parity
}

// Encode returns the codeword for message. An all-zero message is returned
// as is.
func Encode(message *bitvec.Vector) *bitvec.Vector {
	if message.None() {
		return message
	}

	n := CodewordBits(message.Len())
	word := placeMessage(message, n)

	// Ascending order: a check bit sees the already final lower ones.
	for i := uint(1); i < n; i <<= 1 {
		if groupParity(word, i, n) {
			word.Flip(i)
		}
	}

	word.Set(0, word.Parity())
	return word
}

// Decode recovers the messageLength-bit message from codeword, correcting a
// single flipped bit. An all-zero codeword is returned as is.
func Decode(codeword *bitvec.Vector, messageLength uint) (*bitvec.Vector, error) {
	message, _, err := DecodeReport(codeword, messageLength)
	return message, err
}

// DecodeReport is Decode with a description of the correction applied.
// The caller's codeword is never modified.
func DecodeReport(codeword *bitvec.Vector, messageLength uint) (*bitvec.Vector, Report, error) {
	var report Report
	if codeword.None() {
		return codeword, report, nil
	}

	k := MinimumCheckBits(messageLength)
	n := k + messageLength + 1
	if codeword.Len() < n {
		return nil, report, ErrCodewordLength
	}

	original := ExtractCheckBits(codeword, messageLength)
	prime := bitvec.New(k)
	current := uint(0)
	for i := uint(1); i < n; i <<= 1 {
		if groupParity(codeword, i, n) {
			prime.Flip(current)
		}
		current++
	}

	report.Syndrome = prime.Xor(original).Uint64()
	word := codeword.Clone()
	switch {
	case report.Syndrome == 0:
	case report.Syndrome < uint64(word.Len()):
		report.Position = uint(report.Syndrome)
		report.Corrected = true
		word.Flip(report.Position)
	default:
		return nil, report, &UncorrectableError{Kind: SyndromeOutOfRange, Syndrome: report.Syndrome}
	}

	// Parity counts G itself, so a set G inverts the result back to the
	// parity of the remaining bits.
	primeG := word.Parity()
	if word.Test(0) {
		primeG = !primeG
	}
	if primeG != word.Test(0) {
		if report.Corrected {
			return nil, report, &UncorrectableError{Kind: GlobalParityMismatch, Syndrome: report.Syndrome}
		}
		// Every group agrees, so the lone error is G. Unlike a plain
		// parity-mismatch failure, G is repaired so any single flip decodes.
		report.Corrected = true
		report.Position = 0
		word.Flip(0)
	}

	return ExtractMessageBits(word, messageLength), report, nil
}
