// Package day03 maximizes battery bank joltage: each bank powers exactly
// twelve slots, filled left to right with the best battery still reachable.
package day03

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// activeBatteryCount is the number of batteries a bank drives at once.
const activeBatteryCount = 12

// ErrBadBank indicates a bank line that is too short or not digits 1..9.
var ErrBadBank = errors.New("day03: bad battery bank")

// Bank is one line of battery joltages, each in 1..9.
type Bank []uint8

// ParseBanks parses one bank per line.
func ParseBanks(lines []string) ([]Bank, error) {
	banks := make([]Bank, 0, len(lines))
	for _, line := range lines {
		bank, err := parseBank(line)
		if err != nil {
			return nil, err
		}
		banks = append(banks, bank)
	}

	return banks, nil
}

func parseBank(line string) (Bank, error) {
	if len(line) < activeBatteryCount {
		return nil, fmt.Errorf("%w: need at least %d batteries, got %d",
			ErrBadBank, activeBatteryCount, len(line))
	}

	bank := make(Bank, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '1' || c > '9' {
			return nil, fmt.Errorf("%w: %q is not a joltage digit", ErrBadBank, c)
		}
		bank[i] = c - '0'
	}

	return bank, nil
}

// MaximumJoltage picks the twelve in-order batteries producing the largest
// twelve-digit reading. Each slot takes the leftmost maximum whose position
// still leaves enough batteries for the remaining slots.
func (b Bank) MaximumJoltage() uint64 {
	var result uint64
	start := 0
	for slot := 0; slot < activeBatteryCount; slot++ {
		end := len(b) - activeBatteryCount + slot + 1
		pick := maxIndex(b, start, end)
		result = result*10 + uint64(b[pick])
		start = pick + 1
	}

	return result
}

// String renders the bank as its digit string.
func (b Bank) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, j := range b {
		sb.WriteByte('0' + j)
	}

	return sb.String()
}

// maxIndex returns the index of the leftmost maximum in [start, end).
func maxIndex(b Bank, start, end int) int {
	pick := start
	for i := start; i < end; i++ {
		if b[i] > b[pick] {
			pick = i
		}
	}

	return pick
}

// Sum totals the maximum joltage across banks.
func Sum(banks []Bank) uint64 {
	var sum uint64
	for _, bank := range banks {
		sum += bank.MaximumJoltage()
	}

	return sum
}

// Run solves the puzzle over raw input lines and writes the total to w.
func Run(lines []string, w io.Writer) error {
	banks, err := ParseBanks(lines)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Sum: %d\n", Sum(banks))

	return nil
}
