// Package day02 sums the invalid product ids: ids whose decimal form is a
// shorter digit block repeated two or more times.
package day02

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadRange indicates a range token that is not <start>-<end>.
var ErrBadRange = errors.New("day02: bad range")

// Answer sums every repeated id inside the comma-separated inclusive
// ranges found across the input lines.
func Answer(lines []string) (uint64, error) {
	var sum uint64
	for _, line := range lines {
		for _, piece := range strings.Split(line, ",") {
			start, end, err := parseRange(strings.TrimSpace(piece))
			if err != nil {
				return 0, err
			}
			for id := start; id <= end; id++ {
				if IsRepeated(id) {
					sum += id
				}
			}
		}
	}

	return sum, nil
}

// IsRepeated reports whether the decimal form of n is a whole number of
// copies (at least two) of its leading digit block.
func IsRepeated(n uint64) bool {
	s := strconv.FormatUint(n, 10)
	for size := 1; size <= len(s)/2; size++ {
		// Sizes that do not divide the length cannot tile it.
		if len(s)%size == 0 && repeatsOfSize(s, size) {
			return true
		}
	}

	return false
}

// repeatsOfSize reports whether s is repetitions of its leading size bytes.
// size must divide len(s).
func repeatsOfSize(s string, size int) bool {
	head := s[:size]
	for i := size; i < len(s); i += size {
		if s[i:i+size] != head {
			return false
		}
	}

	return true
}

// parseRange parses an inclusive "<start>-<end>" token.
func parseRange(s string) (uint64, uint64, error) {
	startStr, endStr, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	start, err := strconv.ParseUint(startStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}
	end, err := strconv.ParseUint(endStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}

	return start, end, nil
}

// Run solves the puzzle over raw input lines and writes the answer to w.
func Run(lines []string, w io.Writer) error {
	sum, err := Answer(lines)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Answer: %d\n", sum)

	return nil
}
