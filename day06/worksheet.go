// Package day06 grades the cephalopod math worksheet. Problems sit in
// columns separated by all-whitespace character columns; the bottom line
// holds each problem's operator. Part one reads numbers across their lines,
// part two reads them down the character columns.
package day06

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadProblem indicates a column that does not form numbers plus a
// trailing operator.
var ErrBadProblem = errors.New("day06: bad problem")

// Operation is a problem's combining operator.
type Operation byte

const (
	// Add sums the numbers.
	Add Operation = '+'
	// Multiply multiplies them.
	Multiply Operation = '*'
)

// Problem is one worksheet column: its numbers and operator.
type Problem struct {
	numbers   []uint16
	operation Operation
}

// answer applies the operation across the numbers.
func (p Problem) answer() uint64 {
	if p.operation == Add {
		var sum uint64
		for _, n := range p.numbers {
			sum += uint64(n)
		}

		return sum
	}

	product := uint64(1)
	for _, n := range p.numbers {
		product *= uint64(n)
	}

	return product
}

// Worksheet is a parsed set of problems.
type Worksheet struct {
	problems []Problem
}

// Answer sums every problem's result.
func (ws *Worksheet) Answer() uint64 {
	var total uint64
	for _, p := range ws.problems {
		total += p.answer()
	}

	return total
}

// ParsePart1 reads each problem's numbers across their own lines.
func ParsePart1(lines []string) (*Worksheet, error) {
	columns, err := problemColumns(lines)
	if err != nil {
		return nil, err
	}

	problems := make([]Problem, 0, len(columns))
	for _, column := range columns {
		tokens := make([]string, len(column))
		for i, word := range column {
			tokens[i] = strings.TrimSpace(word)
		}
		p, err := parseProblem(tokens)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}

	return &Worksheet{problems: problems}, nil
}

// ParsePart2 reads each problem's numbers down its character columns.
func ParsePart2(lines []string) (*Worksheet, error) {
	columns, err := problemColumns(lines)
	if err != nil {
		return nil, err
	}

	problems := make([]Problem, 0, len(columns))
	for _, column := range columns {
		tokens, err := characterColumns(column)
		if err != nil {
			return nil, err
		}
		p, err := parseProblem(tokens)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}

	return &Worksheet{problems: problems}, nil
}

// problemColumns splits the worksheet at whitespace columns and transposes
// it into one token column per problem.
func problemColumns(lines []string) ([][]string, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty worksheet", ErrBadProblem)
	}

	return pivot(splitAtColumns(lines)), nil
}

// splitAtColumns cuts the lines at all-whitespace character columns,
// yielding one word per segment per line. The scan runs one past the first
// line's width so the final segment flushes; characters past a line's end
// count as whitespace.
func splitAtColumns(lines []string) [][]string {
	words := make([][]string, len(lines))
	start := 0
	for index := 0; index <= len(lines[0]); index++ {
		if !whitespaceColumn(lines, index) {
			continue
		}
		for i, line := range lines {
			words[i] = append(words[i], segment(line, start, index))
		}
		start = index + 1
	}

	return words
}

// whitespaceColumn reports whether every line is blank at the column.
func whitespaceColumn(lines []string, index int) bool {
	for _, line := range lines {
		if index < len(line) && line[index] != ' ' && line[index] != '\t' {
			return false
		}
	}

	return true
}

// segment returns line[start:end) with both bounds clamped to the line.
func segment(line string, start, end int) string {
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}

	return line[start:end]
}

// pivot transposes a rectangular string grid.
func pivot(grid [][]string) [][]string {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil
	}

	out := make([][]string, len(grid[0]))
	for c := range out {
		column := make([]string, len(grid))
		for r := range grid {
			column[r] = grid[r][c]
		}
		out[c] = column
	}

	return out
}

// characterColumns rewrites one problem column for part two: the number
// words, padded with spaces to equal width, are read down each character
// position; the operator stays last.
func characterColumns(column []string) ([]string, error) {
	if len(column) == 0 {
		return nil, fmt.Errorf("%w: empty column", ErrBadProblem)
	}

	op := strings.TrimSpace(column[len(column)-1])
	words := column[:len(column)-1]

	var width int
	for _, word := range words {
		if len(word) > width {
			width = len(word)
		}
	}

	tokens := make([]string, 0, width+1)
	for c := 0; c < width; c++ {
		var sb strings.Builder
		for _, word := range words {
			if c < len(word) {
				sb.WriteByte(word[c])
			} else {
				sb.WriteByte(' ')
			}
		}
		tokens = append(tokens, strings.TrimSpace(sb.String()))
	}

	return append(tokens, op), nil
}

// parseProblem takes trimmed tokens, numbers first and operator last.
func parseProblem(tokens []string) (Problem, error) {
	if len(tokens) == 0 {
		return Problem{}, fmt.Errorf("%w: empty problem", ErrBadProblem)
	}

	var op Operation
	switch tokens[len(tokens)-1] {
	case "+":
		op = Add
	case "*":
		op = Multiply
	default:
		return Problem{}, fmt.Errorf("%w: invalid operation %q", ErrBadProblem, tokens[len(tokens)-1])
	}

	numbers := make([]uint16, 0, len(tokens)-1)
	for _, tok := range tokens[:len(tokens)-1] {
		n, err := strconv.ParseUint(tok, 10, 16)
		if err != nil {
			return Problem{}, fmt.Errorf("%w: invalid number %q: %v", ErrBadProblem, tok, err)
		}
		numbers = append(numbers, uint16(n))
	}

	return Problem{numbers: numbers, operation: op}, nil
}

// Run grades the worksheet both ways and writes the answers to w.
func Run(lines []string, w io.Writer) error {
	part1, err := ParsePart1(lines)
	if err != nil {
		return err
	}
	part2, err := ParsePart2(lines)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Answer (Part 1): %d\n", part1.Answer())
	fmt.Fprintf(w, "Answer (Part 2): %d\n", part2.Answer())

	return nil
}
