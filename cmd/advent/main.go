// Command advent prints the answers for one Advent of Code 2025 day.
//
// Usage:
//
//	advent <day>            # reads input/dayNN.txt
//	advent --input dir 7    # reads dir/day07.txt
package main

import (
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ffoxdd/advent-of-code-2025/day01"
	"github.com/ffoxdd/advent-of-code-2025/day02"
	"github.com/ffoxdd/advent-of-code-2025/day03"
	"github.com/ffoxdd/advent-of-code-2025/day04"
	"github.com/ffoxdd/advent-of-code-2025/day05"
	"github.com/ffoxdd/advent-of-code-2025/day06"
	"github.com/ffoxdd/advent-of-code-2025/day07"
	"github.com/ffoxdd/advent-of-code-2025/day08"
	"github.com/ffoxdd/advent-of-code-2025/day09"
	"github.com/ffoxdd/advent-of-code-2025/day10"
	"github.com/ffoxdd/advent-of-code-2025/day11"
	"github.com/ffoxdd/advent-of-code-2025/day12"
	"github.com/ffoxdd/advent-of-code-2025/input"
)

// days dispatches a day number to its solution.
var days = map[int]func(lines []string, w io.Writer) error{
	1:  day01.Run,
	2:  day02.Run,
	3:  day03.Run,
	4:  day04.Run,
	5:  day05.Run,
	6:  day06.Run,
	7:  day07.Run,
	8:  day08.Run,
	9:  day09.Run,
	10: day10.Run,
	11: day11.Run,
	12: day12.Run,
}

var (
	inputDir string

	rootCmd = &cobra.Command{
		Use:   "advent <day>",
		Short: "Print the answers for one Advent of Code 2025 day",
		Args:  cobra.ExactArgs(1),
		Run:   runDay,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&inputDir, "input", "",
		"Directory holding dayNN.txt input files (default \"input\", or $"+input.DirEnv+")")
}

func runDay(cmd *cobra.Command, args []string) {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("Invalid day %q: want a number between 1 and %d", args[0], len(days))
	}
	solve, ok := days[day]
	if !ok {
		log.Fatalf("No solution for day %d: want 1..%d", day, len(days))
	}

	if inputDir != "" {
		if err := os.Setenv(input.DirEnv, inputDir); err != nil {
			log.Fatalf("Setting %s: %v", input.DirEnv, err)
		}
	}

	lines, err := input.Lines(day)
	if err != nil {
		log.Fatalf("Loading input: %v", err)
	}
	if err := solve(lines, os.Stdout); err != nil {
		log.Fatalf("Day %d: %v", day, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
