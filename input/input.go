// Package input loads puzzle inputs from disk.
//
// Inputs live in one directory, one file per day, named day01.txt through
// day25.txt. The directory defaults to "input" relative to the working
// directory and can be overridden through the ADVENT_INPUT_DIR environment
// variable.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirEnv names the environment variable that overrides the input directory.
const DirEnv = "ADVENT_INPUT_DIR"

// defaultDir applies when DirEnv is unset or empty.
const defaultDir = "input"

// ErrDayOutOfRange indicates a day outside 1..25.
var ErrDayOutOfRange = errors.New("input: day out of range")

// Path returns the file path holding the given day's input, honoring
// DirEnv. The file itself is not touched.
func Path(day int) (string, error) {
	if day < 1 || day > 25 {
		return "", fmt.Errorf("%w: %d (want 1..25)", ErrDayOutOfRange, day)
	}
	dir := os.Getenv(DirEnv)
	if dir == "" {
		dir = defaultDir
	}

	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day)), nil
}

// Lines reads the given day's input and splits it into lines. Line endings
// are normalized, the trailing newline produces no empty final line, and
// interior blank lines are preserved. Read failures are wrapped with the
// path so callers see which file was missing.
func Lines(day int) ([]string, error) {
	path, err := Path(day)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}

	return strings.Split(text, "\n"), nil
}
