// Package day05 audits the ingredient database: freshness ranges may
// overlap, so they are normalized into disjoint ranges before counting.
package day05

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrBadLine indicates an input line that parses as neither a range nor an
// ingredient id.
var ErrBadLine = errors.New("day05: bad line")

// Range is an inclusive id range with Start ≤ End.
type Range struct {
	Start uint64
	End   uint64
}

// Measure returns the number of ids the range covers.
func (r Range) Measure() uint64 { return r.End - r.Start + 1 }

// contains reports whether v lies inside the range.
func (r Range) contains(v uint64) bool { return v >= r.Start && v <= r.End }

// Database holds normalized freshness ranges and the available ids.
type Database struct {
	ranges    []Range
	available []uint64
}

// NewDatabase normalizes the ranges into disjoint ones and keeps the
// available ids as given. Ranges must satisfy Start ≤ End.
func NewDatabase(ranges []Range, available []uint64) *Database {
	return &Database{
		ranges:    normalize(ranges),
		available: available,
	}
}

// ParseDatabase reads freshness ranges ("min-max", one per line) up to a
// blank line, then available ingredient ids (one per line).
func ParseDatabase(lines []string) (*Database, error) {
	var ranges []Range
	i := 0
	for ; i < len(lines) && lines[i] != ""; i++ {
		r, err := parseRange(lines[i])
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	if i < len(lines) {
		i++ // the blank separator
	}

	var available []uint64
	for ; i < len(lines); i++ {
		id, err := strconv.ParseUint(lines[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadLine, lines[i], err)
		}
		available = append(available, id)
	}

	return NewDatabase(ranges, available), nil
}

func parseRange(line string) (Range, error) {
	minStr, maxStr, ok := strings.Cut(line, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrBadLine, line)
	}
	start, err := strconv.ParseUint(minStr, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadLine, line, err)
	}
	end, err := strconv.ParseUint(maxStr, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadLine, line, err)
	}
	if start > end {
		return Range{}, fmt.Errorf("%w: %q: inverted range", ErrBadLine, line)
	}

	return Range{Start: start, End: end}, nil
}

// FreshIngredientCount reports how many available ids fall in some range.
func (db *Database) FreshIngredientCount() int {
	var count int
	for _, id := range db.available {
		if db.isFresh(id) {
			count++
		}
	}

	return count
}

// KnownFreshIngredientCount reports the total number of ids the ranges
// cover; normalization makes plain summation correct.
func (db *Database) KnownFreshIngredientCount() uint64 {
	var total uint64
	for _, r := range db.ranges {
		total += r.Measure()
	}

	return total
}

func (db *Database) isFresh(id uint64) bool {
	for _, r := range db.ranges {
		if r.contains(id) {
			return true
		}
	}

	return false
}

// String lists the normalized ranges and available ids.
func (db *Database) String() string {
	var sb strings.Builder
	sb.WriteString("Fresh ingredients:\n")
	for _, r := range db.ranges {
		fmt.Fprintf(&sb, "  %d-%d\n", r.Start, r.End)
	}
	sb.WriteString("Available ingredients:\n")
	for _, id := range db.available {
		fmt.Fprintf(&sb, "  %d\n", id)
	}

	return sb.String()
}

// normalize makes the ranges pairwise disjoint without changing the id set
// they cover. Largest ranges are kept whole first, so any range fully
// contained in a kept one simply drops out; ties keep input order.
func normalize(ranges []Range) []Range {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Measure() > sorted[j].Measure()
	})

	kept := make([]Range, 0, len(sorted))
	for _, candidate := range sorted {
		c, ok := candidate, true
		for _, k := range kept {
			if c, ok = trim(c, k); !ok {
				break
			}
		}
		if ok {
			kept = append(kept, c)
		}
	}

	return kept
}

// trim shaves the ends of candidate that fall inside kept. The second
// return is false when nothing of candidate survives. A kept range touching
// the id-space boundary absorbs everything on that side.
func trim(candidate, kept Range) (Range, bool) {
	if kept.contains(candidate.Start) {
		if kept.End == ^uint64(0) {
			return Range{}, false
		}
		candidate.Start = kept.End + 1
	}
	if kept.contains(candidate.End) {
		if kept.Start == 0 {
			return Range{}, false
		}
		candidate.End = kept.Start - 1
	}
	if candidate.Start > candidate.End {
		return Range{}, false
	}

	return candidate, true
}

// Run parses the database and reports both freshness counts.
func Run(lines []string, w io.Writer) error {
	db, err := ParseDatabase(lines)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Fresh ingredient count: %d\n", db.FreshIngredientCount())
	fmt.Fprintf(w, "Known fresh ingredient count: %d\n", db.KnownFreshIngredientCount())

	return nil
}
