// Package day10 solves the factory machines: the fewest button presses
// that light the indicator panel, and the fewest that raise every joltage
// counter to its target.
package day10

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ffoxdd/advent-of-code-2025/bitvec"
	"github.com/ffoxdd/advent-of-code-2025/lincomb"
	"github.com/ffoxdd/advent-of-code-2025/statespace"
)

// ErrBadMachine indicates a machine line that does not parse.
var ErrBadMachine = errors.New("day10: bad machine")

// Toggle flips a fixed set of indicator lights. Pressing the same button
// twice restores the previous state.
type Toggle struct {
	Mask bitvec.Vector
}

// Apply XORs the toggle mask into the light state.
func (t Toggle) Apply(s bitvec.Vector) bitvec.Vector { return s.Xor(t.Mask) }

// Machine is one factory machine: the indicator light target, the buttons
// wired to lights and joltage counters, and the joltage targets.
type Machine struct {
	lightsTarget bitvec.Vector
	buttons      [][]int
	toggles      []Toggle
	joltages     []int64
}

// ParseMachines parses one machine per line.
func ParseMachines(lines []string) ([]Machine, error) {
	machines := make([]Machine, 0, len(lines))
	for _, line := range lines {
		m, err := ParseMachine(line)
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}

	return machines, nil
}

// ParseMachine parses a machine line of the form
//
//	[.#.#] (3) (1,3) (2) {3,5,4,7}
//
// an indicator light target, one index set per button, and the joltage
// targets. Buttons must name existing lights; joltage indices past the
// target dimension are legal and simply feed no counter.
func ParseMachine(line string) (Machine, error) {
	sections := strings.Fields(line)
	if len(sections) < 2 {
		return Machine{}, fmt.Errorf("%w: %q", ErrBadMachine, line)
	}

	lightsTarget, err := parseLights(sections[0])
	if err != nil {
		return Machine{}, fmt.Errorf("%w: %q", ErrBadMachine, line)
	}

	buttons := make([][]int, 0, len(sections)-2)
	toggles := make([]Toggle, 0, len(sections)-2)
	for _, section := range sections[1 : len(sections)-1] {
		button, err := parseButton(section)
		if err != nil {
			return Machine{}, fmt.Errorf("%w: %q", ErrBadMachine, line)
		}
		mask, err := bitvec.FromIndices(lightsTarget.Len(), button...)
		if err != nil {
			return Machine{}, fmt.Errorf("%w: %q: %v", ErrBadMachine, line, err)
		}
		buttons = append(buttons, button)
		toggles = append(toggles, Toggle{Mask: mask})
	}

	joltages, err := parseJoltages(sections[len(sections)-1])
	if err != nil {
		return Machine{}, fmt.Errorf("%w: %q", ErrBadMachine, line)
	}

	return Machine{
		lightsTarget: lightsTarget,
		buttons:      buttons,
		toggles:      toggles,
		joltages:     joltages,
	}, nil
}

// parseLights decodes a "[.#..]" section: '#' lights are on in the target.
func parseLights(section string) (bitvec.Vector, error) {
	body := strings.TrimRight(strings.TrimLeft(section, "["), "]")
	vals := make([]bool, len(body))
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '.':
		case '#':
			vals[i] = true
		default:
			return bitvec.Vector{}, fmt.Errorf("invalid light %q", body[i])
		}
	}

	return bitvec.FromBools(vals), nil
}

// parseButton decodes a "(1,3)" section into its index set.
func parseButton(section string) ([]int, error) {
	body := strings.TrimRight(strings.TrimLeft(section, "("), ")")
	fields := strings.Split(body, ",")
	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("negative index %d", v)
		}
		indices = append(indices, v)
	}

	return indices, nil
}

// parseJoltages decodes a "{3,5,4,7}" section into the target counters.
func parseJoltages(section string) ([]int64, error) {
	body := strings.TrimRight(strings.TrimLeft(section, "{"), "}")
	fields := strings.Split(body, ",")
	targets := make([]int64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("negative joltage %d", v)
		}
		targets = append(targets, v)
	}

	return targets, nil
}

// MinIndicatorLightPresses returns the fewest button presses that drive the
// panel from all-off to the target pattern.
func (m Machine) MinIndicatorLightPresses() (int, error) {
	initial := bitvec.New(m.lightsTarget.Len())

	return statespace.MinTransitions(initial, m.lightsTarget, m.toggles)
}

// MinJoltagePresses returns the fewest button presses that raise every
// joltage counter to its target. Each press adds one to every counter the
// button names.
func (m Machine) MinJoltagePresses() (int64, error) {
	counts, err := lincomb.Minimize(m.basisVectors(), m.joltages)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range counts {
		total += c
	}

	return total, nil
}

// basisVectors renders each button as its joltage contribution: one unit
// per named counter, regardless of how often the button names it. Indices
// beyond the joltage dimension feed no counter.
func (m Machine) basisVectors() [][]int64 {
	basis := make([][]int64, len(m.buttons))
	for i, button := range m.buttons {
		vec := make([]int64, len(m.joltages))
		for _, idx := range button {
			if idx < len(vec) {
				vec[idx] = 1
			}
		}
		basis[i] = vec
	}

	return basis
}

// TotalIndicatorLightPresses sums the indicator light answers over all
// machines. Machines are independent, so they are solved concurrently.
func TotalIndicatorLightPresses(machines []Machine) (int, error) {
	results := make([]int, len(machines))
	var g errgroup.Group
	for i, m := range machines {
		g.Go(func() error {
			n, err := m.MinIndicatorLightPresses()
			if err != nil {
				return err
			}
			results[i] = n

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int
	for _, n := range results {
		total += n
	}

	return total, nil
}

// TotalJoltagePresses sums the joltage answers over all machines, solving
// them concurrently.
func TotalJoltagePresses(machines []Machine) (int64, error) {
	results := make([]int64, len(machines))
	var g errgroup.Group
	for i, m := range machines {
		g.Go(func() error {
			n, err := m.MinJoltagePresses()
			if err != nil {
				return err
			}
			results[i] = n

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, n := range results {
		total += n
	}

	return total, nil
}

// Run solves the puzzle over raw input lines and writes both totals to w.
func Run(lines []string, w io.Writer) error {
	machines, err := ParseMachines(lines)
	if err != nil {
		return err
	}
	lights, err := TotalIndicatorLightPresses(machines)
	if err != nil {
		return err
	}
	joltages, err := TotalJoltagePresses(machines)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Minimum indicator lights button presses: %d\n", lights)
	fmt.Fprintf(w, "Minimum joltage button presses: %d\n", joltages)

	return nil
}
