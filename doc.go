// Package advent solves the twelve puzzle days of Advent of Code 2025,
// built around two reusable engines: a fewest-transitions searcher over
// implicit state spaces and a minimal integer-combination solver.
//
// What is in the box?
//
//	A small workshop of solvers that brings together:
//		• Engines: level-synchronous search (statespace), CP-SAT combinations (lincomb)
//		• Primitives: comparable bit vectors (bitvec), byte grids (grid)
//		• Puzzles: one package per day, day01 through day12
//		• Plumbing: puzzle input loading (input), a cobra CLI (cmd/advent)
//
// Everything is organized under flat subpackages:
//
//	bitvec/     fixed-width bit vectors; comparable, so they index maps
//	statespace/ fewest transitions between two states of any comparable type
//	lincomb/    minimal non-negative integer combinations reaching a target
//	grid/       rectangular byte grids with fixed-order 8-neighborhoods
//	input/      one input file per day, directory overridable by env
//	day01..12/  the puzzles; each exposes Run(lines, w)
//	cmd/advent/ the binary: advent <day>
//
// Quick example, day 10's inner loop:
//
//	presses, err := statespace.MinTransitions(bitvec.New(5), target, toggles)
//
//	finds how many button presses light an indicator panel.
//
// Dive into the per-package docs for the solver contracts and options.
//
//	go get github.com/ffoxdd/advent-of-code-2025
package advent
