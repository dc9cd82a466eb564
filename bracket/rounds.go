package bracket

import "fmt"

// Round identifies one of the six tournament rounds, in playing order.
type Round int

const (
	Round1 Round = iota
	Round2
	Sweet16
	Elite8
	FinalFour
	Championship
)

const NumRounds = 6

var roundNames = [NumRounds]string{
	"Round of 64",
	"Round of 32",
	"Sweet 16",
	"Elite 8",
	"Final Four",
	"Championship",
}

// gamesPerRound is fixed by the 64-team format.
var gamesPerRound = [NumRounds]int{32, 16, 8, 4, 2, 1}

// roundIDBase gives the first game id of each round minus one. Game ids are
// deterministic: round base + slot + 1, so re-materializing a round after an
// invalidation produces the same ids.
var roundIDBase = [NumRounds]int{0, 32, 48, 56, 60, 62}

func (r Round) Valid() bool {
	return r >= Round1 && r <= Championship
}

func (r Round) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Round(%d)", int(r))
	}
	return roundNames[r]
}

// Next returns the following round, or false from the Championship.
func (r Round) Next() (Round, bool) {
	if r >= Championship {
		return Championship, false
	}
	return r + 1, true
}

// Rounds returns all rounds in playing order.
func Rounds() []Round {
	out := make([]Round, 0, NumRounds)
	for r := Round1; r <= Championship; r++ {
		out = append(out, r)
	}
	return out
}

// GamesInRound returns how many games the round holds once materialized.
func GamesInRound(r Round) int {
	if !r.Valid() {
		return 0
	}
	return gamesPerRound[r]
}

// GameID returns the deterministic id of the game at the given slot of a
// round. Slots count in pairing order across the whole bracket.
func GameID(r Round, slot int) uint {
	return uint(roundIDBase[r] + slot + 1)
}

// ParseRound resolves a round from its display name or numeric index.
func ParseRound(s string) (Round, error) {
	for i, name := range roundNames {
		if name == s {
			return Round(i), nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(s, "%d", &idx); err == nil {
		r := Round(idx)
		if r.Valid() {
			return r, nil
		}
	}
	return Round1, fmt.Errorf("unknown round %q", s)
}

// Weights maps a round to the points a correct pick in that round is worth.
// The zero table is never used directly; callers go through Points.
type Weights map[Round]int

// DefaultWeights mirrors the original pool rules: every round worth one
// point. Override per round via round_weights in the bracket configuration.
func DefaultWeights() Weights {
	w := make(Weights, NumRounds)
	for r := Round1; r <= Championship; r++ {
		w[r] = 1
	}
	return w
}

// Points returns the configured weight for a round, defaulting to 1 for any
// round the table does not mention.
func (w Weights) Points(r Round) int {
	if v, ok := w[r]; ok {
		return v
	}
	return 1
}

// MaxPoints is the highest score a perfect bracket could earn: every game in
// every round picked correctly.
func (w Weights) MaxPoints() int {
	total := 0
	for r := Round1; r <= Championship; r++ {
		total += GamesInRound(r) * w.Points(r)
	}
	return total
}
