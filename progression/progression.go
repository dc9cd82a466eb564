// Package progression reconstructs the bracket's current round, synthesizes
// the next round from recorded winners, and propagates winner corrections
// downstream. Every function is a pure computation over a loaded game list;
// persistence stays with the caller, which is expected to apply the results
// inside a single transaction.
package progression

import (
	"sort"

	"Pickem/bracket"
	"Pickem/models"
)

// CurrentRound is the earliest round containing an undecided game. When
// every materialized game is decided it is the last round that has games:
// once the Championship is decided that is the terminal round.
func CurrentRound(games []models.Game) bracket.Round {
	byRound := groupByRound(games)
	last := bracket.Round1
	for _, r := range bracket.Rounds() {
		gs := byRound[r]
		if len(gs) == 0 {
			break
		}
		last = r
		for i := range gs {
			if !gs[i].Decided() {
				return r
			}
		}
	}
	return last
}

// RoundPlan is the outcome of one try-advance step: the games to create for
// a newly reachable round.
type RoundPlan struct {
	Round bracket.Round
	Games []models.Game
}

// Plan walks the fixed round order and returns the first round whose feeder
// round is fully decided but whose games do not exist yet, with the games to
// create. It returns nil when no round is ready, making the step idempotent.
//
// Consecutive feeder games (2i, 2i+1) pair into game i of the next round.
// Slots are assigned region-major in declaration order at seed time, so the
// same pairing rule carries regions through the Elite 8 and then collapses
// them into the Final Four and Championship.
func Plan(games []models.Game) *RoundPlan {
	byRound := groupByRound(games)
	for _, r := range bracket.Rounds() {
		gs := byRound[r]
		if len(gs) == 0 {
			return nil
		}
		for i := range gs {
			if !gs[i].Decided() {
				return nil
			}
		}
		next, ok := r.Next()
		if !ok {
			return nil
		}
		if len(byRound[next]) > 0 {
			continue
		}
		return &RoundPlan{Round: next, Games: pairRound(gs, next)}
	}
	return nil
}

func pairRound(feeders []models.Game, next bracket.Round) []models.Game {
	sort.Slice(feeders, func(i, j int) bool { return feeders[i].Slot < feeders[j].Slot })
	out := make([]models.Game, 0, len(feeders)/2)
	for i := 0; i+1 < len(feeders); i += 2 {
		a, b := feeders[i], feeders[i+1]
		t1 := *a.Winner
		t2 := *b.Winner
		f1, f2 := a.ID, b.ID
		out = append(out, models.Game{
			ID:        bracket.GameID(next, i/2),
			Round:     int(next),
			Region:    groupingFor(next, a),
			Slot:      i / 2,
			Team1:     &t1,
			Team2:     &t2,
			Feeder1ID: &f1,
			Feeder2ID: &f2,
		})
	}
	return out
}

// groupingFor keeps the feeder's region through the Elite 8 and switches to
// the round name once regions have collapsed.
func groupingFor(next bracket.Round, feeder models.Game) string {
	if next <= bracket.Elite8 {
		return feeder.Region
	}
	return next.String()
}

// ApplyWinner records a winner on the identified game and silently replays
// the consequences downstream: dependent slots are re-resolved and any
// recorded winner that rested on a changed slot is cleared, transitively.
// The game list is mutated in place; the returned ids are the games whose
// rows changed. Setting the already-recorded winner again changes nothing.
func ApplyWinner(games []models.Game, gameID uint, winner string) ([]uint, error) {
	byID := make(map[uint]*models.Game, len(games))
	for i := range games {
		byID[games[i].ID] = &games[i]
	}
	g, ok := byID[gameID]
	if !ok {
		return nil, models.ErrUnknownGame
	}
	if !g.Ready() {
		return nil, models.ErrGameNotReady
	}
	if !g.Has(winner) {
		return nil, models.ErrInvalidWinner
	}
	if g.Winner != nil && *g.Winner == winner {
		return nil, nil
	}
	w := winner
	g.Winner = &w
	changed := []uint{g.ID}
	changed = append(changed, propagate(games, g)...)
	return changed, nil
}

// propagate pushes g's (possibly nil) winner into the slots of games fed by
// g. A slot change invalidates that game's own winner, which recurses until
// the cascade bottoms out.
func propagate(games []models.Game, g *models.Game) []uint {
	var changed []uint
	for i := range games {
		d := &games[i]
		touched := false
		if d.Feeder1ID != nil && *d.Feeder1ID == g.ID && !equalSlot(d.Team1, g.Winner) {
			d.Team1 = copySlot(g.Winner)
			touched = true
		}
		if d.Feeder2ID != nil && *d.Feeder2ID == g.ID && !equalSlot(d.Team2, g.Winner) {
			d.Team2 = copySlot(g.Winner)
			touched = true
		}
		if !touched {
			continue
		}
		changed = append(changed, d.ID)
		if d.Winner != nil {
			d.Winner = nil
			changed = append(changed, propagate(games, d)...)
		}
	}
	return changed
}

func groupByRound(games []models.Game) map[bracket.Round][]models.Game {
	out := make(map[bracket.Round][]models.Game, bracket.NumRounds)
	for _, g := range games {
		r := bracket.Round(g.Round)
		out[r] = append(out[r], g)
	}
	return out
}

func equalSlot(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copySlot(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
