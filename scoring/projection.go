package scoring

import (
	"Pickem/bracket"
	"Pickem/models"
)

// Projection bounds one user's final score. Guaranteed is the points already
// earned; under per-game picks no undecided pick is ever certain, so the
// worst case equals the current total. BestCase additionally credits every
// undecided picked game the picked team can still reach.
type Projection struct {
	Guaranteed int `json:"guaranteed"`
	BestCase   int `json:"best_case"`
}

// Project computes one user's score bounds from their picks.
func Project(byID map[uint]*models.Game, picks []models.Pick, weights bracket.Weights) Projection {
	var proj Projection
	for _, p := range picks {
		g, ok := byID[p.GameID]
		if !ok {
			continue
		}
		w := weights.Points(bracket.Round(g.Round))
		if g.Decided() {
			if *g.Winner == p.TeamName {
				proj.Guaranteed += w
				proj.BestCase += w
			}
			continue
		}
		if canReach(byID, g, p.TeamName) {
			proj.BestCase += w
		}
	}
	return proj
}

// canReach reports whether team can still end up in one of g's slots: it is
// already there, or an unresolved slot's feeder chain is undecided and the
// team survives somewhere inside it. A team eliminated upstream fails the
// walk because its losing game is decided.
func canReach(byID map[uint]*models.Game, g *models.Game, team string) bool {
	if g.Has(team) {
		return true
	}
	if g.Team1 == nil && g.Feeder1ID != nil {
		if f, ok := byID[*g.Feeder1ID]; ok && !f.Decided() && canReach(byID, f, team) {
			return true
		}
	}
	if g.Team2 == nil && g.Feeder2ID != nil {
		if f, ok := byID[*g.Feeder2ID]; ok && !f.Decided() && canReach(byID, f, team) {
			return true
		}
	}
	return false
}
