package scoring

import (
	"sort"

	"Pickem/models"
)

// Upset is a decided game won by the numerically weaker seed.
type Upset struct {
	GameID       uint   `json:"game_id"`
	Round        int    `json:"round"`
	Region       string `json:"region"`
	Winner       string `json:"winner"`
	WinnerSeed   int    `json:"winner_seed"`
	Loser        string `json:"loser"`
	LoserSeed    int    `json:"loser_seed"`
	Differential int    `json:"differential"`
}

// Upsets scans every decided game and ranks the upsets: biggest seed
// differential first, then earlier round, then game id. A game between two
// teams of equal seed is never an upset.
func Upsets(games []models.Game, seeds map[string]int) []Upset {
	var out []Upset
	for i := range games {
		g := &games[i]
		loser, ok := g.Loser()
		if !ok {
			continue
		}
		ws, wok := seeds[*g.Winner]
		ls, lok := seeds[loser]
		if !wok || !lok || ws <= ls {
			continue
		}
		out = append(out, Upset{
			GameID:       g.ID,
			Round:        g.Round,
			Region:       g.Region,
			Winner:       *g.Winner,
			WinnerSeed:   ws,
			Loser:        loser,
			LoserSeed:    ls,
			Differential: ws - ls,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Differential != out[j].Differential {
			return out[i].Differential > out[j].Differential
		}
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		return out[i].GameID < out[j].GameID
	})
	return out
}
