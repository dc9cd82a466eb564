package scoring

import (
	"sort"

	"Pickem/models"
)

// TopN is how many teams each popularity list carries.
const TopN = 10

// TeamCount is one popularity entry: a surviving team and how many picks
// selected it.
type TeamCount struct {
	Team  string `json:"team"`
	Seed  int    `json:"seed"`
	Count int    `json:"count"`
}

// Popularity ranks the surviving teams by pick count: most-picked first in
// the first list, least-picked first in the second, top 10 each, ties broken
// by team name ascending. Eliminated teams never appear, no matter how many
// picks they collected.
func Popularity(games []models.Game, picks []models.Pick, seeds map[string]int) (most, least []TeamCount) {
	statuses := TeamStatuses(games)
	counts := make(map[string]int)
	for team, st := range statuses {
		if st == StillIn {
			counts[team] = 0
		}
	}
	for _, p := range picks {
		if _, alive := counts[p.TeamName]; alive {
			counts[p.TeamName]++
		}
	}

	entries := make([]TeamCount, 0, len(counts))
	for team, n := range counts {
		entries = append(entries, TeamCount{Team: team, Seed: seeds[team], Count: n})
	}

	most = rank(entries, func(a, b TeamCount) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Team < b.Team
	})
	least = rank(entries, func(a, b TeamCount) bool {
		if a.Count != b.Count {
			return a.Count < b.Count
		}
		return a.Team < b.Team
	})
	return most, least
}

func rank(entries []TeamCount, less func(a, b TeamCount) bool) []TeamCount {
	out := make([]TeamCount, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > TopN {
		out = out[:TopN]
	}
	return out
}
