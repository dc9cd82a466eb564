// Package scoring computes standings, team status, pick popularity, and
// upset rankings from the recorded bracket state. Like progression, every
// function is pure over already-loaded rows; running it twice on the same
// inputs yields identical output.
package scoring

import (
	"fmt"
	"sort"

	"Pickem/bracket"
	"Pickem/models"
)

// Status classifies a team from recorded results only, independent of picks.
type Status string

const (
	StillIn Status = "stillIn"
	Out     Status = "out"
)

// Options tunes scoring behavior.
type Options struct {
	// StrictUsers makes a pick referencing a user with no row an error
	// instead of an ad hoc standings entry.
	StrictUsers bool
}

// UserScore is one standings row. Group numbers start at 1 and increment at
// every score boundary, so tied users share a group.
type UserScore struct {
	UserID     uint   `json:"user_id"`
	FullName   string `json:"full_name"`
	Points     int    `json:"points"`
	Guaranteed int    `json:"guaranteed"`
	BestCase   int    `json:"best_case"`
	Group      int    `json:"group"`
}

// TeamStatuses derives stillIn/out for every team appearing in a game slot.
// A team is out the moment any decided game records it as the loser.
func TeamStatuses(games []models.Game) map[string]Status {
	out := make(map[string]Status)
	for i := range games {
		g := &games[i]
		for _, slot := range []*string{g.Team1, g.Team2} {
			if slot != nil {
				if _, seen := out[*slot]; !seen {
					out[*slot] = StillIn
				}
			}
		}
	}
	for i := range games {
		if loser, ok := games[i].Loser(); ok {
			out[loser] = Out
		}
	}
	return out
}

// Score totals each user's points under the supplied round weights and
// returns standings sorted by points descending, name ascending, with tie
// groups marked. A pick on an undecided game contributes nothing now but
// feeds the best-case column when its team can still reach that game.
func Score(games []models.Game, picks []models.Pick, users []models.User, weights bracket.Weights, opts Options) ([]UserScore, error) {
	byID := make(map[uint]*models.Game, len(games))
	for i := range games {
		byID[games[i].ID] = &games[i]
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}

	byUser := make(map[uint][]models.Pick)
	for _, p := range picks {
		if _, ok := names[p.UserID]; !ok {
			if opts.StrictUsers {
				return nil, fmt.Errorf("%w: id %d", models.ErrUnknownUser, p.UserID)
			}
			names[p.UserID] = fmt.Sprintf("User #%d", p.UserID)
		}
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	scores := make([]UserScore, 0, len(names))
	for uid, name := range names {
		proj := Project(byID, byUser[uid], weights)
		scores = append(scores, UserScore{
			UserID:     uid,
			FullName:   name,
			Points:     proj.Guaranteed,
			Guaranteed: proj.Guaranteed,
			BestCase:   proj.BestCase,
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Points != scores[j].Points {
			return scores[i].Points > scores[j].Points
		}
		return scores[i].FullName < scores[j].FullName
	})
	group := 0
	for i := range scores {
		if i == 0 || scores[i].Points != scores[i-1].Points {
			group++
		}
		scores[i].Group = group
	}
	return scores, nil
}
