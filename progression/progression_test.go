package progression

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"Pickem/bracket"
	"Pickem/models"
)

var testRegions = []string{"East", "West", "South", "Midwest"}

func teamName(region string, seed int) string {
	return fmt.Sprintf("%s %d", region, seed)
}

// roundOneGames builds the 32 first-round games the seeder would create:
// region-major, seed pairing order within each region.
func roundOneGames() []models.Game {
	var games []models.Game
	slot := 0
	for _, region := range testRegions {
		for _, pair := range bracket.FirstRoundPairings {
			t1 := teamName(region, pair[0])
			t2 := teamName(region, pair[1])
			games = append(games, models.Game{
				ID:     bracket.GameID(bracket.Round1, slot),
				Round:  int(bracket.Round1),
				Region: region,
				Slot:   slot,
				Team1:  &t1,
				Team2:  &t2,
			})
			slot++
		}
	}
	return games
}

// decideRound records Team1 as the winner of every undecided game in r.
func decideRound(t *testing.T, games []models.Game, r bracket.Round) []models.Game {
	t.Helper()
	for i := range games {
		if games[i].Round == int(r) && !games[i].Decided() {
			_, err := ApplyWinner(games, games[i].ID, *games[i].Team1)
			assert.NoError(t, err)
		}
	}
	return games
}

// playTo decides rounds Team1-forward and materializes successors until the
// target round exists.
func playTo(t *testing.T, target bracket.Round) []models.Game {
	t.Helper()
	games := roundOneGames()
	for r := bracket.Round1; r < target; r++ {
		games = decideRound(t, games, r)
		plan := Plan(games)
		assert.NotNil(t, plan)
		assert.Equal(t, r+1, plan.Round)
		games = append(games, plan.Games...)
	}
	return games
}

func TestCurrentRoundFreshBracket(t *testing.T) {
	games := roundOneGames()
	assert.Equal(t, bracket.Round1, CurrentRound(games))
	assert.Nil(t, Plan(games))
}

func TestPlanPairsConsecutiveWinners(t *testing.T) {
	games := decideRound(t, roundOneGames(), bracket.Round1)

	plan := Plan(games)
	assert.NotNil(t, plan)
	assert.Equal(t, bracket.Round2, plan.Round)
	assert.Len(t, plan.Games, 16)

	first := plan.Games[0]
	assert.Equal(t, bracket.GameID(bracket.Round2, 0), first.ID)
	assert.Equal(t, "East", first.Region)
	assert.Equal(t, "East 1", *first.Team1)
	assert.Equal(t, "East 8", *first.Team2)
	assert.Equal(t, uint(1), *first.Feeder1ID)
	assert.Equal(t, uint(2), *first.Feeder2ID)

	for i, g := range plan.Games {
		assert.Equal(t, i, g.Slot)
		assert.Nil(t, g.Winner)
	}

	games = append(games, plan.Games...)
	assert.Equal(t, bracket.Round2, CurrentRound(games))
	assert.Nil(t, Plan(games), "advance must be idempotent once the round exists")
}

func TestFinalFourPairsRegionsInDeclarationOrder(t *testing.T) {
	games := playTo(t, bracket.FinalFour)

	var ff []models.Game
	for _, g := range games {
		if g.Round == int(bracket.FinalFour) {
			ff = append(ff, g)
		}
	}
	assert.Len(t, ff, 2)
	assert.Equal(t, "Final Four", ff[0].Region)
	assert.Equal(t, "East 1", *ff[0].Team1)
	assert.Equal(t, "West 1", *ff[0].Team2)
	assert.Equal(t, "South 1", *ff[1].Team1)
	assert.Equal(t, "Midwest 1", *ff[1].Team2)
}

func TestChampionshipIsTerminal(t *testing.T) {
	games := playTo(t, bracket.Championship)
	assert.Len(t, games, 63)

	games = decideRound(t, games, bracket.Championship)
	assert.Equal(t, bracket.Championship, CurrentRound(games))
	assert.Nil(t, Plan(games))
}

func TestWinnerChangeClearsDownstream(t *testing.T) {
	games := playTo(t, bracket.Sweet16)
	sweetID := bracket.GameID(bracket.Sweet16, 0)
	_, err := ApplyWinner(games, sweetID, "East 1")
	assert.NoError(t, err)

	// Flip round-1 game 1: East 16 now beats East 1.
	changed, err := ApplyWinner(games, 1, "East 16")
	assert.NoError(t, err)
	assert.Contains(t, changed, uint(1))
	assert.Contains(t, changed, bracket.GameID(bracket.Round2, 0))
	assert.Contains(t, changed, sweetID)

	byID := indexGames(games)
	r2 := byID[bracket.GameID(bracket.Round2, 0)]
	assert.Equal(t, "East 16", *r2.Team1)
	assert.Nil(t, r2.Winner)

	sweet := byID[sweetID]
	assert.Nil(t, sweet.Team1)
	assert.Nil(t, sweet.Winner)
	assert.Equal(t, bracket.Round2, CurrentRound(games))

	// Re-deciding the feeder chain resolves the cleared slot again.
	_, err = ApplyWinner(games, r2.ID, "East 16")
	assert.NoError(t, err)
	assert.Equal(t, "East 16", *sweet.Team1)
}

func TestApplyWinnerValidation(t *testing.T) {
	games := roundOneGames()

	_, err := ApplyWinner(games, 999, "East 1")
	assert.ErrorIs(t, err, models.ErrUnknownGame)

	_, err = ApplyWinner(games, 1, "West 1")
	assert.ErrorIs(t, err, models.ErrInvalidWinner)

	f1, f2 := uint(1), uint(2)
	team := "East 1"
	games = append(games, models.Game{
		ID:        bracket.GameID(bracket.Round2, 0),
		Round:     int(bracket.Round2),
		Region:    "East",
		Team1:     &team,
		Feeder1ID: &f1,
		Feeder2ID: &f2,
	})
	_, err = ApplyWinner(games, bracket.GameID(bracket.Round2, 0), "East 1")
	assert.ErrorIs(t, err, models.ErrGameNotReady)
}

func TestApplyWinnerSameWinnerIsNoOp(t *testing.T) {
	games := roundOneGames()
	changed, err := ApplyWinner(games, 1, "East 1")
	assert.NoError(t, err)
	assert.Equal(t, []uint{1}, changed)

	changed, err = ApplyWinner(games, 1, "East 1")
	assert.NoError(t, err)
	assert.Empty(t, changed)
}

func indexGames(games []models.Game) map[uint]*models.Game {
	out := make(map[uint]*models.Game, len(games))
	for i := range games {
		out[games[i].ID] = &games[i]
	}
	return out
}
