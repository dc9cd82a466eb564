package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstRoundPairingOrder(t *testing.T) {
	expected := [8][2]int{{1, 16}, {8, 9}, {5, 12}, {4, 13}, {6, 11}, {3, 14}, {7, 10}, {2, 15}}
	assert.Equal(t, expected, FirstRoundPairings)
}

func TestRoundOrderAndNames(t *testing.T) {
	names := []string{"Round of 64", "Round of 32", "Sweet 16", "Elite 8", "Final Four", "Championship"}
	for i, r := range Rounds() {
		assert.Equal(t, names[i], r.String())
	}

	next, ok := Round1.Next()
	assert.True(t, ok)
	assert.Equal(t, Round2, next)

	_, ok = Championship.Next()
	assert.False(t, ok)
}

func TestGameIDsAreDeterministicAndDisjoint(t *testing.T) {
	seen := make(map[uint]bool)
	var last uint
	for _, r := range Rounds() {
		for slot := 0; slot < GamesInRound(r); slot++ {
			id := GameID(r, slot)
			assert.False(t, seen[id], "id %d reused", id)
			assert.Equal(t, last+1, id, "ids are dense across rounds")
			seen[id] = true
			last = id
		}
	}
	assert.Len(t, seen, 63)
}

func TestParseRound(t *testing.T) {
	r, err := ParseRound("Sweet 16")
	assert.NoError(t, err)
	assert.Equal(t, Sweet16, r)

	r, err = ParseRound("4")
	assert.NoError(t, err)
	assert.Equal(t, FinalFour, r)

	_, err = ParseRound("Play-In")
	assert.Error(t, err)
}

func TestWeightsMaxPoints(t *testing.T) {
	assert.Equal(t, 63, DefaultWeights().MaxPoints())

	w := DefaultWeights()
	w[Championship] = 10
	assert.Equal(t, 72, w.MaxPoints())
}
