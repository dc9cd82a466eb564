package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func pickTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &Team{}, &Game{}, &Pick{}); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}
	return db
}

func TestSavePickKeepsPunctuatedTeamNames(t *testing.T) {
	db := pickTestDB(t)

	t1, t2 := "Saint Mary's", "Texas A&M"
	game := Game{ID: 1, Round: 0, Region: "West", Slot: 0, Team1: &t1, Team2: &t2}
	assert.NoError(t, db.Create(&game).Error)

	user := User{FullName: "Alice"}
	user.Prepare()
	_, err := user.SaveUser(db)
	assert.NoError(t, err)

	// Apostrophes and ampersands must survive Prepare byte for byte, or the
	// pick can never match the game's slots or a recorded winner.
	pick := Pick{UserID: user.ID, GameID: 1, TeamName: "  Saint Mary's "}
	pick.Prepare()
	assert.Equal(t, "Saint Mary's", pick.TeamName)

	saved, err := pick.SavePick(db)
	assert.NoError(t, err)
	assert.Equal(t, "Saint Mary's", saved.TeamName)

	amp := Pick{UserID: user.ID, GameID: 1, TeamName: "Texas A&M"}
	amp.Prepare()
	_, err = amp.SavePick(db)
	assert.NoError(t, err)

	// A team genuinely absent from the game is still rejected.
	stray := Pick{UserID: user.ID, GameID: 1, TeamName: "Gonzaga"}
	stray.Prepare()
	_, err = stray.SavePick(db)
	assert.ErrorIs(t, err, ErrMalformedPick)
}
