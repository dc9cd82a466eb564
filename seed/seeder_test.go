package seed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Pickem/bracket"
	"Pickem/models"
)

func testConfig() *bracket.Config {
	cfg := &bracket.Config{}
	for _, name := range []string{"East", "West", "South", "Midwest"} {
		region := bracket.Region{Name: name}
		for seed := 1; seed <= bracket.TeamsPerRegion; seed++ {
			region.Teams = append(region.Teams, bracket.Team{
				Name: fmt.Sprintf("%s %d", name, seed),
				Seed: seed,
			})
		}
		cfg.Regions = append(cfg.Regions, region)
	}
	return cfg
}

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Team{}, &models.Game{}, &models.Pick{}); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}
	return db
}

func TestBuildRoundOnePairingOrder(t *testing.T) {
	teams, games := BuildRoundOne(testConfig())
	assert.Len(t, teams, 64)
	assert.Len(t, games, 32)

	// First region, first game: 1 seed hosts the 16 seed.
	assert.Equal(t, uint(1), games[0].ID)
	assert.Equal(t, "East", games[0].Region)
	assert.Equal(t, "East 1", *games[0].Team1)
	assert.Equal(t, "East 16", *games[0].Team2)

	// Last game of the first region follows the canonical order: 2 vs 15.
	assert.Equal(t, "East 2", *games[7].Team1)
	assert.Equal(t, "East 15", *games[7].Team2)

	// Regions are laid out in declaration order, 8 games each.
	assert.Equal(t, "West", games[8].Region)
	assert.Equal(t, "Midwest", games[31].Region)
	for i, g := range games {
		assert.Equal(t, i, g.Slot)
		assert.Nil(t, g.Winner)
	}
}

func TestLoadSeedsOnce(t *testing.T) {
	db := testDB(t)
	cfg := testConfig()

	assert.NoError(t, Load(db, cfg))

	var teamCount, gameCount int64
	db.Model(&models.Team{}).Count(&teamCount)
	db.Model(&models.Game{}).Count(&gameCount)
	assert.Equal(t, int64(64), teamCount)
	assert.Equal(t, int64(32), gameCount)

	// A second Load must not duplicate rows or touch existing games.
	assert.NoError(t, Load(db, cfg))
	db.Model(&models.Game{}).Count(&gameCount)
	assert.Equal(t, int64(32), gameCount)
}

func TestValidatePicksFlagsForeignTeams(t *testing.T) {
	db := testDB(t)
	cfg := testConfig()
	assert.NoError(t, Load(db, cfg))

	user := models.User{FullName: "Alice"}
	user.Prepare()
	_, err := user.SaveUser(db)
	assert.NoError(t, err)

	good := models.Pick{UserID: user.ID, GameID: 1, TeamName: "East 1"}
	good.Prepare()
	_, err = good.SavePick(db)
	assert.NoError(t, err)

	// A row written outside the API can drift from the bracket file.
	stray := models.Pick{UserID: user.ID, GameID: 1, TeamName: "Narnia"}
	assert.NoError(t, db.Create(&stray).Error)

	invalid, err := ValidatePicks(db, cfg)
	assert.NoError(t, err)
	assert.Len(t, invalid, 1)
	assert.Equal(t, "Narnia", invalid[0].TeamName)

	// Reload reports the offender but never deletes it.
	assert.NoError(t, Load(db, cfg))
	var picks int64
	db.Model(&models.Pick{}).Count(&picks)
	assert.Equal(t, int64(2), picks)
}
