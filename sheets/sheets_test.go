package sheets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Pickem/bracket"
	"Pickem/models"
	"Pickem/seed"
)

func seededDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Team{}, &models.Game{}, &models.Pick{}); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	cfg := &bracket.Config{}
	for _, name := range []string{"East", "West", "South", "Midwest"} {
		region := bracket.Region{Name: name}
		for s := 1; s <= bracket.TeamsPerRegion; s++ {
			region.Teams = append(region.Teams, bracket.Team{Name: fmt.Sprintf("%s %d", name, s), Seed: s})
		}
		cfg.Regions = append(cfg.Regions, region)
	}
	if err := seed.Load(db, cfg); err != nil {
		t.Fatalf("Failed to seed bracket: %v", err)
	}
	return db
}

func TestParseRowsSkipsHeaderAndBlanks(t *testing.T) {
	rows := [][]interface{}{
		{"Timestamp", "Name", "Pick 1", "Pick 2"},
		{"3/19/2026 10:01", "Alice", "East 1", "West 2"},
		{"3/19/2026 10:05", "", "East 5"},
		{"3/19/2026 10:07", "Bob", "South 3", "", "Midwest 1"},
	}

	entries := parseRows(rows)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Alice", entries[0].FullName)
	assert.Equal(t, []string{"East 1", "West 2"}, entries[0].Teams)
	assert.Equal(t, []string{"South 3", "Midwest 1"}, entries[1].Teams)
}

func TestImportCreatesUsersAndPicks(t *testing.T) {
	db := seededDB(t)

	entries := []Entry{
		{FullName: "Alice", Teams: []string{"East 1", "West 2"}},
		{FullName: "Bob", Teams: []string{"East 1", "Narnia"}},
	}

	n, err := Import(db, entries)
	assert.NoError(t, err)
	assert.Equal(t, 3, n, "unknown team is skipped, not fatal")

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(2), users)

	var pick models.Pick
	assert.NoError(t, db.Where("team_name = ?", "West 2").First(&pick).Error)
	assert.Equal(t, "2", pick.SeedLabel)
	assert.Equal(t, uint(16), pick.GameID, "West 2 plays game 8 of the West block, slot 15")
}

func TestImportIsIdempotent(t *testing.T) {
	db := seededDB(t)
	entries := []Entry{{FullName: "Alice", Teams: []string{"East 1"}}}

	n, err := Import(db, entries)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = Import(db, entries)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	var picks int64
	db.Model(&models.Pick{}).Count(&picks)
	assert.Equal(t, int64(1), picks)
}
