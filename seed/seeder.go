package seed

import (
	"log"

	"gorm.io/gorm"

	"Pickem/bracket"
	"Pickem/models"
)

// BuildRoundOne converts a validated bracket configuration into team rows and
// the 32 first-round games. Games come out region-major in the canonical seed
// pairing order, which is the order later-round synthesis consumes.
func BuildRoundOne(cfg *bracket.Config) ([]models.Team, []models.Game) {
	teams := make([]models.Team, 0, bracket.RegionCount*bracket.TeamsPerRegion)
	games := make([]models.Game, 0, bracket.GamesInRound(bracket.Round1))
	slot := 0
	for _, region := range cfg.Regions {
		bySeed := region.BySeed()
		for seed := 1; seed <= bracket.TeamsPerRegion; seed++ {
			t := bySeed[seed]
			teams = append(teams, models.Team{Name: t.Name, Seed: t.Seed, Region: region.Name})
		}
		for _, pair := range bracket.FirstRoundPairings {
			t1 := bySeed[pair[0]].Name
			t2 := bySeed[pair[1]].Name
			games = append(games, models.Game{
				ID:     bracket.GameID(bracket.Round1, slot),
				Round:  int(bracket.Round1),
				Region: region.Name,
				Slot:   slot,
				Team1:  &t1,
				Team2:  &t2,
			})
			slot++
		}
	}
	return teams, games
}

// Load seeds teams and the first round when the games table is empty. A
// populated database is left untouched, so restarts never clobber recorded
// results.
func Load(db *gorm.DB, cfg *bracket.Config) error {
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("bracket already seeded, skipping")
		return reportInvalidPicks(db, cfg)
	}

	teams, games := BuildRoundOne(cfg)
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range teams {
			if err := tx.Create(&teams[i]).Error; err != nil {
				return err
			}
		}
		for i := range games {
			if err := tx.Create(&games[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("seeded %d teams and %d first-round games", len(teams), len(games))
	return reportInvalidPicks(db, cfg)
}

// ValidatePicks returns stored picks naming teams outside the configured
// bracket. SavePick guards the API path, but imported or hand-edited rows
// can drift from the bracket file.
func ValidatePicks(db *gorm.DB, cfg *bracket.Config) ([]models.Pick, error) {
	names := cfg.TeamNames()
	picks, err := models.FindPicks(db, nil)
	if err != nil {
		return nil, err
	}
	var invalid []models.Pick
	for _, p := range picks {
		if !names[p.TeamName] {
			invalid = append(invalid, p)
		}
	}
	return invalid, nil
}

// reportInvalidPicks runs ValidatePicks on every boot and logs offenders.
// Bad picks are reported, never deleted; the operator decides what to do.
func reportInvalidPicks(db *gorm.DB, cfg *bracket.Config) error {
	invalid, err := ValidatePicks(db, cfg)
	if err != nil {
		return err
	}
	for _, p := range invalid {
		log.Printf("pick %d by user %d names %q, which is not a bracket team", p.ID, p.UserID, p.TeamName)
	}
	return nil
}
