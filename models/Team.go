package models

import "gorm.io/gorm"

// Team is one of the 64 bracket entrants. Rows are written once by the
// seeder and never mutated.
type Team struct {
	ID     uint   `gorm:"primary_key;autoIncrement" json:"id"`
	Name   string `gorm:"size:255;not null;unique" json:"name"`
	Seed   int    `gorm:"not null" json:"seed"`
	Region string `gorm:"size:100;not null;index" json:"region"`
}

// FindAllTeams lists teams by region then seed.
func FindAllTeams(db *gorm.DB) ([]Team, error) {
	var teams []Team
	if err := db.Order("region ASC, seed ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// SeedTable maps team name to seed for every stored team.
func SeedTable(db *gorm.DB) (map[string]int, error) {
	teams, err := FindAllTeams(db)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(teams))
	for _, t := range teams {
		out[t.Name] = t.Seed
	}
	return out, nil
}
