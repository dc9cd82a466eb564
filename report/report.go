// Package report assembles the data handed to presentation layers: current
// round, standings, popularity lists, and upsets, plus PNG chart renders.
package report

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Pickem/bracket"
	"Pickem/models"
	"Pickem/progression"
	"Pickem/scoring"
)

// ReportData is the aggregator contract. Everything a renderer needs is in
// here; nothing in it requires further database reads.
type ReportData struct {
	SnapshotID   string              `json:"snapshot_id"`
	GeneratedAt  time.Time           `json:"generated_at"`
	CurrentRound string              `json:"current_round"`
	Scores       []scoring.UserScore `json:"scores"`
	MostPopular  []scoring.TeamCount `json:"most_popular_remaining"`
	LeastPopular []scoring.TeamCount `json:"least_popular_remaining"`
	Upsets       []scoring.Upset     `json:"upsets"`
}

// Build computes a full report from the stored bracket state.
func Build(db *gorm.DB, weights bracket.Weights) (*ReportData, error) {
	games, err := models.AllGames(db)
	if err != nil {
		return nil, err
	}
	users, err := models.FindAllUsers(db)
	if err != nil {
		return nil, err
	}
	picks, err := models.FindPicks(db, nil)
	if err != nil {
		return nil, err
	}
	seeds, err := models.SeedTable(db)
	if err != nil {
		return nil, err
	}

	scores, err := scoring.Score(games, picks, users, weights, scoring.Options{})
	if err != nil {
		return nil, err
	}
	most, least := scoring.Popularity(games, picks, seeds)

	return &ReportData{
		SnapshotID:   uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		CurrentRound: progression.CurrentRound(games).String(),
		Scores:       scores,
		MostPopular:  most,
		LeastPopular: least,
		Upsets:       scoring.Upsets(games, seeds),
	}, nil
}
