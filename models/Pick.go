package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Pick is one user's chosen winner for one game.
type Pick struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	GameID    uint      `gorm:"not null;index" json:"game_id"`
	TeamName  string    `gorm:"size:255;not null" json:"team_name"`
	SeedLabel string    `gorm:"size:50" json:"seed_label"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (p *Pick) Prepare() {
	// Team names must match the configured bracket verbatim ("Saint Mary's",
	// "Texas A&M"); escaping is a render-time concern.
	p.TeamName = strings.TrimSpace(p.TeamName)
	p.SeedLabel = strings.TrimSpace(p.SeedLabel)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

func (p *Pick) Validate() map[string]string {
	errorsMap := make(map[string]string)
	if p.UserID == 0 {
		errorsMap["Required_user"] = "required user"
	}
	if p.GameID == 0 {
		errorsMap["Required_game"] = "required game"
	}
	if p.TeamName == "" {
		errorsMap["Required_team"] = "required team"
	}
	return errorsMap
}

// SavePick validates the chosen winner against the game's resolved slots and
// creates the pick. An unresolved or mismatched slot is a MalformedPick; the
// final winner is irrelevant at pick time.
func (p *Pick) SavePick(db *gorm.DB) (*Pick, error) {
	game, err := FindGameByID(db, p.GameID)
	if err != nil {
		return nil, err
	}
	if !game.Has(p.TeamName) {
		return nil, ErrMalformedPick
	}
	if err := db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// FindPicks lists every pick, optionally limited to those made at or before
// asOf, in creation order.
func FindPicks(db *gorm.DB, asOf *time.Time) ([]Pick, error) {
	q := db.Order("id ASC")
	if asOf != nil {
		q = q.Where("created_at <= ?", *asOf)
	}
	var picks []Pick
	if err := q.Find(&picks).Error; err != nil {
		return nil, err
	}
	return picks, nil
}

// FindUserPicks lists one user's picks in creation order.
func FindUserPicks(db *gorm.DB, uid uint) ([]Pick, error) {
	var picks []Pick
	if err := db.Where("user_id = ?", uid).Order("id ASC").Find(&picks).Error; err != nil {
		return nil, err
	}
	return picks, nil
}
