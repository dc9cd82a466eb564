package models

import "gorm.io/gorm"

// Game is one bracket matchup. Ids are assigned deterministically in pairing
// order (see bracket.GameID), so slot order equals id order within a round.
//
// Team slots and the winner are nullable pointers, never empty-string
// sentinels: a nil slot means "winner of the feeder game, not yet decided",
// a nil winner means the game is undecided.
type Game struct {
	ID     uint   `gorm:"primary_key;autoIncrement:false" json:"id"`
	Round  int    `gorm:"not null;index" json:"round"`
	Region string `gorm:"size:100;not null" json:"region"`
	Slot   int    `gorm:"not null" json:"slot"`

	Team1     *string `gorm:"size:255" json:"team1"`
	Team2     *string `gorm:"size:255" json:"team2"`
	Feeder1ID *uint   `json:"feeder1_id,omitempty"`
	Feeder2ID *uint   `json:"feeder2_id,omitempty"`
	Winner    *string `gorm:"size:255" json:"winner"`
}

// Ready reports whether both team slots are resolved.
func (g *Game) Ready() bool {
	return g.Team1 != nil && g.Team2 != nil
}

// Decided reports whether a winner has been recorded.
func (g *Game) Decided() bool {
	return g.Winner != nil
}

// Has reports whether the named team occupies one of the resolved slots.
func (g *Game) Has(team string) bool {
	if g.Team1 != nil && *g.Team1 == team {
		return true
	}
	if g.Team2 != nil && *g.Team2 == team {
		return true
	}
	return false
}

// Loser returns the defeated team of a decided, fully resolved game.
func (g *Game) Loser() (string, bool) {
	if !g.Decided() || !g.Ready() {
		return "", false
	}
	if *g.Winner == *g.Team1 {
		return *g.Team2, true
	}
	return *g.Team1, true
}

// AllGames loads the whole bracket in round then pairing order.
func AllGames(db *gorm.DB) ([]Game, error) {
	var games []Game
	if err := db.Order("round ASC, slot ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// FindGames lists one round's games in pairing order, or all games when
// round is nil.
func FindGames(db *gorm.DB, round *int) ([]Game, error) {
	if round == nil {
		return AllGames(db)
	}
	var games []Game
	if err := db.Where("round = ?", *round).Order("slot ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// FindGameByID retrieves one game.
func FindGameByID(db *gorm.DB, id uint) (*Game, error) {
	var g Game
	err := db.First(&g, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrUnknownGame
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// FindRoundOneGameByTeam locates the first-round game a team plays in.
func FindRoundOneGameByTeam(db *gorm.DB, team string) (*Game, error) {
	var g Game
	err := db.Where("round = 0 AND (team1 = ? OR team2 = ?)", team, team).First(&g).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrUnknownGame
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}
