package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"Pickem/bracket"
	"Pickem/cache"
	"Pickem/models"
	"Pickem/progression"
)

// GetGames lists games in pairing order, optionally filtered to one round by
// name or index (?round=Sweet 16, ?round=2).
func (s *Server) GetGames(c *gin.Context) {
	var round *int
	if q := c.Query("round"); q != "" {
		r, err := bracket.ParseRound(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
			return
		}
		i := int(r)
		round = &i
	}

	games, err := models.FindGames(s.DB, round)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to load games"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": games})
}

func (s *Server) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Invalid game ID"})
		return
	}

	game, err := models.FindGameByID(s.DB, uint(id))
	if err != nil {
		if errors.Is(err, models.ErrUnknownGame) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to load game"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": game})
}

// GetCurrentRound derives the current round from stored results.
func (s *Server) GetCurrentRound(c *gin.Context) {
	games, err := models.AllGames(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to load games"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": progression.CurrentRound(games).String()})
}

// UpdateGameWinner records a winner, replays the invalidation cascade, and
// materializes the next round when the change completes one, all inside a
// single transaction. The refresh flag tells the caller to re-fetch full
// bracket state.
func (s *Server) UpdateGameWinner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Invalid game ID"})
		return
	}

	var body struct {
		Winner string `json:"winner"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Winner) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "winner is required"})
		return
	}

	refresh := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		games, err := models.AllGames(tx)
		if err != nil {
			return err
		}
		before := progression.CurrentRound(games)

		changed, err := progression.ApplyWinner(games, uint(id), strings.TrimSpace(body.Winner))
		if err != nil {
			return err
		}

		byID := make(map[uint]*models.Game, len(games))
		for i := range games {
			byID[games[i].ID] = &games[i]
		}
		for _, gid := range changed {
			if err := tx.Save(byID[gid]).Error; err != nil {
				return err
			}
		}

		if plan := progression.Plan(games); plan != nil {
			for i := range plan.Games {
				if err := tx.Create(&plan.Games[i]).Error; err != nil {
					return err
				}
			}
			games = append(games, plan.Games...)
			refresh = true
		}
		if progression.CurrentRound(games) != before {
			refresh = true
		}
		return nil
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, models.ErrUnknownGame):
			status = http.StatusNotFound
		case errors.Is(err, models.ErrInvalidWinner), errors.Is(err, models.ErrGameNotReady):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"status": "error", "error": err.Error(), "refresh": false})
		return
	}

	cache.DeleteByPrefix(c.Request.Context(), reportCachePrefix)
	c.JSON(http.StatusOK, gin.H{"status": "success", "refresh": refresh})
}
