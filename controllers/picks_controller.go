package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"Pickem/cache"
	"Pickem/models"
	"Pickem/sheets"
)

// GetPicks lists every pick, optionally limited to those recorded at or
// before ?as_of= (RFC 3339).
func (s *Server) GetPicks(c *gin.Context) {
	var asOf *time.Time
	if q := c.Query("as_of"); q != "" {
		ts, err := time.Parse(time.RFC3339, q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "as_of must be RFC 3339"})
			return
		}
		asOf = &ts
	}

	picks, err := models.FindPicks(s.DB, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to load picks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": picks})
}

func (s *Server) GetUserPicks(c *gin.Context) {
	uid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Invalid user ID"})
		return
	}
	if _, err := models.FindUserByID(s.DB, uint(uid)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "User not found"})
		return
	}

	picks, err := models.FindUserPicks(s.DB, uint(uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to load picks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": picks})
}

// CreatePick records one pick for a user. The chosen team is validated
// against the game's resolved slots at pick time, not against the eventual
// winner.
func (s *Server) CreatePick(c *gin.Context) {
	uid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Invalid user ID"})
		return
	}
	if _, err := models.FindUserByID(s.DB, uint(uid)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "User not found"})
		return
	}

	var body struct {
		GameID   uint   `json:"game_id"`
		TeamName string `json:"team_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "error": "Cannot parse request body"})
		return
	}

	pick := models.Pick{UserID: uint(uid), GameID: body.GameID, TeamName: body.TeamName}
	pick.Prepare()
	if msgs := pick.Validate(); len(msgs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "error": msgs})
		return
	}

	saved, err := pick.SavePick(s.DB)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnknownGame):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "Game not found"})
		case errors.Is(err, models.ErrMalformedPick):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to save pick"})
		}
		return
	}

	cache.DeleteByPrefix(c.Request.Context(), reportCachePrefix)
	c.JSON(http.StatusCreated, gin.H{"status": "success", "response": saved})
}

// SyncPicks imports pool entries from the configured Google Sheet.
func (s *Server) SyncPicks(c *gin.Context) {
	n, err := sheets.SyncPicks(c.Request.Context(), s.DB)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "error": err.Error()})
		return
	}

	if n > 0 {
		cache.DeleteByPrefix(c.Request.Context(), reportCachePrefix)
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": gin.H{"imported": n}})
}
