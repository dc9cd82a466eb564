package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Pickem/models"
)

func (s *Server) CreateUser(c *gin.Context) {
	var body struct {
		FullName string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "error": "Cannot parse request body"})
		return
	}

	user := models.User{FullName: body.FullName}
	user.Prepare()
	if msgs := user.Validate(); len(msgs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "error": msgs})
		return
	}

	saved, err := user.SaveUser(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to save user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "response": saved})
}

func (s *Server) GetUsers(c *gin.Context) {
	users, err := models.FindAllUsers(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": users})
}

// GetTeams lists the 64 entrants by region and seed.
func (s *Server) GetTeams(c *gin.Context) {
	teams, err := models.FindAllTeams(s.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to load teams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": teams})
}
