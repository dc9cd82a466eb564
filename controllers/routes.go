package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initializeRoutes() {

	s.Router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "response": "Pickem API"})
	})

	v1 := s.Router.Group("/api/v1")
	{
		// Game routes
		v1.GET("/games", s.GetGames)
		v1.GET("/games/:id", s.GetGame)
		v1.POST("/games/:id/winner", s.UpdateGameWinner)
		v1.GET("/rounds/current", s.GetCurrentRound)

		// Team routes
		v1.GET("/teams", s.GetTeams)

		// User routes
		v1.POST("/users", s.CreateUser)
		v1.GET("/users", s.GetUsers)
		v1.GET("/users/:id/picks", s.GetUserPicks)
		v1.POST("/users/:id/picks", s.CreatePick)

		// Pick routes
		v1.GET("/picks", s.GetPicks)
		v1.POST("/picks/sync", s.SyncPicks)

		// Report routes
		v1.GET("/report", s.GetReport)
		v1.GET("/report/charts/:name", s.GetReportChart)
	}

	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
