package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"Pickem/cache"
	"Pickem/report"
)

const (
	reportCachePrefix = "report:"
	reportCacheTTL    = 60 * time.Second
)

// GetReport serves the full report payload, cached briefly in redis and
// invalidated whenever a winner or pick changes.
func (s *Server) GetReport(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := reportCachePrefix + "json"

	if cached, err := cache.Get(ctx, cacheKey); err == nil && cached != "" {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	data, err := report.Build(s.DB, s.Weights)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to build report"})
		return
	}

	body, err := json.Marshal(gin.H{"status": "success", "response": data})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to encode report"})
		return
	}

	_ = cache.Set(ctx, cacheKey, body, reportCacheTTL)
	c.Data(http.StatusOK, "application/json", body)
}

// GetReportChart renders one of the report charts as PNG. Known names:
// popularity, standings.
func (s *Server) GetReportChart(c *gin.Context) {
	data, err := report.Build(s.DB, s.Weights)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to build report"})
		return
	}

	var png []byte
	switch c.Param("name") {
	case "popularity":
		png, err = report.PopularityChart(data)
	case "standings":
		png, err = report.StandingsChart(data)
	default:
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "Unknown chart name"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to render chart"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
