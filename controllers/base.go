package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Pickem/bracket"
	"Pickem/cache"
	"Pickem/middlewares"
	"Pickem/models"
	"Pickem/seed"
	"Pickem/sheets"
)

type Server struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Bracket *bracket.Config
	Weights bracket.Weights
}

// ===============================
// SERVER INITIALIZATION
// ===============================
func (server *Server) Initialize(DbDriver, DbUser, DbPassword, DbPort, DbHost, DbName string) {
	var db *gorm.DB
	var err error

	switch {
	case strings.EqualFold(os.Getenv("APP_ENV"), "production"):
		dsn := os.Getenv("DATABASE_URL")
		if dsn != "" && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	case strings.EqualFold(DbDriver, "sqlite"):
		path := DbName
		if path == "" {
			path = "pickem.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})

	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			DbHost, DbUser, DbPassword, DbName, DbPort,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	server.DB = db

	// Auto Migrations
	if err := server.DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Game{},
		&models.Pick{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Bracket config is fatal when broken: refusing to boot beats discovering
	// a bad seed table mid-tournament.
	configPath := os.Getenv("BRACKET_CONFIG")
	if configPath == "" {
		configPath = "tournament_bracket.json"
	}
	server.Bracket, err = bracket.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading bracket config %s: %v", configPath, err)
	}
	server.Weights = server.Bracket.Weights()

	if err := seed.Load(server.DB, server.Bracket); err != nil {
		log.Fatalf("Error seeding bracket: %v", err)
	}

	// Redis init (safe failure)
	if err := cache.InitFromEnv(); err != nil {
		log.Printf("warning: could not connect to redis: %v", err)
	}

	server.startPicksSync()

	server.Router = gin.Default()
	server.Router.Use(middlewares.CORSMiddleware())
	server.Router.Use(middlewares.RateLimitMiddleware())
	server.Router.Use(middlewares.MetricsMiddleware())
	server.initializeRoutes()
}

// startPicksSync schedules the Google Sheets import when PICKS_SYNC_CRON is
// set. Disabled by default; operators can still trigger an import through
// the sync endpoint.
func (server *Server) startPicksSync() {
	spec := os.Getenv("PICKS_SYNC_CRON")
	if spec == "" {
		return
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		n, err := sheets.SyncPicks(context.Background(), server.DB)
		if err != nil {
			log.Printf("scheduled picks sync failed: %v", err)
			return
		}
		if n > 0 {
			cache.DeleteByPrefix(context.Background(), reportCachePrefix)
		}
		log.Printf("scheduled picks sync imported %d picks", n)
	})
	if err != nil {
		log.Printf("invalid PICKS_SYNC_CRON %q: %v", spec, err)
		return
	}
	c.Start()
	log.Printf("picks sync scheduled: %q", spec)
}

func (server *Server) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, server.Router))
}
