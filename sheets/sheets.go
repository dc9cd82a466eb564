// Package sheets imports pool entries from the Google Form responses
// spreadsheet. Each response row is a participant name followed by the teams
// they picked to survive; every picked team maps to a pick on that team's
// first-round game.
package sheets

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
	"gorm.io/gorm"

	"Pickem/models"
)

const (
	defaultRangeName       = "Form Responses 1!A1:Z"
	defaultCredentialsFile = "credentials.json"
)

// Entry is one parsed response row.
type Entry struct {
	FullName string
	Teams    []string
}

// FetchPicks reads the configured responses range. Row layout follows the
// pool form: timestamp, participant name, then one column per picked team;
// the header row and rows without a name are skipped.
func FetchPicks(ctx context.Context) ([]Entry, error) {
	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is not set")
	}
	rangeName := os.Getenv("RANGE_NAME")
	if rangeName == "" {
		rangeName = defaultRangeName
	}
	credentials := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credentials == "" {
		credentials = defaultCredentialsFile
	}

	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentials),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", rangeName, err)
	}
	return parseRows(resp.Values), nil
}

func parseRows(rows [][]interface{}) []Entry {
	var entries []Entry
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(fmt.Sprint(row[1]))
		if name == "" {
			continue
		}
		e := Entry{FullName: name}
		for _, cell := range row[2:] {
			if team := strings.TrimSpace(fmt.Sprint(cell)); team != "" {
				e.Teams = append(e.Teams, team)
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// SyncPicks imports the sheet into the database: users are created on first
// sight and each picked team becomes a pick on its first-round game. Team
// names with no matching game are skipped with a warning rather than failing
// the import, and already-imported picks are left alone so re-syncing is
// safe. Returns the number of picks created.
func SyncPicks(ctx context.Context, db *gorm.DB) (int, error) {
	entries, err := FetchPicks(ctx)
	if err != nil {
		return 0, err
	}
	return Import(db, entries)
}

// Import writes parsed entries to the database. Split from SyncPicks so
// tests can exercise the upsert path without Google credentials.
func Import(db *gorm.DB, entries []Entry) (int, error) {
	seeds, err := models.SeedTable(db)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, e := range entries {
		user, err := models.FindOrCreateByName(db, e.FullName)
		if err != nil {
			return imported, fmt.Errorf("user %q: %w", e.FullName, err)
		}
		for _, team := range e.Teams {
			game, err := models.FindRoundOneGameByTeam(db, team)
			if err != nil {
				log.Printf("skipping pick %q for %s: no first-round game", team, e.FullName)
				continue
			}

			var existing int64
			if err := db.Model(&models.Pick{}).
				Where("user_id = ? AND game_id = ? AND team_name = ?", user.ID, game.ID, team).
				Count(&existing).Error; err != nil {
				return imported, err
			}
			if existing > 0 {
				continue
			}

			p := models.Pick{
				UserID:    user.ID,
				GameID:    game.ID,
				TeamName:  team,
				SeedLabel: strconv.Itoa(seeds[team]),
			}
			p.Prepare()
			if _, err := p.SavePick(db); err != nil {
				log.Printf("skipping pick %q for %s: %v", team, e.FullName, err)
				continue
			}
			imported++
		}
	}
	return imported, nil
}
