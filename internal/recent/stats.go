package recent

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/strrl/rofi-recent/internal/db"
	"github.com/strrl/rofi-recent/pkg/models"
)

const statsQueryTimeout = 30 * time.Second

const programStatsQuery = `
	SELECT
		program,
		COUNT(DISTINCT path) AS files,
		COUNT(*) AS registrations,
		MAX(modified) AS last_activity,
		arg_max(content_type, modified) AS latest_type
	FROM registrations
	GROUP BY program
	ORDER BY MAX(modified) DESC, program
`

// FetchProgramStats loads every non-excluded registration into DuckDB and
// aggregates it per program. Unlike Build, nothing is deduplicated or
// truncated, so the figures describe the whole registry.
func FetchProgramStats(ctx context.Context, records []models.UsageRecord, exclude ExclusionSet, logger *log.Logger) ([]models.ProgramStat, error) {
	logger = orDiscard(logger)

	database, err := db.GetDB()
	if err != nil {
		return nil, err
	}
	// Don't close the singleton connection

	ctx, cancel := context.WithTimeout(ctx, statsQueryTimeout)
	defer cancel()

	if err := db.Reset(ctx, database); err != nil {
		return nil, err
	}
	if err := insertRegistrations(ctx, database, records, exclude, logger); err != nil {
		return nil, err
	}

	rows, err := database.QueryContext(ctx, programStatsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to execute stats query: %w", err)
	}
	defer rows.Close()

	var stats []models.ProgramStat
	for rows.Next() {
		var stat models.ProgramStat
		var lastActivity sql.NullTime
		var latestType sql.NullString

		if err := rows.Scan(&stat.Program, &stat.Files, &stat.Registrations, &lastActivity, &latestType); err != nil {
			continue
		}
		if lastActivity.Valid {
			stat.LastActivity = lastActivity.Time.Local()
		}
		stat.LatestType = latestType.String

		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func insertRegistrations(ctx context.Context, database *sql.DB, records []models.UsageRecord, exclude ExclusionSet, logger *log.Logger) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO registrations VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		path, err := ResolveLocation(record.Location)
		if err != nil {
			logger.Debug("skipping record", "location", record.Location, "err", err)
			continue
		}
		for _, app := range record.Applications {
			program, err := ExtractProgram(app.Exec)
			if err != nil || exclude.Contains(program) {
				continue
			}
			modified := record.LastModified.UTC()
			if _, err := stmt.ExecContext(ctx, program, path, app.Name, record.ContentType, modified); err != nil {
				return fmt.Errorf("failed to insert registration: %w", err)
			}
		}
	}

	return tx.Commit()
}
