// Package groundstore archives parsed ground measurements in a sqlite
// database so they can be queried and exported without re-reading the
// original spreadsheets and CSV files.
package groundstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/polinsar/fsarcamp/ground"
)

// Store wraps the sqlite database holding the measurement archive.
type Store struct {
	*sql.DB
}

// Open opens (or creates) the archive at path and applies pending schema
// migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	s := &Store{db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Run describes one ingest run.
type Run struct {
	ID        string
	Campaign  string
	StartedAt time.Time
	FileCount int
	RowCount  int
}

// InsertMoisture archives a batch of moisture points under a fresh ingest
// run and returns the run record. The batch is written in one transaction.
func (s *Store) InsertMoisture(ctx context.Context, campaign string, fileCount int, points []ground.MoisturePoint) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		Campaign:  campaign,
		StartedAt: time.Now().UTC(),
		FileCount: fileCount,
		RowCount:  len(points),
	}
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("begin ingest transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingest_runs (id, campaign, started_at, file_count, row_count) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Campaign, run.StartedAt, run.FileCount, run.RowCount)
	if err != nil {
		return Run{}, fmt.Errorf("insert ingest run: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO moisture (run_id, campaign, field, point_id, measured_at, latitude, longitude, moisture)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("prepare moisture insert: %w", err)
	}
	defer stmt.Close()
	for _, p := range points {
		_, err := stmt.ExecContext(ctx, run.ID, campaign, p.Field, p.PointID, p.Date.UTC(), p.Latitude, p.Longitude, p.Moisture)
		if err != nil {
			return Run{}, fmt.Errorf("insert moisture point %s/%s: %w", p.Field, p.PointID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit ingest: %w", err)
	}
	return run, nil
}

// Moisture queries archived points by campaign, optional field, and
// inclusive date range. Zero time bounds are open.
func (s *Store) Moisture(ctx context.Context, campaign, field string, from, to time.Time) ([]ground.MoisturePoint, error) {
	query := `SELECT field, point_id, measured_at, latitude, longitude, moisture FROM moisture WHERE campaign = ?`
	args := []any{campaign}
	if field != "" {
		query += ` AND field = ?`
		args = append(args, field)
	}
	if !from.IsZero() {
		query += ` AND measured_at >= ?`
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		query += ` AND measured_at <= ?`
		args = append(args, to.UTC())
	}
	query += ` ORDER BY measured_at, field, point_id`

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query moisture: %w", err)
	}
	defer rows.Close()

	var out []ground.MoisturePoint
	for rows.Next() {
		var p ground.MoisturePoint
		if err := rows.Scan(&p.Field, &p.PointID, &p.Date, &p.Latitude, &p.Longitude, &p.Moisture); err != nil {
			return nil, fmt.Errorf("scan moisture row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Fields returns the distinct field identifiers archived for a campaign.
func (s *Store) Fields(ctx context.Context, campaign string) ([]string, error) {
	rows, err := s.QueryContext(ctx,
		`SELECT DISTINCT field FROM moisture WHERE campaign = ? ORDER BY field`, campaign)
	if err != nil {
		return nil, fmt.Errorf("query fields: %w", err)
	}
	defer rows.Close()

	var fields []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("scan field row: %w", err)
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

// Runs lists all ingest runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.QueryContext(ctx,
		`SELECT id, campaign, started_at, file_count, row_count FROM ingest_runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query ingest runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Campaign, &r.StartedAt, &r.FileCount, &r.RowCount); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
