// Package history records run summaries in MySQL so past runs can be listed
// across invocations. The history is informational only: gating decisions
// always come from the current run's outcome table, never from here.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"tdep/internal/config"
	"tdep/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	started_at VARCHAR(64) NOT NULL,
	total_units INT NOT NULL,
	passed_units INT NOT NULL,
	failed_units INT NOT NULL,
	skipped_units INT NOT NULL,
	duration_seconds DOUBLE NOT NULL
)`

// Run is one recorded run summary.
type Run struct {
	ID              int64
	StartedAt       string
	TotalUnits      int
	PassedUnits     int
	FailedUnits     int
	SkippedUnits    int
	DurationSeconds float64
}

// Recorder stores and lists run summaries.
type Recorder struct {
	config *config.Config
}

// NewRecorder creates a new Recorder
func NewRecorder(cfg *config.Config) *Recorder {
	return &Recorder{config: cfg}
}

// connect opens the history database, creating the runs table if needed.
func (r *Recorder) connect() (*sql.DB, error) {
	// Load .env file from project directory
	envPath := filepath.Join(r.config.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	dbHost := envOr("TDEP_DB_HOST", "127.0.0.1")
	dbPort := envOr("TDEP_DB_PORT", "3306")
	dbUser := envOr("TDEP_DB_USERNAME", "root")
	dbPassword := envOr("TDEP_DB_PASSWORD", "")
	dbName := envOr("TDEP_DB_DATABASE", "tdep")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}
	return db, nil
}

// Record inserts a run summary row.
func (r *Recorder) Record(meta domain.RunMeta) error {
	db, err := r.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO runs (started_at, total_units, passed_units, failed_units, skipped_units, duration_seconds)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		meta.Timestamp, meta.TotalUnits, meta.PassedUnits, meta.FailedUnits, meta.SkippedUnits, meta.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the most recent recorded runs, newest first.
func (r *Recorder) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	db, err := r.connect()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT id, started_at, total_units, passed_units, failed_units, skipped_units, duration_seconds
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.TotalUnits, &run.PassedUnits,
			&run.FailedUnits, &run.SkippedUnits, &run.DurationSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
