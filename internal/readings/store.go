// Package readings implements a per-device temperature reading log
// backed by SQLite. Device polls and manual probe checks accumulate
// here so trend analysis can run against real history without the
// caller re-supplying the whole series on every tool call.
//
// This is a sensor log, not a cook-session record: rows carry no cook
// identity and the engine never anchors estimates to them.
package readings

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/stat"
	_ "modernc.org/sqlite"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Config holds reading store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig stores the log under ~/.bbq-mcp.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".bbq-mcp")}
}

// Summary aggregates one device's logged readings.
type Summary struct {
	DeviceID    string    `json:"device_id"`
	Count       int       `json:"count"`
	FirstAt     time.Time `json:"first_at"`
	LastAt      time.Time `json:"last_at"`
	MinF        float64   `json:"min_f"`
	MaxF        float64   `json:"max_f"`
	RatePerHour float64   `json:"rate_per_hour"`
}

// Store is the reading log.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the log database and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("readings: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "readings.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("readings: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("readings: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("readings: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS readings (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			device_id TEXT NOT NULL,
			temp_f    REAL NOT NULL,
			taken_at  TEXT NOT NULL,
			logged_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_readings_device_time
			ON readings(device_id, taken_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Log appends one reading for a device.
func (s *Store) Log(deviceID string, r engine.Reading) error {
	if deviceID == "" {
		return fmt.Errorf("readings: empty device id")
	}
	_, err := s.db.Exec(
		`INSERT INTO readings (device_id, temp_f, taken_at) VALUES (?, ?, ?)`,
		deviceID, r.TempF, r.Time.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("readings: insert: %w", err)
	}
	return nil
}

// Recent returns up to n of the newest readings for a device in
// chronological order, oldest first — the convention every engine
// operation expects.
func (s *Store) Recent(deviceID string, n int) ([]engine.Reading, error) {
	rows, err := s.db.Query(
		`SELECT temp_f, taken_at FROM (
			SELECT temp_f, taken_at FROM readings
			WHERE device_id = ?
			ORDER BY taken_at DESC LIMIT ?
		) ORDER BY taken_at ASC`,
		deviceID, n,
	)
	if err != nil {
		return nil, fmt.Errorf("readings: query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []engine.Reading
	for rows.Next() {
		var (
			temp    float64
			takenAt string
		)
		if err := rows.Scan(&temp, &takenAt); err != nil {
			return nil, fmt.Errorf("readings: scan: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, takenAt)
		if err != nil {
			return nil, fmt.Errorf("readings: parse timestamp %q: %w", takenAt, err)
		}
		out = append(out, engine.Reading{TempF: temp, Time: ts})
	}
	return out, rows.Err()
}

// Summarize aggregates a device's full log. The rate is a
// least-squares slope over (hours, °F) — an advisory smoothing of the
// whole series, distinct from the engine's endpoint-based trend math.
func (s *Store) Summarize(deviceID string) (Summary, error) {
	all, err := s.Recent(deviceID, 1<<20)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{DeviceID: deviceID, Count: len(all)}
	if len(all) == 0 {
		return sum, nil
	}

	sum.FirstAt = all[0].Time
	sum.LastAt = all[len(all)-1].Time
	sum.MinF, sum.MaxF = all[0].TempF, all[0].TempF

	xs := make([]float64, len(all))
	ys := make([]float64, len(all))
	for i, r := range all {
		xs[i] = r.Time.Sub(sum.FirstAt).Hours()
		ys[i] = r.TempF
		if r.TempF < sum.MinF {
			sum.MinF = r.TempF
		}
		if r.TempF > sum.MaxF {
			sum.MaxF = r.TempF
		}
	}

	if len(all) >= 2 && xs[len(xs)-1] > 0 {
		_, slope := stat.LinearRegression(xs, ys, nil, false)
		sum.RatePerHour = slope
	}
	return sum, nil
}

// Prune deletes readings taken before cutoff and reports how many
// rows went away.
func (s *Store) Prune(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(
		`DELETE FROM readings WHERE taken_at < ?`,
		cutoff.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("readings: prune: %w", err)
	}
	return res.RowsAffected()
}
