package conformance

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/tai64"
	_ "modernc.org/sqlite"
)

// OpenDB opens the journal database at p.
func OpenDB(p string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", p)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// OpenMemDB opens an in-memory journal.
func OpenMemDB() (*sqlx.DB, error) {
	return OpenDB(":memory:")
}

// SetupDB creates the journal tables.
func SetupDB(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tier TEXT NOT NULL,
		host_hz REAL NOT NULL,
		wavefront_cycles INTEGER NOT NULL,
		sequence_cycles INTEGER NOT NULL,
		bits_per_cycle INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		recorded_s INTEGER NOT NULL,
		recorded_ns INTEGER NOT NULL
	)`)
	return err
}

// SavedReport is one journal row.
type SavedReport struct {
	ID              int64   `db:"id"`
	Tier            string  `db:"tier"`
	HostHz          float64 `db:"host_hz"`
	WavefrontCycles int64   `db:"wavefront_cycles"`
	SequenceCycles  int64   `db:"sequence_cycles"`
	BitsPerCycle    int64   `db:"bits_per_cycle"`
	Passed          bool    `db:"passed"`
	RecordedS       int64   `db:"recorded_s"`
	RecordedNs      int64   `db:"recorded_ns"`
}

// SaveReport appends a validated (or failed) report to the journal
// and returns the row id.
func SaveReport(ctx context.Context, db *sqlx.DB, tier Tier, r *Report, passed bool) (int64, error) {
	ts := tai64.Now()
	var id int64
	err := db.GetContext(ctx, &id, `INSERT INTO reports
		(tier, host_hz, wavefront_cycles, sequence_cycles, bits_per_cycle, passed, recorded_s, recorded_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		tier.String(), r.HostHz, r.WavefrontCycles, r.SequenceCycles, r.BitsPerCycle,
		passed, int64(ts.Seconds), int64(ts.Nanoseconds))
	return id, err
}

// ListReports returns the journal newest first.
func ListReports(ctx context.Context, db *sqlx.DB) ([]SavedReport, error) {
	var out []SavedReport
	err := db.SelectContext(ctx, &out, `SELECT * FROM reports ORDER BY id DESC`)
	return out, err
}
