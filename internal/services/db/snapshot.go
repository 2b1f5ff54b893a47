package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/citizenwallet/govdash/pkg/gov"
)

const snapshotsTable = "t_snapshots"

type SnapshotDB struct {
	db  *sql.DB
	rdb *sql.DB
}

// NewSnapshotDB creates a new DB
func NewSnapshotDB(db, rdb *sql.DB) *SnapshotDB {
	return &SnapshotDB{
		db:  db,
		rdb: rdb,
	}
}

// CreateSnapshotsTable creates a table to store shaped subgraph responses
// fetched_at is stored in unix milliseconds so both drivers agree on it
func (db *SnapshotDB) CreateSnapshotsTable() error {
	_, err := db.db.Exec(fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s(
		network text NOT NULL,
		kind text NOT NULL,
		ref text NOT NULL,
		body text NOT NULL,
		fetched_at bigint NOT NULL,
		UNIQUE (network, kind, ref)
	);
	`, snapshotsTable))

	return err
}

// CreateSnapshotsTableIndexes creates the indexes for snapshots
func (db *SnapshotDB) CreateSnapshotsTableIndexes() error {
	_, err := db.db.Exec(fmt.Sprintf(`
	CREATE INDEX IF NOT EXISTS idx_snapshots_fetched_at ON %s (fetched_at);
	`, snapshotsTable))

	return err
}

// GetSnapshot returns the snapshot stored for network, kind and ref
func (db *SnapshotDB) GetSnapshot(ctx context.Context, network string, kind gov.SnapshotKind, ref string) (*gov.Snapshot, error) {
	s := &gov.Snapshot{
		Network: network,
		Kind:    kind,
		Ref:     ref,
	}

	var body string
	var fetchedAt int64

	err := db.rdb.QueryRowContext(ctx, fmt.Sprintf(`
	SELECT body, fetched_at
	FROM %s
	WHERE network = $1 AND kind = $2 AND ref = $3
	`, snapshotsTable), network, string(kind), ref).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gov.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	s.Body = []byte(body)
	s.FetchedAt = time.UnixMilli(fetchedAt)

	return s, nil
}

// PutSnapshot inserts or replaces a snapshot
func (db *SnapshotDB) PutSnapshot(ctx context.Context, s *gov.Snapshot) error {
	_, err := db.db.ExecContext(ctx, fmt.Sprintf(`
	INSERT INTO %s (network, kind, ref, body, fetched_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (network, kind, ref) DO UPDATE SET
		body = excluded.body,
		fetched_at = excluded.fetched_at
	`, snapshotsTable), s.Network, string(s.Kind), s.Ref, string(s.Body), s.FetchedAt.UnixMilli())

	return err
}

// DeleteOlderThan removes snapshots fetched before t and returns how many were removed
func (db *SnapshotDB) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	res, err := db.db.ExecContext(ctx, fmt.Sprintf(`
	DELETE FROM %s WHERE fetched_at < $1
	`, snapshotsTable), t.UnixMilli())
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
