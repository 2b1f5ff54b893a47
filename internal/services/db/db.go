package db

import (
	"database/sql"
	"fmt"

	"github.com/citizenwallet/govdash/internal/storage"
	_ "github.com/mattn/go-sqlite3"
)

const (
	dbBaseFolder   = "data"
	dbConfigString = "cache=private&_journal=WAL&mode=rwc&_txlock=immediate&_busy_timeout=10000"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite3"
	DriverPostgres Driver = "postgres"
)

type DB struct {
	driver Driver
	db     *sql.DB
	rdb    *sql.DB

	SnapshotDB *SnapshotDB
}

// NewDB opens the sqlite snapshot store under basePath/data
func NewDB(basePath string) (*DB, error) {
	folderPath := fmt.Sprintf("%s/%s", storage.ExpandHome(basePath), dbBaseFolder)
	path := fmt.Sprintf("%s/govdash.db", folderPath)

	// check if directory exists
	if !storage.Exists(folderPath) {
		err := storage.CreateDir(folderPath)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(string(DriverSQLite), fmt.Sprintf("file:%s?%s", path, dbConfigString))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(1)

	return newDB(DriverSQLite, db, db)
}

func newDB(driver Driver, db, rdb *sql.DB) (*DB, error) {
	d := &DB{
		driver:     driver,
		db:         db,
		rdb:        rdb,
		SnapshotDB: NewSnapshotDB(db, rdb),
	}

	exists, err := d.TableExists(snapshotsTable)
	if err != nil {
		return nil, err
	}

	if !exists {
		// create table
		err = d.SnapshotDB.CreateSnapshotsTable()
		if err != nil {
			return nil, err
		}

		// create indexes
		err = d.SnapshotDB.CreateSnapshotsTableIndexes()
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

// TableExists checks if a table exists in the database
func (d *DB) TableExists(name string) (bool, error) {
	query := `
    SELECT EXISTS (
        SELECT 1
        FROM information_schema.tables
        WHERE table_schema = 'public'
        AND table_name = $1
    );
    `
	if d.driver == DriverSQLite {
		query = `SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = $1);`
	}

	var exists bool
	err := d.db.QueryRow(query, name).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Close closes the writer and reader connections
func (d *DB) Close() error {
	if d.rdb != d.db {
		err := d.rdb.Close()
		if err != nil {
			return err
		}
	}

	return d.db.Close()
}
