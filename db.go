package assetforge

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
)

// Cache records the outputs produced from each source checksum and job
// fingerprint.
type Cache struct {
	db *sql.DB
}

func NewCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	// Workers share the cache; serialise writers on one connection
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, output TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, fingerprint TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup reports whether output was last produced from a source with the
// given checksum using a job with the given fingerprint.
func (c *Cache) Lookup(output, sum, fingerprint string) (bool, error) {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM asset WHERE output = ? AND sha1 = ? AND fingerprint = ?", output, sum, fingerprint).Scan(&id); err {
	case sql.ErrNoRows:
		return false, nil
	case nil:
		return true, nil
	default:
		return false, err
	}
}

// Record stores how output was produced, replacing any previous record.
func (c *Cache) Record(output, sum, fingerprint string, width, height int) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO asset (output, sha1, fingerprint, width, height) VALUES (?, ?, ?, ?, ?)", output, sum, fingerprint, width, height); err != nil {
		return err
	}
	return nil
}

// Forget removes any record for output.
func (c *Cache) Forget(output string) error {
	_, err := c.db.Exec("DELETE FROM asset WHERE output = ?", output)
	return err
}

// Count returns the number of recorded outputs.
func (c *Cache) Count() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM asset").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
