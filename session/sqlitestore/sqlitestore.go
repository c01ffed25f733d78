// Package sqlitestore persists the session record in a local sqlite database,
// selected with storage.backend=sqlite. Useful when the client already keeps
// other local state in sqlite.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	errs "github.com/chrom13/schoolmanager-web/internal/errors"
	"github.com/chrom13/schoolmanager-web/session"
)

// Repo stores the session record as a single keyed row.
type Repo struct {
	db *sql.DB
}

var _ session.Repo = (*Repo)(nil)

// New opens (creating if needed) <dir>/schoolctl.db and ensures the schema.
func New(dir string) (*Repo, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "[sqlitestore.New] creating %s", dir)
	}
	path := filepath.Join(dir, "schoolctl.db")
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, errors.Wrap(err, "[sqlitestore.New] opening database")
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS client_state (
		namespace TEXT PRIMARY KEY,
		state TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "[sqlitestore.New] ensuring schema")
	}
	return &Repo{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Repo) Close() error {
	return r.db.Close()
}

// Save upserts the session record under the fixed namespace.
func (r *Repo) Save(state session.PersistedState) error {
	encoded, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "[sqlitestore.Save] encoding session")
	}
	_, err = r.db.Exec(`INSERT INTO client_state (namespace, state, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(namespace) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		session.Namespace, string(encoded))
	return errors.Wrap(err, "[sqlitestore.Save] upserting session")
}

// Load reads the record for the fixed namespace.
func (r *Repo) Load() (session.PersistedState, bool, error) {
	var raw string
	err := r.db.QueryRow(`SELECT state FROM client_state WHERE namespace = ?`, session.Namespace).Scan(&raw)
	if err == sql.ErrNoRows {
		return session.PersistedState{}, false, nil
	}
	if err != nil {
		return session.PersistedState{}, false, errors.Wrap(err, "[sqlitestore.Load] querying session")
	}
	var state session.PersistedState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return session.PersistedState{}, false, errs.Wrapf(errs.ErrSessionCorrupt, "[sqlitestore.Load] %v", err)
	}
	return state, true, nil
}

// Clear removes the persisted record.
func (r *Repo) Clear() error {
	_, err := r.db.Exec(`DELETE FROM client_state WHERE namespace = ?`, session.Namespace)
	return errors.Wrap(err, "[sqlitestore.Clear] deleting session")
}
