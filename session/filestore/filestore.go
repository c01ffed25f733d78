// Package filestore persists the session record as a JSON file, the default
// backend for the terminal client.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	errs "github.com/chrom13/schoolmanager-web/internal/errors"
	"github.com/chrom13/schoolmanager-web/session"
)

// Repo stores the session record at <dir>/<namespace>.json.
type Repo struct {
	path string
}

var _ session.Repo = (*Repo)(nil)

// New returns a Repo rooted at dir, creating dir if needed.
func New(dir string) (*Repo, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "[filestore.New] creating %s", dir)
	}
	return &Repo{path: filepath.Join(dir, session.Namespace+".json")}, nil
}

// Save writes the record atomically via a temp-file rename.
func (r *Repo) Save(state session.PersistedState) error {
	encoded, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[filestore.Save] encoding session")
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return errors.Wrap(err, "[filestore.Save] writing session file")
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return errors.Wrap(err, "[filestore.Save] replacing session file")
	}
	return nil
}

// Load reads the record. A missing file reports found=false; a file that
// does not parse is reported as an error so the store can discard it.
func (r *Repo) Load() (session.PersistedState, bool, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return session.PersistedState{}, false, nil
	}
	if err != nil {
		return session.PersistedState{}, false, errors.Wrap(err, "[filestore.Load] reading session file")
	}
	var state session.PersistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return session.PersistedState{}, false, errs.Wrapf(errs.ErrSessionCorrupt, "[filestore.Load] %v", err)
	}
	return state, true, nil
}

// Clear removes the persisted record. A missing file is not an error.
func (r *Repo) Clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[filestore.Clear] removing session file")
	}
	return nil
}
