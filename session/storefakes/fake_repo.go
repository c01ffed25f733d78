package storefakes

import (
	"sync"

	"github.com/chrom13/schoolmanager-web/session"
)

var _ session.Repo = (*FakeRepo)(nil)

// FakeRepo is an in-memory session.Repo for tests. Optional error fields let
// tests exercise best-effort persistence paths.
type FakeRepo struct {
	lock    sync.RWMutex
	state   session.PersistedState
	found   bool
	saves   int
	clears  int
	SaveErr error
	LoadErr error
}

func NewFakeRepo() *FakeRepo {
	return &FakeRepo{}
}

// Seed installs a persisted record as if written by an earlier process.
func (r *FakeRepo) Seed(state session.PersistedState) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.state = state
	r.found = true
}

func (r *FakeRepo) Save(state session.PersistedState) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.saves++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.state = state
	r.found = true
	return nil
}

func (r *FakeRepo) Load() (session.PersistedState, bool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.LoadErr != nil {
		return session.PersistedState{}, false, r.LoadErr
	}
	return r.state, r.found, nil
}

func (r *FakeRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.clears++
	r.state = session.PersistedState{}
	r.found = false
	return nil
}

// Saves reports how many times Save was called.
func (r *FakeRepo) Saves() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.saves
}

// Clears reports how many times Clear was called.
func (r *FakeRepo) Clears() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.clears
}
