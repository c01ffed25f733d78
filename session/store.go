package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/chrom13/schoolmanager-web/users"
)

// Store is the single source of truth for "is a user signed in". All session
// mutation funnels through Login, Logout and SetUser; no other component
// writes session state. Persistence is best-effort: a failed write is logged
// and never corrupts the in-memory session.
type Store struct {
	mu        sync.RWMutex
	current   Session
	repo      Repo
	log       zerolog.Logger
	listeners map[int]func(Session)
	nextID    int
}

// NewStore returns an empty, unauthenticated Store backed by repo.
func NewStore(repo Repo, logger zerolog.Logger) *Store {
	return &Store{
		repo:      repo,
		log:       logger.With().Str("component", "session").Logger(),
		listeners: make(map[int]func(Session)),
	}
}

// Hydrate reads the persisted record into memory. Absence leaves the store
// empty; an inconsistent record (token without user or vice versa) is
// discarded and cleared, recoverable by re-login.
func (s *Store) Hydrate() error {
	state, found, err := s.repo.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("hydrate failed, starting unauthenticated")
		return nil
	}
	if !found {
		return nil
	}
	if !state.Consistent() {
		s.log.Warn().Msg("persisted session inconsistent, discarding")
		if err := s.repo.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("clearing corrupt session record")
		}
		return nil
	}
	s.mu.Lock()
	s.current = Session{Token: state.Token, User: state.User}
	s.mu.Unlock()
	return nil
}

// Get returns a snapshot of the current session.
func (s *Store) Get() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the current bearer token, implementing api.TokenProvider.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Login atomically installs the token and profile and persists them. A
// malformed pair (token without user or vice versa) would violate the
// session invariant, so it clears the session instead of installing it.
func (s *Store) Login(token string, user *users.User) {
	if token == "" || user == nil {
		s.log.Warn().Bool("token", token != "").Bool("user", user != nil).
			Msg("incomplete login response, clearing session")
		s.Logout()
		return
	}
	s.mu.Lock()
	s.current = Session{Token: token, User: user}
	snapshot := s.current
	s.mu.Unlock()

	if err := s.repo.Save(PersistedState{Token: token, User: user, IsAuthenticated: true}); err != nil {
		s.log.Warn().Err(err).Msg("persisting session")
	}
	s.notify(snapshot)
}

// Logout atomically clears the session and removes the persisted record.
// Calling it while already signed out is a no-op for listeners' purposes but
// still safe.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = Session{}
	snapshot := s.current
	s.mu.Unlock()

	if err := s.repo.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("clearing persisted session")
	}
	s.notify(snapshot)
}

// SetUser replaces the profile without touching the token or auth state,
// used after profile-refresh calls. A nil user is ignored; the profile is
// never nulled independently of the token.
func (s *Store) SetUser(user *users.User) {
	if user == nil {
		return
	}
	s.mu.Lock()
	if s.current.Token == "" {
		// No session to attach the profile to.
		s.mu.Unlock()
		return
	}
	s.current.User = user
	snapshot := s.current
	s.mu.Unlock()

	if err := s.repo.Save(PersistedState{Token: snapshot.Token, User: user, IsAuthenticated: true}); err != nil {
		s.log.Warn().Err(err).Msg("persisting refreshed profile")
	}
	s.notify(snapshot)
}

// Subscribe registers a listener invoked after every session change. The
// returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Session)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(snapshot Session) {
	s.mu.RLock()
	fns := make([]func(Session), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
