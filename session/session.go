package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chrom13/schoolmanager-web/users"
)

// Namespace is the fixed key the persisted session record is stored under.
const Namespace = "auth-storage"

// Session is the client-side view of the signed-in user. Token and User are
// always set or cleared together; Authenticated derives from both.
type Session struct {
	Token string
	User  *users.User
}

// Authenticated reports whether a user is signed in. It is true if and only
// if both the token and the profile are present.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Verified reports whether the signed-in user has a verified email address.
func (s Session) Verified() bool {
	return s.User.Verified()
}

// TokenExpiry returns the token's expiry claim when the bearer token is a
// JWT carrying one. Opaque tokens report no expiry. This is advisory only;
// the server remains the authority on token validity.
func (s Session) TokenExpiry() (time.Time, bool) {
	if s.Token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// PersistedState is the durable record written on every login/logout,
// mirroring the in-memory session.
type PersistedState struct {
	Token           string      `json:"token"`
	User            *users.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

// Consistent reports whether the record satisfies the session invariant:
// token and user both present or both absent, with the flag agreeing, and
// the stored role one the platform knows.
func (p PersistedState) Consistent() bool {
	has := p.Token != "" && p.User != nil
	empty := p.Token == "" && p.User == nil
	if !has && !empty {
		return false
	}
	if has && !p.User.Role.Valid() {
		return false
	}
	return p.IsAuthenticated == has
}

// Repo persists the session record. Implementations live in filestore
// (JSON file) and sqlitestore (sqlite database); storefakes has an
// in-memory fake for tests.
type Repo interface {
	Save(state PersistedState) error
	Load() (state PersistedState, found bool, err error)
	Clear() error
}
