package game

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionStore keeps live sessions with a TTL. Sessions are ephemeral: an
// expired or evicted session simply means the next open starts fresh.
type SessionStore struct {
	c *cache.Cache
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		c: cache.New(ttl, 2*ttl),
	}
}

// Open creates a fresh session under key, replacing any previous one for the
// same key. Reopening always resets attempts and regenerates options.
func (st *SessionStore) Open(key, correctName string, directory []string) *Session {
	sess := NewSession(correctName, directory)
	st.c.Set(key, sess, cache.DefaultExpiration)
	return sess
}

func (st *SessionStore) Get(key string) (*Session, bool) {
	v, ok := st.c.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

func (st *SessionStore) Delete(key string) {
	st.c.Delete(key)
}
