package memory

import (
	"time"

	"valetkleen-be/internal/repository/contract"
	"valetkleen-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps conversation state in-process with a TTL. Expired
// sessions are purged on the cleanup interval; eviction only unlinks the
// entry, so a turn already holding the session pointer finishes safely.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) contract.SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// GetOrCreate is atomic: cache.Add fails when the key exists, so two first
// messages racing on the same id cannot both create a session.
func (r *SessionRepository) GetOrCreate(id string) (*store.Session, bool) {
	if id == "" {
		id = uuid.NewString()
	}

	fresh := store.NewSession(id)
	if err := r.cache.Add(id, fresh, cache.DefaultExpiration); err == nil {
		return fresh, true
	}
	if x, found := r.cache.Get(id); found {
		return x.(*store.Session), false
	}
	// Lost a race with expiry between Add and Get; take ownership again.
	r.cache.Set(id, fresh, cache.DefaultExpiration)
	return fresh, true
}

func (r *SessionRepository) Get(id string) (*store.Session, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// Save refreshes the TTL, so active conversations never expire mid-flow.
func (r *SessionRepository) Save(session *store.Session) {
	session.UpdatedAt = time.Now()
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(id string) {
	r.cache.Delete(id)
}
