package contract

import "valetkleen-be/pkg/store"

// SessionRepository is the only access path to conversation state. The
// dialogue engine owns the sessions it loads; persistence backends may only
// load and save snapshots.
type SessionRepository interface {
	// GetOrCreate returns the session for id, creating it atomically when
	// missing. An empty id gets a freshly generated one. The boolean reports
	// whether a new session was created.
	GetOrCreate(id string) (*store.Session, bool)
	Get(id string) (*store.Session, bool)
	Save(session *store.Session)
	Delete(id string)
}
