package memory

import (
	"testing"
	"time"

	"valetkleen-be/pkg/store"
)

func TestGetOrCreateIsIdempotentPerID(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)

	first, created := repo.GetOrCreate("sess-1")
	if !created {
		t.Fatalf("expected first call to create the session")
	}
	second, created := repo.GetOrCreate("sess-1")
	if created {
		t.Fatalf("expected second call to reuse the session")
	}
	if first != second {
		t.Fatalf("expected the same session instance on both calls")
	}
}

func TestGetOrCreateGeneratesIDWhenEmpty(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)

	sess, created := repo.GetOrCreate("")
	if !created {
		t.Fatalf("expected a fresh session")
	}
	if sess.ID == "" {
		t.Fatalf("expected a generated session id")
	}
	if got, found := repo.Get(sess.ID); !found || got != sess {
		t.Fatalf("expected the generated id to resolve to the new session")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)

	a, _ := repo.GetOrCreate("sess-a")
	b, _ := repo.GetOrCreate("sess-b")

	a.Customer.Name = "Ada Brown"
	a.Step = store.StepSelectingItems
	repo.Save(a)

	if b.Customer.Name != "" || b.Step != store.StepWelcome {
		t.Fatalf("state from one session leaked into another: %+v", b)
	}
}

func TestExpiredSessionsAreDropped(t *testing.T) {
	repo := NewSessionRepository(20*time.Millisecond, 10*time.Millisecond)

	repo.GetOrCreate("sess-ttl")
	time.Sleep(60 * time.Millisecond)

	if _, found := repo.Get("sess-ttl"); found {
		t.Fatalf("expected the session to expire")
	}
	if _, created := repo.GetOrCreate("sess-ttl"); !created {
		t.Fatalf("expected a fresh session after expiry")
	}
}

func TestSaveRefreshesTTL(t *testing.T) {
	repo := NewSessionRepository(50*time.Millisecond, 10*time.Millisecond)

	sess, _ := repo.GetOrCreate("sess-active")
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		repo.Save(sess)
	}

	if _, found := repo.Get("sess-active"); !found {
		t.Fatalf("expected an active session to survive past the base ttl")
	}
}

func TestDeleteRemovesSession(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)

	repo.GetOrCreate("sess-gone")
	repo.Delete("sess-gone")

	if _, found := repo.Get("sess-gone"); found {
		t.Fatalf("expected the session to be gone")
	}
}
