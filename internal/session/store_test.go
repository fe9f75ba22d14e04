package session

import (
	"testing"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

func TestLoginReplacesIdentity(t *testing.T) {
	store := NewStore()

	store.Login(domain.Identity{ID: 1, Username: "alice", Roles: []string{domain.RoleUser}})
	store.Login(domain.Identity{ID: 2, Username: "bob", Roles: []string{domain.RoleUser, domain.RoleAdmin}})

	got := store.Identity()
	if got == nil {
		t.Fatal("expected an identity after login")
	}
	if got.Username != "bob" {
		t.Errorf("expected last login to win, got %q", got.Username)
	}
	if !got.IsAdmin() {
		t.Error("expected admin role from last login")
	}
	if !store.Authenticated() {
		t.Error("expected Authenticated to be true")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Login(domain.Identity{ID: 1, Username: "alice"})

	store.Logout()
	store.Logout()

	if store.Authenticated() {
		t.Error("expected anonymous state after logout")
	}
	if store.Identity() != nil {
		t.Error("expected nil identity after logout")
	}
}

func TestSnapshotAuthenticatedMatchesIdentity(t *testing.T) {
	store := NewStore()

	snap := store.Snapshot()
	if snap.Authenticated || snap.Identity != nil {
		t.Error("fresh store must be anonymous")
	}

	store.Login(domain.Identity{ID: 1, Username: "alice"})
	snap = store.Snapshot()
	if !snap.Authenticated || snap.Identity == nil {
		t.Error("authenticated snapshot must carry an identity")
	}

	store.Logout()
	snap = store.Snapshot()
	if snap.Authenticated || snap.Identity != nil {
		t.Error("logged-out snapshot must be anonymous")
	}
}

func TestSubscribersSeeEveryTransition(t *testing.T) {
	store := NewStore()

	var seen []Snapshot
	unsubscribe := store.Subscribe(func(s Snapshot) { seen = append(seen, s) })

	store.Login(domain.Identity{ID: 1, Username: "alice"})
	store.Logout()

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if !seen[0].Authenticated || seen[0].Identity.Username != "alice" {
		t.Errorf("first notification should be the login: %+v", seen[0])
	}
	if seen[1].Authenticated || seen[1].Identity != nil {
		t.Errorf("second notification should be the logout: %+v", seen[1])
	}

	unsubscribe()
	store.Login(domain.Identity{ID: 2, Username: "bob"})
	if len(seen) != 2 {
		t.Error("unsubscribed listener must not be notified")
	}
}

func TestIdentityReturnsACopy(t *testing.T) {
	store := NewStore()
	store.Login(domain.Identity{ID: 1, Username: "alice", Roles: []string{domain.RoleUser}})

	got := store.Identity()
	got.Username = "mallory"
	got.Roles[0] = domain.RoleAdmin

	fresh := store.Identity()
	if fresh.Username != "alice" {
		t.Error("mutating the returned identity must not affect the store")
	}
	if fresh.Roles[0] != domain.RoleUser {
		t.Error("mutating the returned roles must not affect the store")
	}
}
