package console

import (
	"context"
	"testing"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/session"
)

func TestLoginSuccessUpdatesSession(t *testing.T) {
	notify := &recordingNotifier{}
	store := session.NewStore()
	auth := &stubAuthService{
		LoginFn: func(_ context.Context, input ports.LoginInput) (*domain.Identity, error) {
			return &domain.Identity{ID: 1, Username: input.Username, Roles: []string{domain.RoleUser}}, nil
		},
	}
	v := NewAuthView(auth, store, notify)

	if !v.Login(context.Background(), "alice", "secret99") {
		t.Fatal("login should succeed")
	}
	if !store.Authenticated() {
		t.Error("session must be authenticated after a successful login")
	}
	if len(notify.successes) != 1 {
		t.Errorf("successes = %v", notify.successes)
	}
}

func TestLoginFailureLeavesSessionAnonymous(t *testing.T) {
	notify := &recordingNotifier{}
	store := session.NewStore()
	auth := &stubAuthService{
		LoginFn: func(context.Context, ports.LoginInput) (*domain.Identity, error) {
			return nil, &client.APIError{StatusCode: 401, Message: "Bad credentials"}
		},
	}
	v := NewAuthView(auth, store, notify)

	if v.Login(context.Background(), "alice", "wrongpass") {
		t.Fatal("login should fail")
	}
	if store.Authenticated() {
		t.Error("a failed login must not touch the session")
	}
	if len(notify.errors) != 1 || notify.errors[0] != "Bad credentials" {
		t.Errorf("errors = %v", notify.errors)
	}
}

func TestLoginTransportFailureUsesFallbackMessage(t *testing.T) {
	notify := &recordingNotifier{}
	auth := &stubAuthService{
		LoginFn: func(context.Context, ports.LoginInput) (*domain.Identity, error) {
			return nil, &client.TransportError{Err: &failErr{}}
		},
	}
	v := NewAuthView(auth, session.NewStore(), notify)

	v.Login(context.Background(), "alice", "secret99")
	if len(notify.errors) != 1 || notify.errors[0] != "Login failed. Please try again." {
		t.Errorf("errors = %v", notify.errors)
	}
}

func TestRegisterSuccessLogsIn(t *testing.T) {
	store := session.NewStore()
	auth := &stubAuthService{
		RegisterFn: func(_ context.Context, input ports.RegisterInput) (*domain.Identity, error) {
			return &domain.Identity{ID: 2, Username: input.Username, Roles: []string{domain.RoleUser}}, nil
		},
	}
	v := NewAuthView(auth, store, &recordingNotifier{})

	if !v.Register(context.Background(), "bob", "bob@example.com", "secret99", "secret99") {
		t.Fatal("register should succeed")
	}
	if got := store.Identity(); got == nil || got.Username != "bob" {
		t.Errorf("session identity = %+v", got)
	}
}

func TestLogoutFailureKeepsSession(t *testing.T) {
	notify := &recordingNotifier{}
	store := session.NewStore()
	store.Login(domain.Identity{ID: 1, Username: "alice"})
	auth := &stubAuthService{
		SignoutFn: func(context.Context) error { return &failErr{} },
	}
	v := NewAuthView(auth, store, notify)

	v.Logout(context.Background())
	if !store.Authenticated() {
		t.Error("a failed signout must keep the local session")
	}
	if len(notify.errors) != 1 {
		t.Errorf("errors = %v", notify.errors)
	}
}

func TestLogoutSuccessClearsSession(t *testing.T) {
	store := session.NewStore()
	store.Login(domain.Identity{ID: 1, Username: "alice"})
	auth := &stubAuthService{
		SignoutFn: func(context.Context) error { return nil },
	}
	v := NewAuthView(auth, store, &recordingNotifier{})

	v.Logout(context.Background())
	if store.Authenticated() {
		t.Error("session must be anonymous after signout")
	}
}
