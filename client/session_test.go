package client

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/lib/localstore"
)

// countingBackend counts login attempts that actually reach the backend.
type countingBackend struct {
	Backend
	logins atomic.Int64
}

func (b *countingBackend) Login(ctx context.Context, email, password string) (dto.AuthResponse, error) {
	b.logins.Add(1)
	return b.Backend.Login(ctx, email, password)
}

func newTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("localstore.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoginRejectsBlankCredentialsWithoutBackendCall(t *testing.T) {
	backend := &countingBackend{Backend: NewMockBackend()}
	store := newTestStore(t)
	session := NewSessionManager(backend, store)

	if _, err := session.Login(context.Background(), "", "secret", false); !IsValidation(err) {
		t.Errorf("blank email: got %v, want validation error", err)
	}
	if _, err := session.Login(context.Background(), "demo@vodex.com", "", false); !IsValidation(err) {
		t.Errorf("blank password: got %v, want validation error", err)
	}
	if got := backend.logins.Load(); got != 0 {
		t.Errorf("backend saw %d login calls, want 0", got)
	}
}

func TestMockLoginReturnsFixedAdmin(t *testing.T) {
	store := newTestStore(t)
	session := NewSessionManager(NewMockBackend(), store)

	user, err := session.Login(context.Background(), "demo@vodex.com", "anything", false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "demo@vodex.com" || string(user.Role) != "admin" {
		t.Errorf("user = %s role %s, want demo@vodex.com admin", user.Email, user.Role)
	}
	if session.Token() != MockAccessToken {
		t.Errorf("token = %q, want %q", session.Token(), MockAccessToken)
	}
	if session.State() != SessionAuthenticated {
		t.Errorf("state = %s, want authenticated", session.State())
	}
}

func TestCheckSessionRestoresAcrossReload(t *testing.T) {
	backend := NewMockBackend()
	store := newTestStore(t)

	session := NewSessionManager(backend, store)
	if _, err := session.Login(context.Background(), "demo@vodex.com", "pw", false); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A fresh manager over the same store simulates an app reload.
	reloaded := NewSessionManager(backend, store)
	user, err := reloaded.CheckSession(context.Background())
	if err != nil {
		t.Fatalf("CheckSession: %v", err)
	}
	if user == nil || user.Email != "demo@vodex.com" {
		t.Fatalf("restored user = %+v, want demo@vodex.com", user)
	}
	if reloaded.State() != SessionAuthenticated {
		t.Errorf("state = %s, want authenticated", reloaded.State())
	}
}

func TestCheckSessionWithNothingStored(t *testing.T) {
	session := NewSessionManager(NewMockBackend(), newTestStore(t))

	user, err := session.CheckSession(context.Background())
	if err != nil {
		t.Fatalf("CheckSession with empty store errored: %v", err)
	}
	if user != nil {
		t.Fatalf("restored user = %+v, want nil", user)
	}
	if session.State() != SessionUnauthenticated {
		t.Errorf("state = %s, want unauthenticated", session.State())
	}
}

func TestLogoutPreservesRememberedCredentials(t *testing.T) {
	store := newTestStore(t)
	session := NewSessionManager(NewMockBackend(), store)
	ctx := context.Background()

	if _, err := session.Login(ctx, "demo@vodex.com", "pw", true); err != nil {
		t.Fatalf("Login: %v", err)
	}
	session.Logout(ctx)

	if session.State() != SessionUnauthenticated {
		t.Errorf("state after logout = %s, want unauthenticated", session.State())
	}
	if session.Token() != "" {
		t.Errorf("token survives logout: %q", session.Token())
	}
	email, password, ok := session.RememberedCredentials()
	if !ok || email != "demo@vodex.com" || password != "pw" {
		t.Errorf("remembered = %q/%q ok=%v, want demo@vodex.com/pw", email, password, ok)
	}

	session.ClearRememberedCredentials()
	if _, _, ok := session.RememberedCredentials(); ok {
		t.Error("remembered credentials survive explicit clear")
	}
}

func TestLoginWithoutRememberClearsPrefill(t *testing.T) {
	store := newTestStore(t)
	session := NewSessionManager(NewMockBackend(), store)
	ctx := context.Background()

	if _, err := session.Login(ctx, "demo@vodex.com", "pw", true); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := session.Login(ctx, "demo@vodex.com", "pw2", false); err != nil {
		t.Fatalf("second login: %v", err)
	}
	if _, _, ok := session.RememberedCredentials(); ok {
		t.Error("prefill survives a login with rememberMe off")
	}
}

func TestForceLogoutDropsSession(t *testing.T) {
	store := newTestStore(t)
	session := NewSessionManager(NewMockBackend(), store)

	if _, err := session.Login(context.Background(), "demo@vodex.com", "pw", false); err != nil {
		t.Fatalf("Login: %v", err)
	}
	session.ForceLogout()
	if session.State() != SessionUnauthenticated || session.Token() != "" {
		t.Errorf("state=%s token=%q after forced logout", session.State(), session.Token())
	}
}

func TestTokenExpired(t *testing.T) {
	// header.payload.signature with exp in the past
	// payload {"exp":1} base64url-encoded
	expired := "eyJhbGciOiJIUzI1NiJ9.eyJleHAiOjF9.sig"
	if !tokenExpired(expired) {
		t.Error("past exp treated as live")
	}
	// exp far in the future
	future := "eyJhbGciOiJIUzI1NiJ9.eyJleHAiOjQxMDI0NDQ4MDB9.sig"
	if tokenExpired(future) {
		t.Error("future exp treated as expired")
	}
	// opaque tokens never expire locally
	if tokenExpired(MockAccessToken) {
		t.Error("opaque mock token treated as expired")
	}
	// malformed payload in a three-part token is expired
	if !tokenExpired("a.%%%.c") {
		t.Error("malformed payload treated as live")
	}
}
