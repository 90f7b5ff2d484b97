package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/vodex-console/lib/localstore"
	"github.com/vodex-console/models"
)

// Persisted state keys, mirroring the browser localStorage contract.
const (
	keyAccessToken        = "accessToken"
	keyUser               = "user"
	keyTheme              = "theme"
	keyRememberedEmail    = "rememberedEmail"
	keyRememberedPassword = "rememberedPassword"
	keyRememberMe         = "rememberMe"
)

// SessionState is the authentication state of the console.
type SessionState string

const (
	// SessionUnknown holds until CheckSession runs at startup.
	SessionUnknown         SessionState = "unknown"
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAuthenticated   SessionState = "authenticated"
)

// SessionManager holds the authenticated user and token, persists them
// across restarts and gates the rest of the application. All methods are
// safe for concurrent use.
type SessionManager struct {
	backend Backend
	store   *localstore.Store

	mu    sync.Mutex
	state SessionState
	user  *models.User
	token string
}

// NewSessionManager creates a session manager over the given backend and
// persisted store. The state is Unknown until CheckSession runs.
func NewSessionManager(backend Backend, store *localstore.Store) *SessionManager {
	return &SessionManager{
		backend: backend,
		store:   store,
		state:   SessionUnknown,
	}
}

// State returns the current session state.
func (m *SessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the authenticated user, or nil when logged out.
func (m *SessionManager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// Token returns the current bearer token, falling back to the persisted
// store. Wire this as the adapter's token source.
func (m *SessionManager) Token() string {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()
	if token != "" {
		return token
	}
	stored, ok, err := m.store.Get(keyAccessToken)
	if err != nil || !ok {
		return ""
	}
	return stored
}

// Login validates and exchanges credentials, persisting the session. When
// rememberMe is set the credentials are also persisted for login prefill;
// when unset any previously remembered credentials are cleared.
func (m *SessionManager) Login(ctx context.Context, email, password string, rememberMe bool) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, NewValidationError("email and password are required")
	}

	auth, err := m.backend.Login(ctx, email, password)
	if err != nil {
		if IsAuthentication(err) || IsValidation(err) || IsNetwork(err) || IsServer(err) {
			return nil, err
		}
		return nil, NewAuthenticationError(err.Error())
	}

	m.mu.Lock()
	m.state = SessionAuthenticated
	user := auth.User
	m.user = &user
	m.token = auth.AccessToken
	m.mu.Unlock()

	m.store.Set(keyAccessToken, auth.AccessToken)
	if encoded, err := json.Marshal(auth.User); err == nil {
		m.store.Set(keyUser, string(encoded))
	}
	if rememberMe {
		m.store.Set(keyRememberedEmail, email)
		m.store.Set(keyRememberedPassword, password)
		m.store.Set(keyRememberMe, "true")
	} else {
		m.ClearRememberedCredentials()
	}

	result := auth.User
	return &result, nil
}

// CheckSession restores a previously authenticated session at startup. It
// returns (nil, nil) when nothing usable is stored; that is the normal
// logged-out path, not an error. A restore failure clears the stale state.
func (m *SessionManager) CheckSession(ctx context.Context) (*models.User, error) {
	token, ok, err := m.store.Get(keyAccessToken)
	if err != nil || !ok || token == "" {
		m.setUnauthenticated()
		return nil, nil
	}
	if tokenExpired(token) {
		m.clearSession()
		return nil, nil
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	user, err := m.backend.Me(ctx)
	if err != nil {
		m.clearSession()
		if IsNetwork(err) || IsServer(err) {
			return nil, err
		}
		return nil, nil
	}

	m.mu.Lock()
	m.state = SessionAuthenticated
	m.user = &user
	m.mu.Unlock()

	if encoded, err := json.Marshal(user); err == nil {
		m.store.Set(keyUser, string(encoded))
	}
	result := user
	return &result, nil
}

// Logout ends the session. The backend call is best effort; local state is
// cleared regardless. Remembered login prefill survives a logout.
func (m *SessionManager) Logout(ctx context.Context) {
	m.backend.Logout(ctx)
	m.clearSession()
}

// ForceLogout drops the session without a backend call. Wire this as the
// adapter's 401 hook.
func (m *SessionManager) ForceLogout() {
	m.clearSession()
}

// ClearRememberedCredentials wipes the login prefill data only.
func (m *SessionManager) ClearRememberedCredentials() {
	m.store.Delete(keyRememberedEmail, keyRememberedPassword, keyRememberMe)
}

// RememberedCredentials returns the persisted login prefill, if any.
func (m *SessionManager) RememberedCredentials() (email, password string, remembered bool) {
	flag, ok, err := m.store.Get(keyRememberMe)
	if err != nil || !ok || flag != "true" {
		return "", "", false
	}
	email, _, _ = m.store.Get(keyRememberedEmail)
	password, _, _ = m.store.Get(keyRememberedPassword)
	return email, password, true
}

func (m *SessionManager) setUnauthenticated() {
	m.mu.Lock()
	m.state = SessionUnauthenticated
	m.user = nil
	m.token = ""
	m.mu.Unlock()
}

func (m *SessionManager) clearSession() {
	m.setUnauthenticated()
	m.store.Delete(keyAccessToken, keyUser)
}

// tokenExpired reports whether a JWT's exp claim has passed. Opaque tokens
// (mock mode issues one) never expire locally; a malformed three-part token
// is treated as expired.
func tokenExpired(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return true
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return true
	}
	if claims.Exp == 0 {
		return false
	}
	return time.Now().Unix() >= claims.Exp
}
