package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/darasa/lms/core"
)

type (
	// Account is the client-side copy of the logged-in user.
	Account struct {
		ID       string `json:"id,omitempty"`
		Username string `json:"username"`
		Role     string `json:"role"`
		Token    string `json:"token,omitempty"`
	}

	// Session is the single persisted client-side record. The legacy
	// operator flags are kept for compatibility with sessions written by
	// older builds; they are never written together with CurrentUser.
	Session struct {
		CurrentUser *Account `json:"currentUser,omitempty"`

		IsAdminLoggedIn bool   `json:"isAdminLoggedIn,omitempty"`
		AdminUsername   string `json:"adminUsername,omitempty"`
		AdminRole       string `json:"adminRole,omitempty"`
	}

	// SessionStore holds at most one Session. Set overwrites atomically
	// from the client's perspective.
	SessionStore interface {
		Get() (*Session, error)
		Set(sess *Session) error
		Clear() error
	}
)

// Role returns the normalized (lower-case) role of the session, or "".
// Either the unified representation or the legacy flags is sufficient.
func (s *Session) Role() string {
	if s == nil {
		return ""
	}
	if s.CurrentUser != nil {
		return core.CleanString(s.CurrentUser.Role, true /* lower */)
	}
	if s.IsAdminLoggedIn {
		return core.CleanString(s.AdminRole, true /* lower */)
	}
	return ""
}

// fileSessionStore persists the session as a JSON file so it survives
// restarts, the localStorage analogue. Nothing in it is signed or
// verified; whoever can write the file owns the session.
type fileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

func (store *fileSessionStore) Get() (*Session, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading session file")
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.Wrap(err, "decoding session file")
	}
	return &sess, nil
}

func (store *fileSessionStore) Set(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}

	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}

	// write-then-rename so a concurrent Get never sees a torn session
	tmp := store.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "writing session file")
	}
	return errors.Wrap(os.Rename(tmp, store.path), "replacing session file")
}

func (store *fileSessionStore) Clear() error {
	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}

// memorySessionStore is the SessionStore fake for tests.
type memorySessionStore struct {
	mutex sync.RWMutex
	sess  *Session
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (store *memorySessionStore) Get() (*Session, error) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	return store.sess, nil
}

func (store *memorySessionStore) Set(sess *Session) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.sess = sess
	return nil
}

func (store *memorySessionStore) Clear() error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.sess = nil
	return nil
}

// SessionManager owns the current session. Roles are normalized to
// lower case once here instead of at every call site.
type SessionManager struct {
	store SessionStore
}

func NewSessionManager(store SessionStore) *SessionManager {
	return &SessionManager{store: store}
}

func (m *SessionManager) Login(acct Account) error {
	acct.Role = core.CleanString(acct.Role, true /* lower */)
	return m.store.Set(&Session{CurrentUser: &acct})
}

// LoginLegacyOperator records a session for one of the hard-coded
// operator accounts using the legacy flag representation.
func (m *SessionManager) LoginLegacyOperator(username, role string) error {
	return m.store.Set(&Session{
		IsAdminLoggedIn: true,
		AdminUsername:   username,
		AdminRole:       core.CleanString(role, true /* lower */),
	})
}

func (m *SessionManager) Logout() error {
	return m.store.Clear()
}

func (m *SessionManager) Current() (*Session, error) {
	return m.store.Get()
}

// CurrentRole returns the normalized role of the persisted session, or
// "" when no session is present.
func (m *SessionManager) CurrentRole() string {
	sess, err := m.store.Get()
	if err != nil {
		return ""
	}
	return sess.Role()
}
