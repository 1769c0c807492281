package client

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/darasa/lms/core"
)

// Hard-coded operator accounts. They are matched client-side before any
// network call and must keep working when the API is unreachable.
var operatorAccounts = []struct {
	username string
	password string
	role     string
}{
	{username: "superadmin", password: "superadmin123", role: "superadmin"},
	{username: "admin", password: "admin123", role: "admin"},
}

// Authenticator drives the login/logout flow: operator accounts first,
// then the HTTP API, recording the resulting session either way.
type Authenticator struct {
	api      *Client
	sessions *SessionManager
}

func NewAuthenticator(api *Client, sessions *SessionManager) *Authenticator {
	return &Authenticator{api: api, sessions: sessions}
}

// Login authenticates the credentials and returns the dashboard path to
// navigate to. The returned error preserves the HTTP status code inside
// its message (see APIError); use FailureMessage for user-facing text.
func (a *Authenticator) Login(username, password string) (string, error) {
	username = core.CleanString(username)

	for _, op := range operatorAccounts {
		if op.username == username && op.password == password {
			if err := a.sessions.LoginLegacyOperator(op.username, op.role); err != nil {
				return "", errors.Wrap(err, "persisting operator session")
			}
			return DashboardPath(op.role), nil
		}
	}

	usr, err := a.api.LoginUser(Credentials{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	acct := Account{
		ID:       usr.ID,
		Username: usr.Username,
		Role:     usr.Role,
		Token:    usr.Token,
	}
	if err := a.sessions.Login(acct); err != nil {
		return "", errors.Wrap(err, "persisting session")
	}
	return DashboardPath(usr.Role), nil
}

func (a *Authenticator) Logout() error {
	return a.sessions.Logout()
}

// DashboardPath maps a role (any casing) to its dashboard route.
func DashboardPath(role string) string {
	switch core.CleanString(role, true /* lower */) {
	case "admin":
		return "/admin/dashboard"
	case "superadmin":
		return "/superadmin/dashboard"
	case "teacher":
		return "/teacher/dashboard"
	case "parent":
		return "/parent/dashboard"
	case "student":
		return "/student/dashboard"
	default:
		return "/"
	}
}

// FailureMessage translates a Login error into user-facing text,
// distinguishing bad credentials from an unreachable server.
func FailureMessage(err error) string {
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		if apiErr.StatusCode == 401 || strings.Contains(apiErr.Error(), "401") {
			return "Invalid username or password"
		}
		return "An error occurred during login."
	}
	return "Unable to connect to the server."
}
