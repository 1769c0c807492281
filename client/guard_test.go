package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sessionWithRole(role string) *Session {
	return &Session{CurrentUser: &Account{Username: "someone", Role: role}}
}

func TestResolve(t *testing.T) {
	teacherRoute := NewRoute("/teacher/dashboard", "Teacher")

	tests := []struct {
		name  string
		sess  *Session
		route Route
		want  Decision
	}{
		{
			name:  "public route without session",
			sess:  nil,
			route: NewRoute("/login"),
			want:  Render,
		},
		{
			name:  "public route with session",
			sess:  sessionWithRole("student"),
			route: NewRoute("/"),
			want:  Render,
		},
		{
			name:  "no session",
			sess:  nil,
			route: teacherRoute,
			want:  RedirectLogin,
		},
		{
			name:  "empty session",
			sess:  &Session{},
			route: teacherRoute,
			want:  RedirectLogin,
		},
		{
			name:  "matching role",
			sess:  sessionWithRole("teacher"),
			route: teacherRoute,
			want:  Render,
		},
		{
			name:  "matching role, different casing",
			sess:  sessionWithRole("TEACHER"),
			route: teacherRoute,
			want:  Render,
		},
		{
			name:  "role mismatch goes to login, not own dashboard",
			sess:  sessionWithRole("student"),
			route: teacherRoute,
			want:  RedirectLogin,
		},
		{
			name:  "role set",
			sess:  sessionWithRole("admin"),
			route: NewRoute("/reports", "Admin", "SuperAdmin"),
			want:  Render,
		},
		{
			name: "legacy operator session",
			sess: &Session{
				IsAdminLoggedIn: true,
				AdminUsername:   "admin",
				AdminRole:       "Admin",
			},
			route: NewRoute("/admin/dashboard", "Admin"),
			want:  Render,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.sess, tt.route))
		})
	}
}

func TestRoutes(t *testing.T) {
	routes := Routes()

	// spot-check the table against the app's screens
	tests := []struct {
		path   string
		public bool
		role   string
	}{
		{path: "/", public: true},
		{path: "/login", public: true},
		{path: "/dashboard", public: true},
		{path: "/superadmin/dashboard", role: "SuperAdmin"},
		{path: "/user-management", role: "SuperAdmin"},
		{path: "/admin/user-management", role: "Admin"},
		{path: "/admin/dashboard", role: "Admin"},
		{path: "/teacher/jee-neet-material", role: "Teacher"},
		{path: "/teacher/ai-assistant", role: "Teacher"},
		{path: "/parent/attendance", role: "Parent"},
		{path: "/student/calendar", role: "Student"},
	}
	for _, tt := range tests {
		route, ok := FindRoute(routes, tt.path)
		if !assert.True(t, ok, "route %s not found", tt.path) {
			continue
		}
		if tt.public {
			assert.Empty(t, route.AllowedRoles, "route %s should be public", tt.path)
		} else {
			assert.Equal(t, []string{tt.role}, route.AllowedRoles, "route %s", tt.path)
		}
	}

	// every guarded route redirects anonymous users to /login
	for _, route := range routes {
		if len(route.AllowedRoles) == 0 {
			continue
		}
		assert.Equal(t, RedirectLogin, Resolve(nil, route), "route %s", route.Path)
	}
}
