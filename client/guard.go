package client

import (
	"github.com/darasa/lms/core"
	"github.com/darasa/lms/core/user"
)

const LoginPath = "/login"

// Decision is the outcome of a navigation attempt.
type Decision int

const (
	Render Decision = iota
	RedirectLogin
)

// Route declares which roles may mount a path. A nil AllowedRoles set
// means the route is public.
type Route struct {
	Path         string
	AllowedRoles []string
}

// NewRoute accepts a single role or a set; both forms normalize
// identically inside Resolve.
func NewRoute(path string, allowedRoles ...string) Route {
	return Route{Path: path, AllowedRoles: allowedRoles}
}

// Resolve implements the route guard. Per navigation attempt:
// no session -> redirect to /login; session role in the allowed set
// (case-insensitive) -> render; anything else -> redirect to /login.
// A role mismatch deliberately goes to /login, not the user's own
// dashboard.
func Resolve(sess *Session, route Route) Decision {
	if len(route.AllowedRoles) == 0 {
		return Render
	}

	role := sess.Role()
	if role == "" {
		return RedirectLogin
	}

	for _, allowed := range route.AllowedRoles {
		if core.CleanString(allowed, true /* lower */) == role {
			return Render
		}
	}
	return RedirectLogin
}

// Routes returns the app's route table: public screens plus the
// per-role dashboard subtrees.
func Routes() []Route {
	superadmin := []string{user.RoleSuperAdmin}
	admin := []string{user.RoleAdmin}
	teacher := []string{user.RoleTeacher}
	parent := []string{user.RoleParent}
	student := []string{user.RoleStudent}

	routes := []Route{
		// public
		NewRoute("/"),
		NewRoute(LoginPath),
		NewRoute("/dashboard"),

		// super admin (root-level screens)
		NewRoute("/superadmin/dashboard", superadmin...),
	}
	for _, screen := range []string{
		"user-management",
		"role-permission-management",
		"academic-content-control",
		"reports-tracking-scheduling",
		"analytics-insights",
		"communication",
		"ai-support-tools",
		"enhancements-accessibility",
		"security-maintenance",
		"authentication-profile",
		"feedback",
	} {
		routes = append(routes,
			NewRoute("/"+screen, superadmin...),
			NewRoute("/admin/"+screen, admin...),
		)
	}
	routes = append(routes, NewRoute("/admin/dashboard", admin...))

	for _, screen := range []string{
		"dashboard",
		"profile",
		"content-library",
		"assignments",
		"class-performance",
		"messages",
		"leaderboard",
		"jee-neet-material",
		"homework-reminders",
		"ai-assistant",
		"parent-messaging",
	} {
		routes = append(routes, NewRoute("/teacher/"+screen, teacher...))
	}

	for _, screen := range []string{"dashboard", "attendance", "grades", "events", "messages"} {
		routes = append(routes, NewRoute("/parent/"+screen, parent...))
	}

	for _, screen := range []string{
		"dashboard",
		"courses",
		"assignments",
		"grades",
		"calendar",
		"messages",
		"profile",
	} {
		routes = append(routes, NewRoute("/student/"+screen, student...))
	}

	return routes
}

// FindRoute looks a path up in the route table.
func FindRoute(routes []Route, path string) (Route, bool) {
	for _, route := range routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}
