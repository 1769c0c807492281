package echoapi

import (
	"fmt"
	"net/http"
	"testing"
)

func TestUserAPIQuery(t *testing.T) {
	env := setup(t)

	// empty store serves an empty list, not null
	tt := httpTest{
		name:     "Get all: empty",
		method:   http.MethodGet,
		path:     "/api/users",
		wantCode: http.StatusOK,
		wantData: []byte("[]"),
	}
	req, rec := newRequest(tt.method, tt.path)
	env.app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)

	usr1 := createTestUser(t, env.usrRepo, "awesome", "awesome@test.com", "", "Teacher")
	usr2 := createTestUser(t, env.usrRepo, "jdoe", "jdoe@test.com", "", "Student")

	tt = httpTest{
		name:     "Get all",
		method:   http.MethodGet,
		path:     "/api/users",
		wantCode: http.StatusOK,
		wantData: marchallObj(t, []interface{}{usr1, usr2}),
	}
	req, rec = newRequest(tt.method, tt.path)
	env.app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)

	// the password hash must never leak, under any key
	var users []map[string]interface{}
	decodeBody(t, rec, &users)
	for _, usr := range users {
		for _, key := range []string{"password", "passwordHash", "password_hash", "PasswordHash"} {
			if _, ok := usr[key]; ok {
				t.Errorf("response leaks %q: %v", key, usr)
			}
		}
	}
}

func TestUserAPICreate(t *testing.T) {
	env := setup(t)
	createTestUser(t, env.usrRepo, "jdoe", "jdoe@test.com", "", "Student")

	errorTests := []httpTest{
		{
			name:     "empty body",
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid email and short password",
			body:     []byte(`{"username": "bob", "email": "not-an-email", "password": "123"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown role",
			body:     []byte(`{"username": "bob", "email": "bob@test.com", "password": "secret1", "role": "wizard"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "username taken",
			body:     []byte(`{"username": "jdoe", "email": "other@test.com", "password": "secret1"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": {"username": "a user with this username already exists"}}`),
		},
		{
			name:     "email taken",
			body:     []byte(`{"username": "other", "email": "jdoe@test.com", "password": "secret1"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": {"email": "a user with this email already exists"}}`),
		},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/api/users", tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// field errors are reported per field
	req, rec := newRequest(http.MethodPost, "/api/users", []byte(`{"username": "bob", "email": "not-an-email", "password": "123"}`))
	env.app.ServeHTTP(rec, req)
	var fldErrs struct {
		Error map[string]string `json:"error"`
	}
	decodeBody(t, rec, &fldErrs)
	for _, fld := range []string{"email", "password"} {
		if fldErrs.Error[fld] == "" {
			t.Errorf("missing %q field error; got %v", fld, fldErrs.Error)
		}
	}

	// rejected requests must not touch the store
	req, rec = newRequest(http.MethodGet, "/api/users")
	env.app.ServeHTTP(rec, req)
	var users []map[string]interface{}
	decodeBody(t, rec, &users)
	if len(users) != 1 {
		t.Fatalf("store changed on rejected requests; users = %d; want 1", len(users))
	}

	t.Run("ok", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/users", []byte(`{"username": " alice ", "email": "Alice@Test.com", "password": "secret1", "role": "teacher"}`))
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var usr map[string]interface{}
		decodeBody(t, rec, &usr)
		if usr["id"] == "" || usr["id"] == nil {
			t.Error("missing id")
		}
		if usr["username"] != "alice" {
			t.Errorf("username = %v; want alice", usr["username"])
		}
		if usr["email"] != "alice@test.com" {
			t.Errorf("email = %v; want alice@test.com", usr["email"])
		}
		if usr["role"] != "Teacher" {
			t.Errorf("role = %v; want Teacher", usr["role"])
		}
		if usr["createdAt"] == nil {
			t.Error("missing createdAt")
		}
		if _, ok := usr["password"]; ok {
			t.Error("response leaks password")
		}
	})

	t.Run("default role", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/users", []byte(`{"username": "carol", "email": "carol@test.com", "password": "secret1"}`))
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var usr map[string]interface{}
		decodeBody(t, rec, &usr)
		if usr["role"] != "Student" {
			t.Errorf("role = %v; want Student", usr["role"])
		}
	})
}

func TestUserAPIUpdate(t *testing.T) {
	env := setup(t)
	usr := createTestUser(t, env.usrRepo, "jdoe", "jdoe@test.com", "secret1", "Student")
	other := createTestUser(t, env.usrRepo, "awesome", "awesome@test.com", "", "Teacher")

	tests := []httpTest{
		{
			name:     "not found",
			path:     "/api/users/does-not-exist",
			body:     []byte(`{"role": "Teacher"}`),
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "User not found"}`),
		},
		{
			name:     "username taken",
			path:     "/api/users/" + usr.ID,
			body:     []byte(fmt.Sprintf(`{"username": %q}`, other.Username)),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": {"username": "a user with this username already exists"}}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPut, tt.path, tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("ok", func(t *testing.T) {
		req, rec := newRequest(http.MethodPut, "/api/users/"+usr.ID, []byte(`{"role": "parent"}`))
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
		}
		var updated map[string]interface{}
		decodeBody(t, rec, &updated)
		if updated["role"] != "Parent" {
			t.Errorf("role = %v; want Parent", updated["role"])
		}
		if updated["username"] != usr.Username {
			t.Errorf("username = %v; want %v (unchanged)", updated["username"], usr.Username)
		}
	})
}

func TestUserAPIDelete(t *testing.T) {
	env := setup(t)
	usr := createTestUser(t, env.usrRepo, "jdoe", "jdoe@test.com", "", "Student")

	tests := []httpTest{
		{
			name:     "not found",
			path:     "/api/users/does-not-exist",
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "User not found"}`),
		},
		{
			name:     "ok",
			path:     "/api/users/" + usr.ID,
			wantCode: http.StatusOK,
			wantData: []byte(`{"success": true, "message": "User deleted successfully"}`),
		},
		{
			name:     "already deleted",
			path:     "/api/users/" + usr.ID,
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "User not found"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodDelete, tt.path)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	req, rec := newRequest(http.MethodGet, "/api/users")
	env.app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{name: "gone from store", wantCode: http.StatusOK, wantData: []byte("[]")}, rec)
}

func TestUserAPILogin(t *testing.T) {
	env := setup(t)
	usr := createTestUser(t, env.usrRepo, "jdoe", "jdoe@test.com", "secret1", "Teacher")

	errorTests := []httpTest{
		{
			name:     "empty body",
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown username",
			body:     []byte(`{"username": "nobody", "password": "secret1"}`),
			wantCode: http.StatusUnauthorized,
			wantData: []byte(`{"error": "Invalid credentials"}`),
		},
		{
			name:     "wrong password",
			body:     []byte(`{"username": "jdoe", "password": "nope"}`),
			wantCode: http.StatusUnauthorized,
			wantData: []byte(`{"error": "Invalid credentials"}`),
		},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/api/login", tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// created accounts can log in right away and the login response
	// echoes their id and role
	t.Run("create then login", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/users", []byte(`{"username": "alice", "email": "alice@test.com", "password": "secret1", "role": "Teacher"}`))
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var created map[string]interface{}
		decodeBody(t, rec, &created)

		req, rec = newRequest(http.MethodPost, "/api/login", []byte(`{"username": "alice", "password": "secret1"}`))
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp map[string]interface{}
		decodeBody(t, rec, &resp)
		if resp["id"] != created["id"] {
			t.Errorf("id = %v; want %v", resp["id"], created["id"])
		}
		if resp["role"] != "Teacher" {
			t.Errorf("role = %v; want Teacher", resp["role"])
		}
	})

	t.Run("ok", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/login", []byte(`{"username": "jdoe", "password": "secret1"}`))
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp map[string]interface{}
		decodeBody(t, rec, &resp)
		if resp["id"] != usr.ID {
			t.Errorf("id = %v; want %v", resp["id"], usr.ID)
		}
		if resp["username"] != usr.Username {
			t.Errorf("username = %v; want %v", resp["username"], usr.Username)
		}
		if resp["role"] != usr.Role {
			t.Errorf("role = %v; want %v", resp["role"], usr.Role)
		}
		if token, _ := resp["token"].(string); token == "" {
			t.Error("missing token")
		}
		if _, ok := resp["password"]; ok {
			t.Error("response leaks password")
		}
	})
}
