package user_test

import (
	"context"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/darasa/lms/core"
	"github.com/darasa/lms/core/user"
	inmemdb "github.com/darasa/lms/storage/database/inmem"
)

func newTestService() (*user.Service, *validator.Validate) {
	svc := user.NewService(inmemdb.NewUserRepository(inmemdb.NewDB()))

	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	return svc, validate
}

func TestServiceCreate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	usr, err := svc.Create(ctx, user.NewUser{Username: "jdoe", Email: "jdoe@test.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if usr.ID == "" {
		t.Error("missing ID")
	}
	if usr.Role != user.RoleStudent {
		t.Errorf("Role = %v; want %v (default)", usr.Role, user.RoleStudent)
	}
	if usr.CreatedAt.IsZero() {
		t.Error("missing CreatedAt")
	}
	if string(usr.PasswordHash) == "secret1" {
		t.Error("password stored in clear")
	}
	if err := usr.CheckPassword("secret1"); err != nil {
		t.Errorf("CheckPassword() failed: %v", err)
	}
}

func TestServiceAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	usr, err := svc.Create(ctx, user.NewUser{Username: "jdoe", Email: "jdoe@test.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	t.Run("ok", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, " jdoe ", "secret1")
		if err != nil {
			t.Fatalf("Authenticate() failed: %v", err)
		}
		if got.ID != usr.ID {
			t.Errorf("ID = %v; want %v", got.ID, usr.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Authenticate(ctx, "jdoe", "nope"); errors.Cause(err) != user.ErrNotFound {
			t.Errorf("err = %v; want %v", err, user.ErrNotFound)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		if _, err := svc.Authenticate(ctx, "nobody", "secret1"); errors.Cause(err) != user.ErrNotFound {
			t.Errorf("err = %v; want %v", err, user.ErrNotFound)
		}
	})
}

func TestNewUserValidate(t *testing.T) {
	svc, validate := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, user.NewUser{Username: "jdoe", Email: "jdoe@test.com", Password: "secret1"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	t.Run("cleans input", func(t *testing.T) {
		nu := user.NewUser{Username: " alice ", Email: " Alice@Test.Com ", Password: "secret1", Role: "teacher"}
		if err := nu.Validate(validate, svc); err != nil {
			t.Fatalf("Validate() failed: %v", err)
		}
		if nu.Username != "alice" {
			t.Errorf("Username = %q; want alice", nu.Username)
		}
		if nu.Email != "alice@test.com" {
			t.Errorf("Email = %q; want alice@test.com", nu.Email)
		}
		if nu.Role != user.RoleTeacher {
			t.Errorf("Role = %q; want %q", nu.Role, user.RoleTeacher)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		nu := user.NewUser{Username: "alice", Email: "alice@test.com", Password: "secret1", Role: "wizard"}
		err := nu.Validate(validate, svc)
		if _, ok := err.(validator.ValidationErrors); !ok {
			t.Fatalf("err = %v; want validator.ValidationErrors", err)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		nu := user.NewUser{Username: "jdoe", Email: "other@test.com", Password: "secret1"}
		err := nu.Validate(validate, svc)
		vErr, ok := errors.Cause(err).(*core.ValidationError)
		if !ok {
			t.Fatalf("err = %v; want *core.ValidationError", err)
		}
		if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "username" {
			t.Errorf("Fields = %v; want one error on username", vErr.Fields)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		nu := user.NewUser{Username: "other", Email: "jdoe@test.com", Password: "secret1"}
		err := nu.Validate(validate, svc)
		vErr, ok := errors.Cause(err).(*core.ValidationError)
		if !ok {
			t.Fatalf("err = %v; want *core.ValidationError", err)
		}
		if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "email" {
			t.Errorf("Fields = %v; want one error on email", vErr.Fields)
		}
	})
}

func TestUpdateUserValidate(t *testing.T) {
	svc, validate := newTestService()
	ctx := context.Background()

	usr, err := svc.Create(ctx, user.NewUser{Username: "jdoe", Email: "jdoe@test.com", Password: "secret1", Role: "Teacher"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	t.Run("empty fields keep original values", func(t *testing.T) {
		uu := user.UpdateUser{}
		if err := uu.Validate(usr, validate, svc); err != nil {
			t.Fatalf("Validate() failed: %v", err)
		}
		if uu.Username != usr.Username || uu.Email != usr.Email || uu.Role != usr.Role {
			t.Errorf("got %+v; want original values of %+v", uu, usr)
		}
	})

	// keeping one's own username is not a conflict
	t.Run("self excluded from uniqueness", func(t *testing.T) {
		uu := user.UpdateUser{Username: usr.Username, Role: "parent"}
		if err := uu.Validate(usr, validate, svc); err != nil {
			t.Fatalf("Validate() failed: %v", err)
		}
		if uu.Role != user.RoleParent {
			t.Errorf("Role = %q; want %q", uu.Role, user.RoleParent)
		}
	})
}

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Teacher", user.RoleTeacher},
		{"teacher", user.RoleTeacher},
		{"TEACHER", user.RoleTeacher},
		{" superadmin ", user.RoleSuperAdmin},
		{"Student", user.RoleStudent},
		{"wizard", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := user.NormalizeRole(tt.in); got != tt.want {
			t.Errorf("NormalizeRole(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
