package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/planitapp/planit/internal/common"
	"github.com/planitapp/planit/internal/server/auth"
	"github.com/planitapp/planit/internal/server/config"
)

func newUserService(t *testing.T) (*UserService, *fakeUsersRepo) {
	t.Helper()

	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })

	users := newFakeUsersRepo()
	m := &fakeRepoManager{u: users, t: &fakeTasksRepo{}}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	return NewUserService(db, m, cfg), users
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	s, users := newUserService(t)

	user, token, err := s.Register(ctx, "  Alice@Example.COM ", "s3cret", " Alice ")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Name == nil || *user.Name != "Alice" {
		t.Fatalf("name not trimmed: %v", user.Name)
	}
	if !auth.VerifyPassword("s3cret", user.PasswordSalt, user.PasswordHash) {
		t.Fatalf("stored credentials do not verify")
	}

	claims, err := auth.ParseToken(token, []byte("development-secret"))
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token carries wrong user id: %q", claims.UserID)
	}

	if _, err := users.GetByID(ctx, user.ID); err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
}

func TestUserService_Register_EmptyName(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)

	user, _, err := s.Register(ctx, "bob@example.com", "pw", "   ")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.Name != nil {
		t.Fatalf("expected nil name, got %q", *user.Name)
	}
}

func TestUserService_Register_MissingFields(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)

	cases := []struct{ email, password string }{
		{"", "pw"},
		{"a@b.c", ""},
		{"   ", "pw"},
	}
	for _, tc := range cases {
		if _, _, err := s.Register(ctx, tc.email, tc.password, ""); !errors.Is(err, common.ErrorEmailPasswordRequired) {
			t.Fatalf("(%q, %q): got %v, want ErrorEmailPasswordRequired", tc.email, tc.password, err)
		}
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)

	if _, _, err := s.Register(ctx, "carol@example.com", "pw", ""); err != nil {
		t.Fatalf("first register error: %v", err)
	}
	if _, _, err := s.Register(ctx, "Carol@Example.com", "other", ""); !errors.Is(err, common.ErrorEmailExists) {
		t.Fatalf("got %v, want ErrorEmailExists", err)
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)

	registered, _, err := s.Register(ctx, "dave@example.com", "correct-horse", "")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	user, token, err := s.Login(ctx, "Dave@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned wrong account: %q", user.ID)
	}
	if token == "" {
		t.Fatalf("login returned empty token")
	}
}

func TestUserService_Login_UniformFailure(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)

	if _, _, err := s.Register(ctx, "erin@example.com", "right", ""); err != nil {
		t.Fatalf("register error: %v", err)
	}

	_, _, errWrongPassword := s.Login(ctx, "erin@example.com", "wrong")
	_, _, errUnknownEmail := s.Login(ctx, "nobody@example.com", "whatever")

	if !errors.Is(errWrongPassword, common.ErrorInvalidCredentials) {
		t.Fatalf("wrong password: got %v", errWrongPassword)
	}
	// unknown email and wrong password must be indistinguishable
	if !errors.Is(errUnknownEmail, errWrongPassword) {
		t.Fatalf("failure modes differ: %v vs %v", errUnknownEmail, errWrongPassword)
	}
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)

	registered, token, err := s.Register(ctx, "frank@example.com", "pw", "")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	user, err := s.Authenticate(ctx, "Bearer "+token)
	if err != nil {
		t.Fatalf("authenticate error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("authenticate resolved wrong account: %q", user.ID)
	}
}

func TestUserService_Authenticate_Failures(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)

	_, token, err := s.Register(ctx, "grace@example.com", "pw", "")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	if _, err := s.Authenticate(ctx, token); !errors.Is(err, common.ErrorMissingAuthHeader) {
		t.Fatalf("no scheme prefix: got %v", err)
	}
	if _, err := s.Authenticate(ctx, ""); !errors.Is(err, common.ErrorMissingAuthHeader) {
		t.Fatalf("empty header: got %v", err)
	}
	if _, err := s.Authenticate(ctx, "Bearer not.a.token"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("garbage token: got %v", err)
	}

	// token signed with a different secret
	foreign, err := auth.GenerateToken("u1", "x@y.z", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := s.Authenticate(ctx, "Bearer "+foreign); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("foreign-signed token: got %v", err)
	}

	// valid token whose account no longer exists
	orphan, err := auth.GenerateToken("gone", "gone@example.com", []byte("development-secret"), time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := s.Authenticate(ctx, "Bearer "+orphan); !errors.Is(err, common.ErrorAccountNotFound) {
		t.Fatalf("deleted account: got %v", err)
	}
}
