package service

import (
	"errors"
	"testing"
	"time"

	"github.com/focusquest/focusquest/internal/model"
	"github.com/focusquest/focusquest/internal/repository"
)

type fakeUserRepo struct {
	users map[string]*model.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) ByID(id string) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func newTestAuthService() *AuthService {
	return NewAuthService(newFakeUserRepo(), "test-secret", time.Hour, false)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()

	user, err := svc.Register("alice@example.com", "Alice", "correct horse battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("registered user has empty id")
	}
	if user.PasswordHash == "correct horse battery" {
		t.Error("password stored in plain text")
	}

	got, err := svc.Login("alice@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Login returned user %q, want %q", got.ID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register("alice@example.com", "Alice", "correct horse battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = svc.Register("alice@example.com", "Other Alice", "another password!")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register duplicate err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register("alice@example.com", "Alice", "correct horse battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = svc.Login("alice@example.com", "wrong password!")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login("nobody@example.com", "correct horse battery")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestAuthService()

	user := &model.User{ID: "user-1", Email: "alice@example.com"}
	token, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := svc.VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims["user_id"] != "user-1" {
		t.Errorf("user_id claim = %v, want user-1", claims["user_id"])
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService()
	other := NewAuthService(newFakeUserRepo(), "other-secret", time.Hour, false)

	token, err := svc.GenerateJWT(&model.User{ID: "user-1", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	_, err = other.VerifyJWT(token)
	if err == nil {
		t.Error("VerifyJWT accepted token signed with a different secret")
	}
}
