package user_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/user"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(u *user.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*user.User, error) {
	for _, u := range r.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*user.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) Save(u *user.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "a-long-and-sufficiently-random-test-secret")
	auth.Init()
	os.Exit(m.Run())
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(newFakeUserRepo(), nil)

	dto := user.RegisterDTO{
		Name:           "Asha Verma",
		Email:          "asha@example.com",
		Password:       "correct-horse",
		ExamPreference: "ssc-cgl",
	}

	result, err := svc.Register(ctx, dto)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if result.Token == "" {
		t.Error("Register should issue a session token")
	}
	if result.User.PasswordHash == dto.Password {
		t.Error("password must not be stored in plain text")
	}

	claims, err := auth.ValidateJWT(result.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != result.User.ID.String() {
		t.Errorf("token user id = %s, want %s", claims.UserID, result.User.ID)
	}

	t.Run("LoginWithCorrectPassword", func(t *testing.T) {
		got, err := svc.Login(ctx, user.LoginDTO{Email: dto.Email, Password: dto.Password})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if got.User.ID != result.User.ID {
			t.Errorf("Login returned a different user")
		}
	})

	t.Run("LoginWithWrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginDTO{Email: dto.Email, Password: "wrong"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("want ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("LoginWithUnknownEmail", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginDTO{Email: "nobody@example.com", Password: "whatever"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("want ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Register(ctx, dto)
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("want ErrEmailTaken, got %v", err)
		}
	})
}

func TestGoogleLoginNotConfigured(t *testing.T) {
	svc := user.NewService(newFakeUserRepo(), nil)

	_, err := svc.GoogleLogin(context.Background(), "auth-code")
	if !errors.Is(err, user.ErrGoogleNotConfigured) {
		t.Errorf("want ErrGoogleNotConfigured, got %v", err)
	}
}
