package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sweetshop/sweetshop-api/internal/auth"
	"github.com/sweetshop/sweetshop-api/internal/model"
	"github.com/sweetshop/sweetshop-api/internal/repository"
	"github.com/sweetshop/sweetshop-api/internal/testutil"
)

func newTestAuthService(t *testing.T, name string) *AuthService {
	d := testutil.OpenInMemoryDB(t, name)
	return NewAuthService(
		repository.NewUserRepository(d),
		auth.NewTokenService("test-secret", time.Hour),
	)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestAuthService(t, "authsvc-validation")
	ctx := context.Background()

	cases := []struct {
		name string
		req  model.RegisterRequest
		want error
	}{
		{"empty username", model.RegisterRequest{Email: "a@b.com", Password: "pw"}, ErrUsernameRequired},
		{"empty email", model.RegisterRequest{Username: "a", Password: "pw"}, ErrEmailRequired},
		{"malformed email", model.RegisterRequest{Username: "a", Email: "not-an-email", Password: "pw"}, ErrInvalidEmail},
		{"empty password", model.RegisterRequest{Username: "a", Email: "a@b.com"}, ErrPasswordRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tc.req); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRegister_Success(t *testing.T) {
	svc := newTestAuthService(t, "authsvc-register")
	ctx := context.Background()

	resp, err := svc.Register(ctx, model.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "testpass123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.ID == 0 {
		t.Error("expected non-zero user id")
	}
	if resp.Email != "test@example.com" {
		t.Errorf("expected email echoed back, got %q", resp.Email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t, "authsvc-dup")
	ctx := context.Background()

	req := model.RegisterRequest{Username: "u", Email: "dup@example.com", Password: "pw123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("attempt %d: expected ErrEmailTaken, got %v", i, err)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "authsvc-login")
	tokens := auth.NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(repository.NewUserRepository(d), tokens)
	ctx := context.Background()

	reg, err := svc.Register(ctx, model.RegisterRequest{
		Username: "loginuser",
		Email:    "login@example.com",
		Password: "loginpass123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.Login(ctx, model.LoginRequest{Email: "login@example.com", Password: "loginpass123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %q", resp.TokenType)
	}

	claims, err := tokens.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.UserID != reg.ID {
		t.Errorf("token user id = %d, want %d", claims.UserID, reg.ID)
	}
}

func TestLogin_UniformFailure(t *testing.T) {
	svc := newTestAuthService(t, "authsvc-uniform")
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RegisterRequest{
		Username: "u", Email: "known@example.com", Password: "right-password",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPw := svc.Login(ctx, model.LoginRequest{Email: "known@example.com", Password: "wrong-password"})
	_, unknown := svc.Login(ctx, model.LoginRequest{Email: "nobody@example.com", Password: "right-password"})

	if !errors.Is(wrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(unknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPw.Error() != unknown.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPw, unknown)
	}
}

func TestLogin_AdminClaim(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "authsvc-adminclaim")
	tokens := auth.NewTokenService("test-secret", time.Hour)
	users := repository.NewUserRepository(d)
	svc := NewAuthService(users, tokens)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RegisterRequest{
		Username: "adminuser", Email: "admin@example.com", Password: "adminpass123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := users.SetAdmin(ctx, "admin@example.com", true); err != nil {
		t.Fatalf("set admin: %v", err)
	}

	resp, err := svc.Login(ctx, model.LoginRequest{Email: "admin@example.com", Password: "adminpass123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := tokens.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !claims.IsAdmin {
		t.Error("expected admin claim on token issued after SetAdmin")
	}
}
