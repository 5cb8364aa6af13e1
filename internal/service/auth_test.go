package service

import (
	"context"
	"testing"
	"time"

	"github.com/selectshop/selectshop-go/internal/crypto"
	"github.com/selectshop/selectshop-go/internal/model"
)

const testAdminToken = "admin-signup-token"

func newTestAuthService(users *fakeUserStore) *AuthService {
	return NewAuthService(users, "test-secret", time.Hour, testAdminToken)
}

func TestSignup_EmptyUsername(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "",
		Password: "password123",
	})

	if err != ErrUsernameRequired {
		t.Errorf("expected ErrUsernameRequired, got %v", err)
	}
}

func TestSignup_EmptyPassword(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "alice",
		Password: "",
	})

	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestSignup_InvalidUsername(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	for _, username := range []string{"ab", "UPPERCASE", "toolongusername", "has space"} {
		_, err := svc.Signup(context.Background(), model.SignupRequest{
			Username: username,
			Password: "password123",
		})
		if err != ErrUsernameInvalid {
			t.Errorf("username %q: expected ErrUsernameInvalid, got %v", username, err)
		}
	}
}

func TestSignup_ShortPassword(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "alice",
		Password: "short",
	})

	if err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestSignup_DefaultsToUserRole(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	resp, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "alice",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if resp.Role != model.RoleUser {
		t.Errorf("expected role %q, got %q", model.RoleUser, resp.Role)
	}
}

func TestSignup_AdminRequiresToken(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), model.SignupRequest{
		Username:   "admin1",
		Password:   "password123",
		Admin:      true,
		AdminToken: "wrong-token",
	})
	if err != ErrBadAdminToken {
		t.Errorf("expected ErrBadAdminToken, got %v", err)
	}

	resp, err := svc.Signup(context.Background(), model.SignupRequest{
		Username:   "admin1",
		Password:   "password123",
		Admin:      true,
		AdminToken: testAdminToken,
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if resp.Role != model.RoleAdmin {
		t.Errorf("expected role %q, got %q", model.RoleAdmin, resp.Role)
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	req := model.SignupRequest{Username: "alice", Password: "password123"}
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	_, err := svc.Signup(context.Background(), req)
	if err != ErrUsernameTaken {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)

	if _, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "alice",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	token, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("token subject = %q, want %q", claims.Subject, "alice")
	}
	if claims.Role != model.RoleUser {
		t.Errorf("token role = %q, want %q", claims.Role, model.RoleUser)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	if _, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "alice",
		Password: "password123",
	}); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "ghost",
		Password: "password123",
	})
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
