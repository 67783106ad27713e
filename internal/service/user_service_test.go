package service

import (
	"context"
	"testing"

	"traveldesk-backend/internal/middleware"
	"traveldesk-backend/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	user *model.User
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.user == nil || f.user.Username != username {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *f.user
	return &copied, nil
}

func seededOperator(t *testing.T) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &model.User{ID: uuid.New(), Username: "admin", Password: string(hash)}
}

func TestLogin(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{user: seededOperator(t)})

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "password"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Username != "admin" {
		t.Errorf("Username = %q, want admin", resp.Username)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}

	claims, err := middleware.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims["username"] != "admin" {
		t.Errorf(`claims["username"] = %v, want admin`, claims["username"])
	}
	// Session tokens carry no expiry; they live until logout clears them.
	if _, ok := claims["exp"]; ok {
		t.Error("token carries an exp claim")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{user: seededOperator(t)})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "hunter2"},
		{name: "unknown user", username: "root", password: "password"},
		{name: "empty", username: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), LoginRequest{Username: tt.username, Password: tt.password}); err == nil {
				t.Error("Login succeeded with bad credentials")
			}
		})
	}
}

func TestLoginErrorDoesNotLeakWhichFieldFailed(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{user: seededOperator(t)})

	_, errUser := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "password"})
	_, errPass := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "wrong"})
	if errUser == nil || errPass == nil {
		t.Fatal("expected both logins to fail")
	}
	if errUser.Error() != errPass.Error() {
		t.Errorf("distinct errors leak the failing field: %q vs %q", errUser, errPass)
	}
}
