package services

import (
	"testing"

	"qna-board/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users)

	resp, err := svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	// Password is stored as a bcrypt digest, never plaintext
	stored, err := users.GetByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterDuplicate(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users)

	_, err := svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.IsType(t, models.ErrorConflict{}, err)

	_, err = svc.Register(models.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestRegisterExplicitRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users)

	resp, err := svc.Register(models.RegisterRequest{
		Username: "root",
		Email:    "root@example.com",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users)

	_, err := svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}
