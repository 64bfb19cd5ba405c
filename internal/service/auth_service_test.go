package service

import (
	"testing"

	"soletrack/internal/model"
	"soletrack/internal/repository"
	"soletrack/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := openTestDB(t)
	userRepo := repository.NewUserRepo(db)

	user := &model.User{
		Email:    "seller@example.com",
		FullName: "Test Seller",
		IsActive: true,
	}
	require.NoError(t, user.SetPassword("hunter22"))
	require.NoError(t, userRepo.Create(user))

	return NewAuthService(userRepo, jwt.NewManager("test-secret"))
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login("seller@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "seller@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("seller@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login("seller@example.com", "hunter22")
	require.NoError(t, err)

	validated, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", validated.User.Email)
}

func TestValidateTokenRejectsOlderSession(t *testing.T) {
	svc := newAuthService(t)

	first, err := svc.Login("seller@example.com", "hunter22")
	require.NoError(t, err)

	// Second login rotates the token version, invalidating the first token
	_, err = svc.Login("seller@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.ValidateToken(first.Token)
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	svc := newAuthService(t)

	require.NoError(t, svc.ResetPassword("seller@example.com", "hunter22", "newpass99"))

	_, err := svc.Login("seller@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("seller@example.com", "newpass99")
	assert.NoError(t, err)
}

func TestResetPasswordWrongCurrent(t *testing.T) {
	svc := newAuthService(t)

	err := svc.ResetPassword("seller@example.com", "wrong", "newpass99")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
