package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/recipe-service/config"
	"foodgram/recipe-service/internal/dto"
	"foodgram/recipe-service/internal/testutils"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"plain", "chef_anna", nil},
		{"digits", "user42", nil},
		{"reserved me", "me", ErrReservedUsername},
		{"reserved me uppercase", "Me", ErrReservedUsername},
		{"hyphen", "chef-anna", ErrInvalidUsername},
		{"space", "chef anna", ErrInvalidUsername},
		{"cyrillic", "повар", ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUsername(tt.username)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:     "anna@example.com",
		Username:  "chef_anna",
		FirstName: "Anna",
		LastName:  "Smith",
		Password:  "s3cret-pass",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewAuthService(db)
	config.Conf = &config.AppConfig{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: 1}}

	u, err := svc.Register(registerRequest())
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash, "password must be stored hashed")

	token, logged, err := svc.Login(dto.LoginRequest{Email: "anna@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, logged.ID)

	_, _, err = svc.Login(dto.LoginRequest{Email: "anna@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, _, err = svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestRegister_Uniqueness(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "other_name"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrEmailTaken)

	dup = registerRequest()
	dup.Email = "other@example.com"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCheckTaken(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewAuthService(db)

	u, err := svc.Register(registerRequest())
	require.NoError(t, err)

	// classifies the constraint a racing insert would have hit
	assert.ErrorIs(t, svc.checkTaken(u.Email, "fresh_name"), ErrEmailTaken)
	assert.ErrorIs(t, svc.checkTaken("fresh@example.com", u.Username), ErrUsernameTaken)
	assert.NoError(t, svc.checkTaken("fresh@example.com", "fresh_name"))
}

func TestSetPassword(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewAuthService(db)

	u, err := svc.Register(registerRequest())
	require.NoError(t, err)

	err = svc.SetPassword(u.ID, dto.SetPasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "brand-new-pass",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = svc.SetPassword(u.ID, dto.SetPasswordRequest{
		CurrentPassword: "s3cret-pass",
		NewPassword:     "brand-new-pass",
	})
	require.NoError(t, err)

	config.Conf = &config.AppConfig{JWT: config.JWTConfig{Secret: "test-secret"}}
	_, _, err = svc.Login(dto.LoginRequest{Email: "anna@example.com", Password: "brand-new-pass"})
	assert.NoError(t, err)
}
