package store

import (
	"testing"
	"time"

	"jewelmart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	u, err := s.CreateUser(&models.User{
		Name:     "Asha",
		Email:    email,
		Phone:    "+919876543210",
		Password: "opensesame",
	})
	require.NoError(t, err)
	return u
}

func TestCreateUserHashesPassword(t *testing.T) {
	s := newTestStore(t)

	u := seedUser(t, s, "asha@example.com")
	assert.NotEqual(t, "opensesame", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("opensesame")))

	cost, err := bcrypt.Cost([]byte(u.Password))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "asha@example.com")
	_, err := s.CreateUser(&models.User{Email: "asha@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGetUserByEmailAndPhone(t *testing.T) {
	s := newTestStore(t)

	u := seedUser(t, s, "asha@example.com")

	byEmail, err := s.GetUserByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byPhone, err := s.GetUserByPhone("+919876543210")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byPhone.ID)

	_, err = s.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthenticateUser(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "asha@example.com")

	u, err := s.AuthenticateUser("asha@example.com", "opensesame")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "asha@example.com", u.Email)

	// Unknown user and wrong password are indistinguishable: both yield
	// (nil, nil), never an error.
	u, err = s.AuthenticateUser("nouser@x.com", "anything")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = s.AuthenticateUser("asha@example.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestOtpLifecycle(t *testing.T) {
	s := newTestStore(t)

	u := seedUser(t, s, "asha@example.com")
	expiry := time.Now().Add(10 * time.Minute)

	require.NoError(t, s.UpdateUserOtp(u.ID, "482913", expiry))

	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "482913", got.OtpCode)
	require.NotNil(t, got.OtpExpiry)
	assert.False(t, got.OtpVerified)

	require.NoError(t, s.UpdateUserOtpVerified(u.ID, true))
	got, err = s.GetUser(u.ID)
	require.NoError(t, err)
	assert.True(t, got.OtpVerified)

	require.NoError(t, s.ClearUserOtp(u.ID))
	got, err = s.GetUser(u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.OtpCode)
	assert.Nil(t, got.OtpExpiry)
	assert.False(t, got.OtpVerified)
}

func TestOtpUpdatesMissingUser(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.UpdateUserOtp("no-such-id", "000000", time.Now()), ErrNotFound)
	assert.ErrorIs(t, s.UpdateUserOtpVerified("no-such-id", true), ErrNotFound)
	assert.ErrorIs(t, s.UpdateUserPassword("no-such-id", "newpass"), ErrNotFound)
	assert.ErrorIs(t, s.ClearUserOtp("no-such-id"), ErrNotFound)
}

func TestUpdateUserPassword(t *testing.T) {
	s := newTestStore(t)

	u := seedUser(t, s, "asha@example.com")
	require.NoError(t, s.UpdateUserPassword(u.ID, "newsecret"))

	got, err := s.AuthenticateUser("asha@example.com", "newsecret")
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = s.AuthenticateUser("asha@example.com", "opensesame")
	require.NoError(t, err)
	assert.Nil(t, got)
}
