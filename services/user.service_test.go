package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"booknest/apperr"
	"booknest/models"
)

func newUserService() (*UserService, *fakeUserStore) {
	users := newFakeUserStore()
	return NewUserService(users, nil, zap.NewNop()), users
}

func registerInput() *models.RegisterUserInput {
	return &models.RegisterUserInput{
		Username: "dave",
		Password: "hunter22",
		Email:    "dave@example.com",
		FullName: "Dave Example",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, store := newUserService()

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "hunter22", user.Password, "password must never be stored plaintext")

	stored, err := store.FindByUsername(context.Background(), "dave")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	dup := registerInput()
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	dup := registerInput()
	dup.Username = "dave2"
	_, err = svc.Register(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &models.LoginUserInput{Username: "dave", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "dave", user.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginUserInput{Username: "dave", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(context.Background(), user.ID))

	// Same answer as a wrong password, no account enumeration.
	_, err = svc.Login(context.Background(), &models.LoginUserInput{Username: "dave", Password: "hunter22"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestUpdateProfileKeepsUsername(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), user.ID, &models.UpdateUserInput{
		Password: "newpass77",
		Email:    "dave.new@example.com",
		FullName: "David Example",
	})
	require.NoError(t, err)
	assert.Equal(t, "dave", updated.Username)
	assert.Equal(t, "dave.new@example.com", updated.Email)

	_, err = svc.Login(context.Background(), &models.LoginUserInput{Username: "dave", Password: "newpass77"})
	assert.NoError(t, err)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, _ := newUserService()

	first, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	second := registerInput()
	second.Username = "erin"
	second.Email = "erin@example.com"
	_, err = svc.Register(context.Background(), second)
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), first.ID, &models.UpdateUserInput{
		Password: "hunter22",
		Email:    "erin@example.com",
		FullName: "Dave Example",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestDeactivateIsSoftDelete(t *testing.T) {
	svc, store := newUserService()

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), user.ID))

	// Row still there, just inactive.
	stored, err := store.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestDeleteIsHardDelete(t *testing.T) {
	svc, store := newUserService()

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), user.ID))

	_, err = store.FindByID(context.Background(), user.ID)
	assert.Error(t, err)
}

func TestExistenceChecks(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	taken, err := svc.UsernameExists(context.Background(), "dave")
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := svc.UsernameExists(context.Background(), "mallory")
	require.NoError(t, err)
	assert.False(t, free)

	taken, err = svc.EmailExists(context.Background(), "dave@example.com")
	require.NoError(t, err)
	assert.True(t, taken)
}
