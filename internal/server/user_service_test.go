package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/meeting-mbti/internal/db"
	"github.com/jonathan/meeting-mbti/internal/types"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	store := openTestStore(t)
	t.Cleanup(func() { _ = store.Close() })
	return NewUserService(store, testPasswordConfig())
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:           uuid.New(),
			Name:         "Kim Minjun",
			Email:        "minjun@example.com",
			PasswordHash: "hashed-password",
			PasswordSet:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		typesUser := convertDBUserToTypesUser(dbUser)
		require.NotNil(t, typesUser)
		assert.Equal(t, dbUser.ID, typesUser.ID)
		assert.Equal(t, dbUser.Name, typesUser.Name)
		assert.Equal(t, dbUser.Email, typesUser.Email)
		assert.Equal(t, dbUser.PasswordSet, typesUser.PasswordSet)
		assert.Equal(t, dbUser.CreatedAt, typesUser.CreatedAt)
	})

	t.Run("nil user", func(t *testing.T) {
		assert.Nil(t, convertDBUserToTypesUser(nil))
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	user, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Lee Seoyeon", Email: "Seoyeon@Example.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "seoyeon@example.com", user.Email)
	assert.True(t, user.PasswordSet)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Other", Email: "seoyeon@example.com", Password: testPassword})
		var dup *ErrEmailAlreadyExists
		assert.ErrorAs(t, err, &dup)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Short", Email: "short@example.com", Password: "abc"})
		var verr *ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	registered, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Park Jiho", Email: "jiho@example.com", Password: testPassword})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &types.LoginRequest{Email: "JIHO@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	var creds *ErrInvalidCredentials
	_, err = svc.Login(ctx, &types.LoginRequest{Email: "jiho@example.com", Password: "wrong-password"})
	assert.ErrorAs(t, err, &creds)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: testPassword})
	assert.ErrorAs(t, err, &creds)
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	_, err := svc.GetUser(ctx, uuid.New())
	var nf *ErrUserNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestUserService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	user, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Choi Yuna", Email: "yuna@example.com", Password: testPassword})
	require.NoError(t, err)

	var mismatch *ErrPasswordMismatch
	err = svc.UpdatePassword(ctx, user.ID, "not-the-password", "another-password")
	assert.ErrorAs(t, err, &mismatch)

	var verr *ErrValidation
	err = svc.UpdatePassword(ctx, user.ID, testPassword, "short")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "new_password", verr.Field)

	require.NoError(t, svc.UpdatePassword(ctx, user.ID, testPassword, "another-password"))

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "yuna@example.com", Password: testPassword})
	assert.Error(t, err)
	_, err = svc.Login(ctx, &types.LoginRequest{Email: "yuna@example.com", Password: "another-password"})
	assert.NoError(t, err)

	var nf *ErrUserNotFound
	assert.ErrorAs(t, svc.UpdatePassword(ctx, uuid.New(), testPassword, "another-password"), &nf)
}
