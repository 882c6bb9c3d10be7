package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/store"
	"github.com/MKhiriev/shareit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_Success(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())
	ctx := context.Background()

	in := models.User{Name: "Alice", Email: "alice@example.com"}
	m.users.EXPECT().EmailTaken(ctx, in.Email, int64(0)).Return(false, nil)
	m.users.EXPECT().CreateUser(ctx, in).Return(models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

	got, err := svc.CreateUser(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())
	ctx := context.Background()

	in := models.User{Name: "Bob", Email: "taken@example.com"}
	m.users.EXPECT().EmailTaken(ctx, in.Email, int64(0)).Return(true, nil)

	_, err := svc.CreateUser(ctx, in)

	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrEmailAlreadyExists))
}

func TestUserService_CreateUser_BlankName(t *testing.T) {
	storages, _ := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())

	_, err := svc.CreateUser(context.Background(), models.User{Name: "  ", Email: "a@b.c"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_CreateUser_StoreError(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())
	ctx := context.Background()

	in := models.User{Name: "Carol", Email: "carol@example.com"}
	dbErr := errors.New("connection reset")
	m.users.EXPECT().EmailTaken(ctx, in.Email, int64(0)).Return(false, nil)
	m.users.EXPECT().CreateUser(ctx, in).Return(models.User{}, dbErr)

	_, err := svc.CreateUser(ctx, in)

	assert.ErrorIs(t, err, dbErr)
}

// ── UpdateUser ───────────────────────────────────────────────────────────────

func TestUserService_UpdateUser_PartialName(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())
	ctx := context.Background()

	existing := models.User{ID: 3, Name: "Old", Email: "same@example.com"}
	m.users.EXPECT().GetUser(ctx, int64(3)).Return(existing, nil)
	m.users.EXPECT().UpdateUser(ctx, models.User{ID: 3, Name: "New", Email: "same@example.com"}).
		Return(models.User{ID: 3, Name: "New", Email: "same@example.com"}, nil)

	got, err := svc.UpdateUser(ctx, 3, models.UpdateUserRequest{Name: ptr("New")})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "same@example.com", got.Email)
}

func TestUserService_UpdateUser_SameEmailSkipsUniquenessCheck(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())
	ctx := context.Background()

	existing := models.User{ID: 3, Name: "N", Email: "me@example.com"}
	m.users.EXPECT().GetUser(ctx, int64(3)).Return(existing, nil)
	m.users.EXPECT().UpdateUser(ctx, existing).Return(existing, nil)

	_, err := svc.UpdateUser(ctx, 3, models.UpdateUserRequest{Email: ptr("me@example.com")})

	require.NoError(t, err)
}

func TestUserService_UpdateUser_EmailTakenByOther(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(3)).Return(models.User{ID: 3, Name: "N", Email: "me@example.com"}, nil)
	m.users.EXPECT().EmailTaken(ctx, "other@example.com", int64(3)).Return(true, nil)

	_, err := svc.UpdateUser(ctx, 3, models.UpdateUserRequest{Email: ptr("other@example.com")})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(99)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(ctx, 99, models.UpdateUserRequest{Name: ptr("x")})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ── Get / List / Delete ──────────────────────────────────────────────────────

func TestUserService_PassThrough(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewUserService(storages, logger.Nop())
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.users.EXPECT().ListUsers(ctx).Return([]models.User{{ID: 1}, {ID: 2}}, nil)
	m.users.EXPECT().DeleteUser(ctx, int64(2)).Return(nil)

	u, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.DeleteUser(ctx, 2))
}
