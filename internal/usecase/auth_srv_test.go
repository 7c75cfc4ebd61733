package usecase

import (
	"context"
	"testing"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeSessionRepo) {
	users := &fakeUserRepo{byID: map[uuid.UUID]*entity.User{}}
	sessions := &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}

	repo := &repository.Repository{
		User:    users,
		Session: sessions,
	}

	config := &utils.Config{}
	config.Session.ExpiryHours = 1

	return NewAuthService(repo, config, zap.NewNop()), users, sessions
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	service, users, sessions := newAuthFixture()

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Token)
	assert.Len(t, users.byID, 1)
	assert.Len(t, sessions.sessions, 1)

	for _, user := range users.byID {
		assert.NotEqual(t, "hunter22", user.PasswordHash)
		assert.True(t, user.IsActive)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, &request.RegisterRequest{
		Username: "alice2", Email: "alice@example.com", Password: "hunter22",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, &request.RegisterRequest{
		Username: "ALICE", Email: "other@example.com", Password: "hunter22",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestLoginWrongPassword(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &request.LoginRequest{
		Username: "alice", Password: "wrong-pass",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUnknownUser(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "nobody", Password: "whatever1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogoutRevokesSession(t *testing.T) {
	service, _, sessions := newAuthFixture()
	ctx := context.Background()

	resp, err := service.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	require.Len(t, sessions.sessions, 1)

	require.NoError(t, service.Logout(ctx, resp.Token))
	assert.Empty(t, sessions.sessions)
}
