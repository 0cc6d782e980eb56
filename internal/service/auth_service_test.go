package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripsettle/pkg/api"
)

func TestRegister(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Password:    "a-long-password",
	}))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Msg.User.ID)
	assert.Equal(t, "alice@example.com", resp.Msg.User.Email)
	assert.Equal(t, "Alice", resp.Msg.User.DisplayName)
	assert.NotZero(t, resp.Msg.User.CreatedAt)
	assert.NotEmpty(t, resp.Msg.Token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := setupTestServer(t)
	env.register(t, "alice@example.com", "Alice")

	_, err := env.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       "alice@example.com",
		DisplayName: "Imposter",
		Password:    "a-long-password",
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))
}

func TestRegister_WeakPassword(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       "bob@example.com",
		DisplayName: "Bob",
		Password:    "short",
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestLogin(t *testing.T) {
	env := setupTestServer(t)
	env.register(t, "alice@example.com", "Alice")

	resp, err := env.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Msg.User.DisplayName)
	assert.NotEmpty(t, resp.Msg.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupTestServer(t)
	env.register(t, "alice@example.com", "Alice")

	_, err := env.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestGetCurrentUser(t *testing.T) {
	env := setupTestServer(t)
	alice := env.register(t, "alice@example.com", "Alice")

	resp, err := alice.auth.GetCurrentUser(context.Background(), connect.NewRequest(&api.GetCurrentUserRequest{}))
	require.NoError(t, err)
	assert.Equal(t, alice.userID, resp.Msg.User.ID)
	assert.Equal(t, "Alice", resp.Msg.User.DisplayName)
}

func TestGetCurrentUser_NoToken(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.auth.GetCurrentUser(context.Background(), connect.NewRequest(&api.GetCurrentUserRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}
