package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripsettle/internal/auth"
	"github.com/mmynk/tripsettle/internal/storage/sqlite"
	"github.com/mmynk/tripsettle/pkg/api"
)

type testEnv struct {
	server *httptest.Server
	auth   *api.AuthServiceClient
}

// testClient bundles authenticated clients for one registered user.
type testClient struct {
	userID      string
	auth        *api.AuthServiceClient
	trips       *api.TripServiceClient
	expenses    *api.ExpenseServiceClient
	settlements *api.SettlementServiceClient
}

// bearerToken returns a client interceptor that attaches the session token to
// every call.
func bearerToken(token string) connect.Interceptor {
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	})
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager("test-secret-key-for-tests", time.Hour)

	server := httptest.NewServer(NewHandler(store, authenticator, jwtManager))
	t.Cleanup(server.Close)

	return &testEnv{
		server: server,
		auth:   api.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

// register creates an account and returns clients that call as that user.
func (env *testEnv) register(t *testing.T, email, displayName string) *testClient {
	t.Helper()

	resp, err := env.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       email,
		DisplayName: displayName,
		Password:    "correct-horse",
	}))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Msg.Token)

	opts := connect.WithInterceptors(bearerToken(resp.Msg.Token))
	return &testClient{
		userID:      resp.Msg.User.ID,
		auth:        api.NewAuthServiceClient(http.DefaultClient, env.server.URL, opts),
		trips:       api.NewTripServiceClient(http.DefaultClient, env.server.URL, opts),
		expenses:    api.NewExpenseServiceClient(http.DefaultClient, env.server.URL, opts),
		settlements: api.NewSettlementServiceClient(http.DefaultClient, env.server.URL, opts),
	}
}

// newTrip creates a trip with the given extra member names and returns it.
func (c *testClient) newTrip(t *testing.T, name string, memberNames ...string) *api.Trip {
	t.Helper()

	resp, err := c.trips.CreateTrip(context.Background(), connect.NewRequest(&api.CreateTripRequest{
		Name:        name,
		MemberNames: memberNames,
	}))
	require.NoError(t, err)
	return resp.Msg.Trip
}

// memberID returns the roster entry ID for the given display name.
func memberID(t *testing.T, trip *api.Trip, name string) string {
	t.Helper()
	for _, m := range trip.Members {
		if m.Name == name {
			return m.ID
		}
	}
	t.Fatalf("member %q not on trip roster", name)
	return ""
}
