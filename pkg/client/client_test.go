package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/artfeed/backend/internal/dto"
	"github.com/artfeed/backend/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBackend builds a fake backend whose protected endpoint accepts only
// validToken and whose refresh endpoint hands out freshToken (or 401s when
// refuse is set). Call counters let tests assert on the request pipeline.
type fakeBackend struct {
	server       *httptest.Server
	validToken   atomic.Value
	refuse       atomic.Bool
	refreshCalls atomic.Int64
	userCalls    atomic.Int64
}

func newBackend(t *testing.T, freshToken string) *fakeBackend {
	t.Helper()
	b := &fakeBackend{}
	b.validToken.Store("")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auths/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		b.refreshCalls.Add(1)
		if b.refuse.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		b.validToken.Store(freshToken)
		json.NewEncoder(w).Encode(dto.RefreshResponse{AccessToken: freshToken})
	})
	mux.HandleFunc("GET /users/u1", func(w http.ResponseWriter, r *http.Request) {
		b.userCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+b.validToken.Load().(string) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Token has expired"})
			return
		}
		json.NewEncoder(w).Encode(dto.UserResponse{UserID: "u1", Email: "a@x.com"})
	})

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func TestDo_RefreshAndRetryOn401(t *testing.T) {
	backend := newBackend(t, "fresh-token")

	c, err := client.New(backend.server.URL)
	require.NoError(t, err)
	c.Session().SetAccessToken("stale-token")

	user, err := c.GetUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.EqualValues(t, 1, backend.refreshCalls.Load())
	assert.EqualValues(t, 2, backend.userCalls.Load()) // original + one replay
	assert.Equal(t, "fresh-token", c.Session().AccessToken())
}

func TestDo_ConcurrentRefreshIsCoalesced(t *testing.T) {
	const callers = 8

	// firstHits gates the refresh response until every caller has received
	// its 401, so all refresh attempts are truly simultaneous.
	var firstHits sync.WaitGroup
	firstHits.Add(callers)
	var refreshCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auths/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		firstHits.Wait()
		json.NewEncoder(w).Encode(dto.RefreshResponse{AccessToken: "fresh-token"})
	})
	mux.HandleFunc("GET /users/u1", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			firstHits.Done()
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Token has expired"})
			return
		}
		json.NewEncoder(w).Encode(dto.UserResponse{UserID: "u1"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c, err := client.New(server.URL)
	require.NoError(t, err)
	c.Session().SetAccessToken("stale-token")

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.GetUser(context.Background(), "u1")
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
	}
	// All simultaneous 401s share one refresh call.
	assert.EqualValues(t, 1, refreshCalls.Load())
}

func TestDo_RefreshFailureExpiresSession(t *testing.T) {
	backend := newBackend(t, "fresh-token")
	backend.refuse.Store(true)

	expired := false
	c, err := client.New(backend.server.URL, client.WithSessionExpiredHandler(func() {
		expired = true
	}))
	require.NoError(t, err)
	c.Session().SetAccessToken("stale-token")
	c.Session().SetIdentity("u1", "a@x.com", []string{"technology"})

	user, err := c.GetUser(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrSessionExpired)
	assert.Nil(t, user)
	assert.True(t, expired)
	// The session is fully reset.
	assert.Empty(t, c.Session().AccessToken())
	assert.Empty(t, c.Session().UserID())
	assert.Empty(t, c.Session().Preferences())
	// The failed request is not replayed.
	assert.EqualValues(t, 1, backend.userCalls.Load())
}

// A replay that still 401s surfaces the API error; there is no second
// refresh-and-retry loop.
func TestDo_NoSecondRetry(t *testing.T) {
	var userCalls, refreshCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auths/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		json.NewEncoder(w).Encode(dto.RefreshResponse{AccessToken: "still-not-accepted"})
	})
	mux.HandleFunc("GET /users/u1", func(w http.ResponseWriter, r *http.Request) {
		userCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Invalid token"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c, err := client.New(server.URL)
	require.NoError(t, err)
	c.Session().SetAccessToken("stale-token")

	_, err = c.GetUser(context.Background(), "u1")

	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.EqualValues(t, 2, userCalls.Load())
	assert.EqualValues(t, 1, refreshCalls.Load())
}

func TestDo_UnauthenticatedRequestNeverRefreshes(t *testing.T) {
	var refreshCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auths/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	mux.HandleFunc("POST /auths/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Invalid credentials"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c, err := client.New(server.URL)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "a@x.com", "WrongPw1!")

	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.EqualValues(t, 0, refreshCalls.Load())
}

func TestLogin_StoresSessionState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auths/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "cookie-token", Path: "/auths", HttpOnly: true})
		json.NewEncoder(w).Encode(dto.LoginResponse{
			AccessToken: "access-token",
			User: dto.UserResponse{
				UserID:      "u1",
				Email:       "a@x.com",
				Preferences: []string{"technology"},
			},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c, err := client.New(server.URL)
	require.NoError(t, err)

	resp, err := c.Login(context.Background(), "a@x.com", "Secret1!")

	require.NoError(t, err)
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "access-token", c.Session().AccessToken())
	assert.Equal(t, "u1", c.Session().UserID())
	assert.Equal(t, "a@x.com", c.Session().UserEmail())
	assert.Equal(t, []string{"technology"}, c.Session().Preferences())
}
