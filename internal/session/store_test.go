package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvmauto/partsbot/internal/api"
)

// memRepo is the in-memory stand-in for the Postgres-backed repo.
type memRepo struct {
	data map[int64]Session
}

func newMemRepo() *memRepo { return &memRepo{data: make(map[int64]Session)} }

func (m *memRepo) Get(_ context.Context, chatID int64) (*Session, error) {
	s, ok := m.data[chatID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memRepo) Set(_ context.Context, chatID int64, s Session) error {
	m.data[chatID] = s
	return nil
}

func (m *memRepo) Clear(_ context.Context, chatID int64) error {
	delete(m.data, chatID)
	return nil
}

func testStore(t *testing.T, handler http.HandlerFunc) (*Store, *memRepo) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	repo := newMemRepo()
	client := api.New(srv.URL, 5*time.Second, slog.New(slog.DiscardHandler))
	return NewStore(client, repo, slog.New(slog.DiscardHandler)), repo
}

func TestLoginPersistsSession(t *testing.T) {
	store, repo := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"_id": "u1", "name": "Asha", "email": "a@b.c", "token": "tok123",
		})
	})

	sess, err := store.Login(context.Background(), 42, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok123", sess.Token)

	saved, err := store.Get(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Asha", saved.Name)
	assert.Len(t, repo.data, 1)
}

func TestLoginFailureIsAuthErrorAndLeavesNothing(t *testing.T) {
	store, repo := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	})

	_, err := store.Login(context.Background(), 42, "a@b.c", "bad")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid email or password", authErr.Message)
	assert.Empty(t, repo.data)
}

func TestUpdateProfileFailureKeepsOldSession(t *testing.T) {
	store, repo := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Email already in use"})
	})
	repo.data[42] = Session{UserID: "u1", Name: "Asha", Email: "a@b.c", Token: "tok123"}

	_, err := store.UpdateProfile(context.Background(), 42, api.ProfileUpdate{Email: "new@b.c"})
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)

	saved, _ := store.Get(context.Background(), 42)
	require.NotNil(t, saved)
	assert.Equal(t, "a@b.c", saved.Email, "failed update must not touch the stored session")
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	store, _ := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call expected without a session")
	})

	_, err := store.UpdateProfile(context.Background(), 42, api.ProfileUpdate{Name: "X"})
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestLogoutIsLocalAndAlwaysSucceeds(t *testing.T) {
	store, repo := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("logout must not call the API")
	})
	repo.data[42] = Session{Token: "tok123"}

	store.Logout(context.Background(), 42)
	assert.Empty(t, repo.data)

	// a second logout on an already-clean chat is fine too
	store.Logout(context.Background(), 42)
}
