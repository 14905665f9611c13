package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tvmauto/partsbot/internal/api"
)

// Store owns the login lifecycle: auth calls go to the parts API, the
// resulting session is persisted through Repo, logout is local-only.
type Store struct {
	client *api.Client
	repo   Repo
	log    *slog.Logger
}

func NewStore(client *api.Client, repo Repo, log *slog.Logger) *Store {
	return &Store{client: client, repo: repo, log: log}
}

// Get returns the chat's session or nil when the chat is signed out.
func (s *Store) Get(ctx context.Context, chatID int64) (*Session, error) {
	return s.repo.Get(ctx, chatID)
}

func (s *Store) Login(ctx context.Context, chatID int64, email, password string) (*Session, error) {
	u, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, authErr(err)
	}
	return s.save(ctx, chatID, u)
}

func (s *Store) Register(ctx context.Context, chatID int64, name, email, password string) (*Session, error) {
	u, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return nil, authErr(err)
	}
	return s.save(ctx, chatID, u)
}

// UpdateProfile pushes the partial update and replaces the stored session
// with the refreshed profile and token. On failure the old session stands.
func (s *Store) UpdateProfile(ctx context.Context, chatID int64, upd api.ProfileUpdate) (*Session, error) {
	cur, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, &AuthError{Message: "not signed in"}
	}
	u, err := s.client.UpdateProfile(ctx, cur.Token, upd)
	if err != nil {
		return nil, authErr(err)
	}
	return s.save(ctx, chatID, u)
}

// Logout clears the persisted session. It never talks to the API and
// always succeeds even if the row was already gone.
func (s *Store) Logout(ctx context.Context, chatID int64) {
	if err := s.repo.Clear(ctx, chatID); err != nil {
		s.log.Error("session clear failed", "chat_id", chatID, "err", err)
	}
}

func (s *Store) save(ctx context.Context, chatID int64, u *api.AuthUser) (*Session, error) {
	sess := Session{UserID: u.ID, Name: u.Name, Email: u.Email, Token: u.Token}
	if err := s.repo.Set(ctx, chatID, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func authErr(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &AuthError{Message: apiErr.Message}
	}
	return &AuthError{Message: err.Error()}
}
