package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the key-value persistence port for sessions: get, set, clear per
// chat. Tests substitute an in-memory implementation.
type Repo interface {
	Get(ctx context.Context, chatID int64) (*Session, error)
	Set(ctx context.Context, chatID int64, s Session) error
	Clear(ctx context.Context, chatID int64) error
}

type PgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *PgRepo { return &PgRepo{pool: pool} }

func (r *PgRepo) Get(ctx context.Context, chatID int64) (*Session, error) {
	row := r.pool.QueryRow(ctx, `SELECT payload FROM sessions WHERE chat_id = $1`, chatID)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// no row means signed out, not an error
			return nil, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgRepo) Set(ctx context.Context, chatID int64, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO sessions (chat_id, payload, updated_at)
		VALUES ($1,$2,now())
		ON CONFLICT (chat_id) DO UPDATE SET
		  payload=$2, updated_at=now()
	`, chatID, raw)
	return err
}

func (r *PgRepo) Clear(ctx context.Context, chatID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE chat_id = $1`, chatID)
	return err
}
