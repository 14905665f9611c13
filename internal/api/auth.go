package api

import (
	"context"
	"net/http"
)

// AuthUser is what the auth endpoints return: the profile plus a fresh
// bearer token. The token is opaque to this client.
type AuthUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ProfileUpdate carries the editable profile fields; empty strings mean
// "keep the current value" and are omitted from the payload.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthUser, error) {
	in := map[string]string{"email": email, "password": password}
	var u AuthUser
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthUser, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	var u AuthUser
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, "", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, upd ProfileUpdate) (*AuthUser, error) {
	var u AuthUser
	if err := c.do(ctx, http.MethodPut, "/auth/profile", nil, token, upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
