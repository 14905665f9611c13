package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tvmauto/partsbot/internal/domain/parts"
)

// ListParts searches the catalog; an empty keyword returns everything.
func (c *Client) ListParts(ctx context.Context, token, keyword string) ([]parts.Part, error) {
	q := url.Values{}
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	var out []parts.Part
	if err := c.do(ctx, http.MethodGet, "/parts", q, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePart(ctx context.Context, token string, d parts.Draft) (*parts.Part, error) {
	var p parts.Part
	if err := c.do(ctx, http.MethodPost, "/parts", nil, token, d, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePart(ctx context.Context, token, id string, d parts.Draft) (*parts.Part, error) {
	var p parts.Part
	if err := c.do(ctx, http.MethodPut, "/parts/"+id, nil, token, d, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeletePart(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/parts/"+id, nil, token, nil, nil)
}
