package api

import (
	"context"
	"net/http"

	"github.com/tvmauto/partsbot/internal/domain/sales"
)

// ListSales returns the full sale history, newest first.
func (c *Client) ListSales(ctx context.Context, token string) ([]sales.Sale, error) {
	var out []sales.Sale
	if err := c.do(ctx, http.MethodGet, "/sales", nil, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSale submits a checkout. Stock deduction happens server-side; on any
// error the caller must keep its cart so the operator can retry.
func (c *Client) CreateSale(ctx context.Context, token string, d sales.Draft) (*sales.Sale, error) {
	var s sales.Sale
	if err := c.do(ctx, http.MethodPost, "/sales", nil, token, d, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
