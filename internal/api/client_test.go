package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvmauto/partsbot/internal/domain/parts"
	"github.com/tvmauto/partsbot/internal/domain/sales"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, testLogger())
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "a@b.c", in["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"_id": "u1", "name": "Asha", "email": "a@b.c", "token": "tok123",
		})
	})

	u, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)
	assert.Equal(t, "tok123", u.Token)
}

func TestErrorMessageExtraction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	})

	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestErrorWithoutBodyFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ListSales(context.Background(), "tok")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed", apiErr.Message)
}

func TestListPartsSendsTokenAndKeyword(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		assert.Equal(t, "brake", r.URL.Query().Get("keyword"))
		_ = json.NewEncoder(w).Encode([]parts.Part{{ID: "p1", Name: "Brake Pad", Quantity: 3}})
	})

	got, err := c.ListParts(context.Background(), "tok123", "brake")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Brake Pad", got[0].Name)
}

func TestListPartsOmitsEmptyKeyword(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("keyword"))
		_ = json.NewEncoder(w).Encode([]parts.Part{})
	})

	got, err := c.ListParts(context.Background(), "tok", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateAndDeletePart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/parts":
			var d parts.Draft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&d))
			_ = json.NewEncoder(w).Encode(parts.Part{ID: "p9", Name: d.Name, SKU: d.SKU})
		case r.Method == http.MethodDelete && r.URL.Path == "/parts/p9":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Part not found"})
		}
	})

	p, err := c.CreatePart(context.Background(), "tok", parts.Draft{Name: "Oil Filter", SKU: "OF-1"})
	require.NoError(t, err)
	assert.Equal(t, "p9", p.ID)

	require.NoError(t, c.DeletePart(context.Background(), "tok", "p9"))

	err = c.DeletePart(context.Background(), "tok", "ghost")
	assert.True(t, IsNotFound(err))
}

func TestCreateSale(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sales", r.URL.Path)

		var d sales.Draft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&d))
		require.Len(t, d.Items, 1)
		assert.Equal(t, "p1", d.Items[0].PartID)
		assert.Equal(t, 2, d.Items[0].Quantity)
		assert.Equal(t, "Ravi", d.CustomerName)

		_ = json.NewEncoder(w).Encode(sales.Sale{
			ID: "s1", CustomerName: d.CustomerName,
			Subtotal: 200, GSTRate: 18, GSTAmount: 36, GrandTotal: 236,
			CreatedAt: time.Now(),
		})
	})

	s, err := c.CreateSale(context.Background(), "tok", sales.Draft{
		Items:        []sales.DraftItem{{PartID: "p1", Quantity: 2}},
		CustomerName: "Ravi",
		GSTRate:      18,
	})
	require.NoError(t, err)
	assert.Equal(t, 236.0, s.GrandTotal)
}

func TestNetworkFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second, testLogger())
	_, err := c.ListSales(context.Background(), "tok")
	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}
