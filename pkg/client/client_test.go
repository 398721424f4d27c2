package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(token string) func() string {
	return func() string { return token }
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]dto.TransactionResponse{})
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok-123"))
	_, err := c.ListTransactions(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoAuthHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken(""))
	require.NoError(t, c.Health(context.Background()))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Invalid or expired token"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	cleared := false
	c := New(server.URL, staticToken("stale"))
	c.OnUnauthorized = func() { cleared = true }

	_, err := c.ListTransactions(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, cleared, "OnUnauthorized hook should run before the error is returned")
}

func TestErrorBodySurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	err := c.DeleteTransaction(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not found")
}

func TestEmptyErrorBodyFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	_, err := c.Rates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestListTransactions_QueryForwarded(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]dto.TransactionResponse{
			{ID: "t1", Type: domain.Expense, Amount: 500, Category: domain.CategoryGroceries, Date: "2024-01-01"},
		})
	}))
	defer server.Close()

	q := url.Values{}
	q.Set("category", "groceries")
	q.Set("sort", "amount_desc")

	c := New(server.URL, staticToken("tok"))
	txns, err := c.ListTransactions(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "t1", txns[0].ID)
	assert.Equal(t, "groceries", gotQuery.Get("category"))
	assert.Equal(t, "amount_desc", gotQuery.Get("sort"))
}

func TestCreateTransaction(t *testing.T) {
	amount := int64(1250)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req dto.CreateTransactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Amount)
		assert.Equal(t, amount, *req.Amount)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.TransactionResponse{
			ID: "t-new", Type: req.Type, Amount: *req.Amount, Category: req.Category, Date: req.Date,
		})
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	created, err := c.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Type: domain.Expense, Amount: &amount, Category: domain.CategoryGroceries, Date: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "t-new", created.ID)
	assert.Equal(t, amount, created.Amount)
}

func TestUpdateTransaction_PathEscaped(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(dto.TransactionResponse{ID: "a/b"})
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	_, err := c.UpdateTransaction(context.Background(), "a/b", dto.UpdateTransactionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/api/transactions/a%2Fb", gotPath)
}

func TestHealth_NotOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken(""))
	assert.Error(t, c.Health(context.Background()))
}

func TestRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rates", r.URL.Path)
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"USD":"1","EUR":"0.92"}}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	rates, err := c.Rates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", rates.Base)
	assert.True(t, rates.Rates["EUR"].Equal(decimal.RequireFromString("0.92")))
}
