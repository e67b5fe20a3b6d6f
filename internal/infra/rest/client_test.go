package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/apierror"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second

	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestClient_ErrorKindMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   apierror.Kind
		msg    string
	}{
		{name: "unauthorized", status: 401, body: `{"message":"Token has expired"}`, kind: apierror.KindUnauthorized, msg: "Token has expired"},
		{name: "validation", status: 400, body: `{"message":"Quantity must be positive"}`, kind: apierror.KindValidation, msg: "Quantity must be positive"},
		{name: "not found", status: 404, body: `{"error":"Product not found"}`, kind: apierror.KindNotFound, msg: "Product not found"},
		{name: "server", status: 500, body: `{"message":"Internal server error"}`, kind: apierror.KindServer, msg: "Internal server error"},
		{name: "unreadable body falls back to status text", status: 404, body: `<html>`, kind: apierror.KindNotFound, msg: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			err := client.get(context.Background(), "/products/", nil, nil)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apierror.KindOf(err))
			assert.Equal(t, tt.msg, apierror.MessageOf(err))
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://127.0.0.1:1" // nothing listens here
	cfg.API.Timeout = time.Second

	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	err = client.get(context.Background(), "/products/", nil, nil)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNetwork, apierror.KindOf(err))
}

func TestClient_CSRFDoubleSubmit(t *testing.T) {
	var sawHeader string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/users/login":
			http.SetCookie(w, &http.Cookie{Name: "csrf_access_token", Value: "tok-123", Path: "/"})
			_, _ = w.Write([]byte(`{"user":{"id":1},"message":"ok"}`))
		case r.Method == http.MethodPost:
			sawHeader = r.Header.Get("X-CSRF-TOKEN")
			_, _ = w.Write([]byte(`{}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))

	require.NoError(t, client.post(context.Background(), "/users/login", map[string]string{"email": "a@b.c"}, nil))
	require.NoError(t, client.post(context.Background(), "/cart/", map[string]int{"product_id": 1}, nil))

	assert.Equal(t, "tok-123", sawHeader)
}

func TestClient_GetOmitsCSRFHeader(t *testing.T) {
	var sawHeader bool
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/login" {
			http.SetCookie(w, &http.Cookie{Name: "csrf_access_token", Value: "tok", Path: "/"})
		}
		if r.Method == http.MethodGet && r.Header.Get("X-CSRF-TOKEN") != "" {
			sawHeader = true
		}
		_, _ = w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.post(context.Background(), "/users/login", nil, nil))
	require.NoError(t, client.get(context.Background(), "/cart/", nil, nil))

	assert.False(t, sawHeader)
}

func TestClient_ClearCookiesDropsSession(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrf_access_token", Value: "tok", Path: "/"})
		_, _ = w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.post(context.Background(), "/users/login", nil, nil))
	require.NotNil(t, client.Cookie("csrf_access_token"))

	client.ClearCookies()
	assert.Nil(t, client.Cookie("csrf_access_token"))
}

func TestProductRepository_ListDecodesEnvelope(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "12", r.URL.Query().Get("per_page"))
		assert.Equal(t, "serum", r.URL.Query().Get("search"))
		assert.Equal(t, "3,5", r.URL.Query().Get("category_ids"))

		_, _ = w.Write([]byte(`{
			"products": [{"id": 1, "name": "Vitamin C Serum", "display_price": 19.9}],
			"count": 25,
			"total_pages": 3,
			"page": 2
		}`))
	}))
	repo := NewProductRepository(client)

	page, err := repo.List(context.Background(), repository.ProductFilters{
		Search:      "serum",
		CategoryIDs: []int{3, 5},
	}, repository.ListOptions{Page: 2, PerPage: 12})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Vitamin C Serum", page.Items[0].Name)
	assert.Equal(t, 19.9, page.Items[0].DisplayPrice)
	assert.Equal(t, 25, page.Count)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)
}

func TestCartRepository_MutationReturnsWholeCart(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/cart/", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 7,
			"subtotal": 39.8,
			"items": [{"id": 1, "product_id": 2, "quantity": 2, "subtotal": 39.8, "in_stock": true}]
		}`))
	}))
	repo := NewCartRepository(client)

	cart, err := repo.AddItem(context.Background(), repository.CartItemInput{ProductID: 2, Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 7, cart.ID)
	assert.Equal(t, 39.8, cart.Subtotal)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].InStock)
}

func TestPaymentRepository_CreateRequestDecodesActions(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/create-payment-request", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"payment": {"id": 3, "status": "pending", "amount": 1120.0},
			"actions": {"desktop_web_checkout_url": "https://pay.example/x"},
			"xendit_status": "PENDING",
			"message": "Payment request created"
		}`))
	}))
	repo := NewPaymentRepository(client)

	request, err := repo.CreateRequest(context.Background(), repository.PaymentRequestInput{
		Amount:        1120.0,
		Currency:      "PHP",
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, request.Payment.ID)
	assert.Equal(t, "PENDING", request.XenditStatus)
	assert.Equal(t, "https://pay.example/x", request.Actions["desktop_web_checkout_url"])
}
