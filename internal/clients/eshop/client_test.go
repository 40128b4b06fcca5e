package eshop

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tienda/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":"p1","name":"Teclado","brand":"Ducky","price":49990}]`))
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL, time.Second).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Teclado", products[0].Name)
}

func TestMutationsCarryBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"p1","name":"Teclado"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.CreateProduct(context.Background(), "tok-abc", models.ProductInput{Name: "Teclado"})
	require.NoError(t, err)

	err = client.DeleteProduct(context.Background(), "tok-abc", "p1")
	require.NoError(t, err)
}

func TestNon2xxBecomesAPIErrorWithRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("The user not found"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Login(context.Background(), "a@b.com", "x")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "The user not found", err.Error())
}

func TestLoginReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/login", r.URL.Path)
		w.Write([]byte(`{"user":"a@b.com","token":"tok-123"}`))
	}))
	defer srv.Close()

	token, err := NewClient(srv.URL, time.Second).Login(context.Background(), "a@b.com", "x")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestListProductsByCategoryQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cat-1", r.URL.Query().Get("categories"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).ListProductsByCategory(context.Background(), "cat-1")
	require.NoError(t, err)
}
