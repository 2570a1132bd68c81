package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDataSource_FetchPage(t *testing.T) {
	t.Run("decodes a feed page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/gallery", r.URL.Path)
			assert.Equal(t, "16", r.URL.Query().Get("offset"))
			assert.Equal(t, "8", r.URL.Query().Get("limit"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"items": [
					{"id": "b2f6f7cb-3b3f-4a7e-9a34-9a0f1c4fd001", "person_name": "Rex", "generated_image": "data:image/png;base64,AAAA"}
				],
				"pagination": {"page": 3, "limit": 8, "total": 20, "totalPages": 3, "hasNextPage": true, "hasPrevPage": true}
			}`))
		}))
		defer server.Close()

		src := NewHTTPDataSource(nil, server.URL)

		page, err := src.FetchPage(context.Background(), 16, 8)
		require.NoError(t, err)

		require.Len(t, page.Items, 1)
		require.NotNil(t, page.Items[0].PersonName)
		assert.Equal(t, "Rex", *page.Items[0].PersonName)
		assert.True(t, page.Pagination.HasNextPage)
		assert.Equal(t, 20, page.Pagination.Total)
	})

	t.Run("surfaces the API error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "Failed to get items"}`))
		}))
		defer server.Close()

		src := NewHTTPDataSource(nil, server.URL)

		_, err := src.FetchPage(context.Background(), 0, 8)
		assert.ErrorContains(t, err, "Failed to get items")
	})

	t.Run("non-json failure reports the status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		src := NewHTTPDataSource(nil, server.URL)

		_, err := src.FetchPage(context.Background(), 0, 8)
		assert.ErrorContains(t, err, "502")
	})

	t.Run("connection failure", func(t *testing.T) {
		src := NewHTTPDataSource(nil, "http://127.0.0.1:0")

		_, err := src.FetchPage(context.Background(), 0, 8)
		assert.Error(t, err)
	})
}
