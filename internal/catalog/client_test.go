package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"modacart/internal/catalog"
)

const catalogDoc = `{
  "audiences": [
    {
      "id": "women", "name": "Women",
      "categories": [
        {
          "id": "dresses", "name": "Dresses",
          "products": [
            {
              "id": "p-1", "name": "Wrap Dress", "brand": "Verano",
              "price": "79.95",
              "images": ["products/p-1/main.jpg"],
              "material": "viscose", "information": "Midi wrap dress",
              "styles": ["casual"],
              "colors": [
                {
                  "id": "c-1", "name": "Navy",
                  "items": [
                    {"id": "sku-1", "size": "S", "inStock": 4},
                    {"id": "sku-2", "size": "M", "inStock": 0}
                  ]
                }
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(catalogDoc))
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, time.Second)
	snap, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, snap.Items())

	stock, ok := snap.StockLevel("sku-1")
	require.True(t, ok)
	require.Equal(t, 4, stock)

	stock, ok = snap.StockLevel("sku-2")
	require.True(t, ok)
	require.Equal(t, 0, stock)

	_, ok = snap.StockLevel("sku-gone")
	require.False(t, ok)

	p, ok := snap.Product("sku-1")
	require.True(t, ok)
	require.Equal(t, "Wrap Dress", p.Name)
	require.True(t, p.Price.Equal(decimal.RequireFromString("79.95")))

	col, ok := snap.Color("sku-2")
	require.True(t, ok)
	require.Equal(t, "Navy", col.Name)
}

func TestClient_Fetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, time.Second)
	_, err := c.Fetch(context.Background())
	var httpErr *catalog.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusInternalServerError, httpErr.Code)
}

func TestClient_Fetch_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"audiences": [`))
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, time.Second)
	_, err := c.Fetch(context.Background())
	require.Error(t, err)
}

func TestClient_Fetch_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogDoc))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := catalog.NewClient(srv.URL, time.Second)
	_, err := c.Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestClient_FetchImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/images/products/p-1/main.jpg" {
			_, _ = w.Write([]byte("jpeg-bytes"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, time.Second)
	b, err := c.FetchImage(context.Background(), "products/p-1/main.jpg")
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg-bytes"), b)

	_, err = c.FetchImage(context.Background(), "products/p-1/missing.jpg")
	var httpErr *catalog.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Code)
}
