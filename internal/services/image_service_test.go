package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"modacart/internal/catalog"
	"modacart/internal/repos"
	"modacart/internal/services"
)

func TestImageService_CachesAfterFirstFetch(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	cache, err := repos.NewDiskImageCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := services.NewImageService(catalog.NewClient(srv.URL, time.Second), cache)

	b, err := svc.Image(context.Background(), "products/p-1/main.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "jpeg-bytes" {
		t.Fatalf("bad bytes: %q", b)
	}
	if hits.Load() != 1 {
		t.Fatalf("want 1 fetch, got %d", hits.Load())
	}

	// the write-back is fire-and-forget; wait for it to land
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, ok := cache.Load("products/p-1/main.jpg"); ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("cache write never landed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, err := svc.Image(context.Background(), "products/p-1/main.jpg"); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 1 {
		t.Fatalf("cache hit should not refetch, got %d fetches", hits.Load())
	}
}

func TestImageService_MissNeverBlocksOnCacheWrite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png"))
	}))
	defer srv.Close()

	// a traversal-looking name makes the cache write fail; the bytes must
	// still come back
	cache, err := repos.NewDiskImageCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := services.NewImageService(catalog.NewClient(srv.URL, time.Second), cache)

	b, err := svc.Image(context.Background(), "a/../b.png")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "png" {
		t.Fatalf("bad bytes: %q", b)
	}
}
