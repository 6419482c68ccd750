package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	CatalogBaseURL string
	CartDB         string
	ImageCacheDir  string
	ProfileKeyHex  string // 32-byte key, hex encoded
	HTTPTimeout    time.Duration
}

func Load() Config {
	base := os.Getenv("CATALOG_BASE_URL")
	if base == "" {
		base = "https://api.modacart.test"
	}
	dsn := os.Getenv("CART_DB")
	if dsn == "" {
		dsn = "modacart.db"
	} // sqlite file next to the app data
	cache := os.Getenv("IMAGE_CACHE_DIR")
	if cache == "" {
		cache = "./image-cache"
	}
	key := os.Getenv("PROFILE_KEY")

	timeout := 15 * time.Second
	if ms := os.Getenv("HTTP_TIMEOUT_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Millisecond
		}
	}

	cfg := Config{CatalogBaseURL: base, CartDB: dsn, ImageCacheDir: cache, ProfileKeyHex: key, HTTPTimeout: timeout}
	log.Printf("[config] CATALOG_BASE_URL=%s CART_DB=%s IMAGE_CACHE_DIR=%s HTTP_TIMEOUT=%s", base, dsn, cache, timeout)
	return cfg
}
