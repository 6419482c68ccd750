package services

import (
	"context"
	"sync"

	"modacart/internal/catalog"
	applog "modacart/internal/log"
)

// ImageCache is the capability the image flow writes through. Cache writes
// are fire-and-forget background work and never gate returning freshly
// fetched bytes.
type ImageCache interface {
	Cache(name string, data []byte) error
	Load(name string) ([]byte, bool)
}

type ImageService struct {
	Client *catalog.Client
	Cache  ImageCache

	mu      sync.Mutex
	writing map[string]struct{} // single writer per key
}

func NewImageService(client *catalog.Client, cache ImageCache) *ImageService {
	return &ImageService{Client: client, Cache: cache, writing: map[string]struct{}{}}
}

// Image returns the bytes for a catalog image name, from the local cache
// when possible. On a miss the download result is returned immediately and
// written back in the background.
func (s *ImageService) Image(ctx context.Context, name string) ([]byte, error) {
	if b, ok := s.Cache.Load(name); ok {
		return b, nil
	}

	b, err := s.Client.FetchImage(ctx, name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, busy := s.writing[name]
	if !busy {
		s.writing[name] = struct{}{}
	}
	s.mu.Unlock()
	if !busy {
		go func() {
			if err := s.Cache.Cache(name, b); err != nil {
				applog.Error("image.cache", err, map[string]any{"name": name})
			}
			s.mu.Lock()
			delete(s.writing, name)
			s.mu.Unlock()
		}()
	}
	return b, nil
}
