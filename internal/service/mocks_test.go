package service

import (
	"context"
	"errors"
	"image"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/devtools-portal/backend/internal/config"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *GenerateService {
	t.Helper()
	svc, err := NewGenerateService(log.New(io.Discard, "", 0), config.GeneratorConfig{JPEGQuality: 75})
	require.NoError(t, err)
	return svc
}

type fakeRenderer struct {
	labels  []string
	failAt  int
	panicAt int
}

func (f *fakeRenderer) ContentType() string {
	return "application/octet-stream"
}

func (f *fakeRenderer) Render(label string, _ RenderOptions) ([]byte, error) {
	f.labels = append(f.labels, label)
	if f.panicAt > 0 && len(f.labels) == f.panicAt {
		panic("renderer crashed")
	}
	if f.failAt > 0 && len(f.labels) == f.failAt {
		return nil, errors.New("renderer exploded")
	}
	return []byte(label), nil
}

type fakeCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

type fakeRasterizer struct {
	input []byte
}

func (f *fakeRasterizer) Rasterize(data []byte) (image.Image, error) {
	f.input = data
	return image.NewRGBA(image.Rect(0, 0, 60, 40)), nil
}
