// handlers_test.go holds shared fixtures for the handler tests. Handlers
// over the resolution layer are tested with in-memory stores; the record
// handlers run against PostgreSQL and skip when it is unreachable.
package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memDocs is an in-memory document store.
type memDocs struct {
	mu   sync.Mutex
	docs map[string]map[string]string
}

func newMemDocs() *memDocs {
	return &memDocs{docs: map[string]map[string]string{}}
}

func (m *memDocs) GetDocument(_ context.Context, collection, name string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for k, v := range m.docs[collection+"/"+name] {
		out[k] = v
	}
	return out, nil
}

func (m *memDocs) GetField(_ context.Context, collection, name, field string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[collection+"/"+name]
	if !ok {
		return "", false, nil
	}
	v, ok := doc[field]
	return v, ok, nil
}

func (m *memDocs) MergeField(_ context.Context, collection, name, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := collection + "/" + name
	if m.docs[k] == nil {
		m.docs[k] = map[string]string{}
	}
	m.docs[k][field] = value
	return nil
}

// memObjects is an in-memory object store.
type memObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemObjects(keys ...string) *memObjects {
	m := &memObjects{objects: map[string][]byte{}}
	for _, k := range keys {
		m.objects[k] = []byte("x")
	}
	return m
}

func (m *memObjects) ListFolder(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) && !strings.Contains(strings.TrimPrefix(k, prefix), "/") {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *memObjects) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memObjects) Upload(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memObjects) Download(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.objects[key]; ok {
		return data, nil
	}
	return nil, errors.New("no such key")
}

func (m *memObjects) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memObjects) FileURL(key string) string { return "https://cdn.test/" + key }

// noopCache disables descriptor caching in handler tests.
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noopCache) Set(context.Context, string, []byte)        {}
func (noopCache) Invalidate(context.Context, string)         {}
