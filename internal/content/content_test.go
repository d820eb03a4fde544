// content_test.go holds the in-memory fakes shared by the text and media
// resolver tests.
package content

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeDocs is an in-memory DocumentStore with error injection.
type fakeDocs struct {
	mu   sync.Mutex
	docs map[string]map[string]string // "collection/name" -> fields

	failReads  bool
	failWrites bool
	writes     int
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: map[string]map[string]string{}}
}

func (f *fakeDocs) key(collection, name string) string {
	return collection + "/" + name
}

func (f *fakeDocs) GetDocument(_ context.Context, collection, name string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return nil, errors.New("store unreachable")
	}
	out := map[string]string{}
	for k, v := range f.docs[f.key(collection, name)] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeDocs) GetField(_ context.Context, collection, name, field string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return "", false, errors.New("store unreachable")
	}
	doc, ok := f.docs[f.key(collection, name)]
	if !ok {
		return "", false, nil
	}
	v, ok := doc[field]
	return v, ok, nil
}

func (f *fakeDocs) MergeField(_ context.Context, collection, name, field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("write refused")
	}
	k := f.key(collection, name)
	if f.docs[k] == nil {
		f.docs[k] = map[string]string{}
	}
	f.docs[k][field] = value
	f.writes++
	return nil
}

// fakeObjects is an in-memory ObjectStore.
type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte

	failList   bool
	failUpload bool
	listCalls  int
	existCalls int
}

func newFakeObjects(keys ...string) *fakeObjects {
	f := &fakeObjects{objects: map[string][]byte{}}
	for _, k := range keys {
		f.objects[k] = []byte("x")
	}
	return f
}

func (f *fakeObjects) ListFolder(_ context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.failList {
		return nil, errors.New("listing unavailable")
	}
	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) && !strings.Contains(strings.TrimPrefix(k, prefix), "/") {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (f *fakeObjects) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existCalls++
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeObjects) Upload(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpload {
		return errors.New("upload refused")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeObjects) Download(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return bytes.Clone(data), nil
}

func (f *fakeObjects) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key) // absent key deletes are success
	return nil
}

func (f *fakeObjects) FileURL(key string) string {
	return "https://cdn.test/" + path.Clean(key)
}

// memCache is an in-memory DescriptorCache.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, id string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[id]
	return v, ok
}

func (c *memCache) Set(_ context.Context, id string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = payload
}

func (c *memCache) Invalidate(_ context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}
