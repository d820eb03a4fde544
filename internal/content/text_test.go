package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylimit/internal/bus"
)

func newTextResolver(docs *fakeDocs) (*TextResolver, *bus.Bus) {
	b := bus.New()
	return NewTextResolver(docs, b, discardLogger()), b
}

func TestResolveEmptyStoreReturnsDefault(t *testing.T) {
	r, _ := newTextResolver(newFakeDocs())

	got := r.Resolve(context.Background(), "text-content", "home", "hero-title-1", "SKY LIMIT")
	assert.Equal(t, "SKY LIMIT", got)
}

func TestCommitThenResolve(t *testing.T) {
	r, _ := newTextResolver(newFakeDocs())
	ctx := context.Background()

	require.NoError(t, r.Commit(ctx, "text-content", "home", "hero-title-1", "NEW TITLE"))

	got := r.Resolve(ctx, "text-content", "home", "hero-title-1", "SKY LIMIT")
	assert.Equal(t, "NEW TITLE", got)
}

func TestResolveMissingFieldReturnsDefault(t *testing.T) {
	docs := newFakeDocs()
	r, _ := newTextResolver(docs)
	ctx := context.Background()

	require.NoError(t, r.Commit(ctx, "text-content", "home", "hero-title-1", "NEW TITLE"))

	// Same document, different field: the default wins.
	got := r.Resolve(ctx, "text-content", "home", "hero-subtitle", "Wedding films")
	assert.Equal(t, "Wedding films", got)
}

func TestResolveSwallowsReadErrors(t *testing.T) {
	docs := newFakeDocs()
	docs.failReads = true
	r, _ := newTextResolver(docs)

	got := r.Resolve(context.Background(), "text-content", "home", "hero-title-1", "SKY LIMIT")
	assert.Equal(t, "SKY LIMIT", got, "read failure must degrade to the default, not an error")
}

func TestCommitPreservesSiblingFields(t *testing.T) {
	r, _ := newTextResolver(newFakeDocs())
	ctx := context.Background()

	require.NoError(t, r.Commit(ctx, "text-content", "home", "hero-title-1", "ONE"))
	require.NoError(t, r.Commit(ctx, "text-content", "home", "hero-title-2", "TWO"))
	require.NoError(t, r.Commit(ctx, "text-content", "home", "hero-title-1", "ONE UPDATED"))

	assert.Equal(t, "ONE UPDATED", r.Resolve(ctx, "text-content", "home", "hero-title-1", ""))
	assert.Equal(t, "TWO", r.Resolve(ctx, "text-content", "home", "hero-title-2", ""))
}

func TestCommitIdempotent(t *testing.T) {
	r, _ := newTextResolver(newFakeDocs())
	ctx := context.Background()

	require.NoError(t, r.Commit(ctx, "text-content", "home", "hero-title-1", "SAME"))
	require.NoError(t, r.Commit(ctx, "text-content", "home", "hero-title-1", "SAME"))

	assert.Equal(t, "SAME", r.Resolve(ctx, "text-content", "home", "hero-title-1", "other"))
}

func TestCommitSurfacesWriteErrors(t *testing.T) {
	docs := newFakeDocs()
	docs.failWrites = true
	r, _ := newTextResolver(docs)

	err := r.Commit(context.Background(), "text-content", "home", "hero-title-1", "NEW")
	require.Error(t, err)

	// The failed value must not become visible.
	assert.Equal(t, "OLD", r.Resolve(context.Background(), "text-content", "home", "hero-title-1", "OLD"))
}

func TestCommitNotifiesSubscribers(t *testing.T) {
	r, b := newTextResolver(newFakeDocs())

	sub := b.Subscribe(bus.TextKey("text-content", "home", "hero-title-1"))
	defer sub.Close()

	require.NoError(t, r.Commit(context.Background(), "text-content", "home", "hero-title-1", "NEW"))

	select {
	case e := <-sub.C:
		assert.Equal(t, bus.TextKey("text-content", "home", "hero-title-1"), e.Key)
	default:
		t.Fatal("commit should publish on the triple's key")
	}
}

func TestNoCrossContaminationBetweenTriples(t *testing.T) {
	r, _ := newTextResolver(newFakeDocs())
	ctx := context.Background()

	require.NoError(t, r.Commit(ctx, "text-content", "home", "title", "HOME"))
	require.NoError(t, r.Commit(ctx, "text-content", "about", "title", "ABOUT"))
	require.NoError(t, r.Commit(ctx, "site-copy", "home", "title", "COPY"))

	assert.Equal(t, "HOME", r.Resolve(ctx, "text-content", "home", "title", ""))
	assert.Equal(t, "ABOUT", r.Resolve(ctx, "text-content", "about", "title", ""))
	assert.Equal(t, "COPY", r.Resolve(ctx, "site-copy", "home", "title", ""))
}

func TestResolveDocumentMergesOverDefaults(t *testing.T) {
	r, _ := newTextResolver(newFakeDocs())
	ctx := context.Background()

	require.NoError(t, r.Commit(ctx, "text-content", "home", "hero-title-1", "STORED"))

	defaults := map[string]string{
		"hero-title-1":  "DEFAULT ONE",
		"hero-subtitle": "DEFAULT SUB",
	}
	got := r.ResolveDocument(ctx, "text-content", "home", defaults)

	assert.Equal(t, "STORED", got["hero-title-1"])
	assert.Equal(t, "DEFAULT SUB", got["hero-subtitle"])
}

func TestResolveDocumentDegradesToDefaultsOnError(t *testing.T) {
	docs := newFakeDocs()
	docs.failReads = true
	r, _ := newTextResolver(docs)

	defaults := map[string]string{"hero-title-1": "SKY LIMIT"}
	got := r.ResolveDocument(context.Background(), "text-content", "home", defaults)
	assert.Equal(t, defaults, got)
}
