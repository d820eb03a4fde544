// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package node

import (
	"context"
	"sync"

	"skylimit/internal/bus"
	"skylimit/internal/catalog"
	"skylimit/internal/content"
)

// ImageNode binds one asset id to a rendered media slot. Besides its own
// asset key it listens on the page and section keys, so a batch upload
// elsewhere on the page re-resolves it too.
type ImageNode struct {
	resolver *content.MediaResolver
	bus      *bus.Bus
	viewer   ViewerFunc

	id       string
	fallback string

	mu      sync.Mutex
	state   State
	asset   content.Descriptor
	prior   content.Descriptor
	mounted bool
	gen     int
	sub     *bus.Subscription
}

// NewImageNode creates an unmounted image node. Until resolution completes
// it displays the fallback descriptor, never a broken reference.
func NewImageNode(r *content.MediaResolver, b *bus.Bus, viewer ViewerFunc, id, fallbackPath string) *ImageNode {
	return &ImageNode{
		resolver: r,
		bus:      b,
		viewer:   viewer,
		id:       id,
		fallback: fallbackPath,
		state:    StateLoading,
		asset:    content.FallbackDescriptor(id, fallbackPath),
	}
}

// Mount starts resolution and subscribes to the asset's notification keys.
func (n *ImageNode) Mount(ctx context.Context) {
	n.mu.Lock()
	if n.mounted {
		n.mu.Unlock()
		return
	}
	n.mounted = true
	n.gen++
	n.state = StateLoading
	gen := n.gen

	keys := []string{bus.AssetKey(n.id)}
	if a, ok := catalog.ByID(n.id); ok {
		keys = append(keys, bus.PageKey(a.Page), bus.SectionKey(a.Section))
	}
	sub := n.bus.Subscribe(keys...)
	n.sub = sub
	n.mu.Unlock()

	go n.watch(ctx, sub, gen)
	go n.refresh(ctx, gen)
}

// Unmount deregisters the bus listener and discards in-flight resolutions.
func (n *ImageNode) Unmount() {
	n.mu.Lock()
	if !n.mounted {
		n.mu.Unlock()
		return
	}
	n.mounted = false
	n.gen++
	sub := n.sub
	n.sub = nil
	n.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
}

func (n *ImageNode) watch(ctx context.Context, sub *bus.Subscription, gen int) {
	for range sub.C {
		n.refresh(ctx, gen)
	}
}

func (n *ImageNode) refresh(ctx context.Context, gen int) {
	resolved := n.resolver.ResolveAsset(ctx, n.id, n.fallback)

	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.mounted || n.gen != gen {
		return
	}
	n.asset = resolved
	if n.state == StateLoading {
		n.state = StateResolved
	}
}

// Asset returns the currently displayed descriptor.
func (n *ImageNode) Asset() content.Descriptor {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.asset
}

// State returns the node's lifecycle state.
func (n *ImageNode) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// EditAffordance describes the edit control. Video slots keep it visible
// without hover.
func (n *ImageNode) EditAffordance() Affordance {
	n.mu.Lock()
	kind := n.asset.Kind
	n.mu.Unlock()

	return Affordance{
		Visible:          n.viewer(),
		AlwaysVisible:    kind == catalog.KindVideo,
		StopsPropagation: true,
	}
}

// BeginEdit transitions Resolved -> Editing, opening the upload surface.
func (n *ImageNode) BeginEdit() (content.Descriptor, error) {
	if !n.viewer() {
		return content.Descriptor{}, ErrNotAuthenticated
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StateResolved {
		return content.Descriptor{}, ErrNotEditable
	}
	n.state = StateEditing
	n.prior = n.asset
	return n.asset, nil
}

// Save uploads the replacement binary. On success the node shows the new
// asset immediately; other mounted nodes on the same id, page, or section
// re-resolve via the upload's broadcast. On failure the node stays in
// Editing with the prior asset displayed.
func (n *ImageNode) Save(ctx context.Context, data []byte, contentType string) error {
	n.mu.Lock()
	if n.state != StateEditing {
		n.mu.Unlock()
		return ErrNotEditing
	}
	n.mu.Unlock()

	d, err := n.resolver.UploadAsset(ctx, n.id, data, contentType)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = StateResolved
	n.asset = d
	return nil
}

// Cancel discards the edit and returns to the prior asset.
func (n *ImageNode) Cancel() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StateEditing {
		return ErrNotEditing
	}
	n.state = StateResolved
	n.asset = n.prior
	return nil
}
