// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package node

import (
	"context"
	"sync"

	"skylimit/internal/bus"
	"skylimit/internal/content"
)

// TextNode binds one (collection, document, field) triple to a rendered
// text slot. Identity is the full triple; two nodes on the same triple
// converge after any commit via the bus.
type TextNode struct {
	resolver *content.TextResolver
	bus      *bus.Bus
	viewer   ViewerFunc

	collection string
	document   string
	field      string
	fallback   string
	element    Element

	mu      sync.Mutex
	state   State
	value   string
	prior   string
	mounted bool
	gen     int
	sub     *bus.Subscription
}

// NewTextNode creates an unmounted text node displaying fallback until
// resolution completes.
func NewTextNode(r *content.TextResolver, b *bus.Bus, viewer ViewerFunc, collection, document, field, fallback string, element Element) *TextNode {
	return &TextNode{
		resolver:   r,
		bus:        b,
		viewer:     viewer,
		collection: collection,
		document:   document,
		field:      field,
		fallback:   fallback,
		element:    element,
		state:      StateLoading,
		value:      fallback,
	}
}

// Mount starts resolution and subscribes to the triple's notifications.
// Mounting an already-mounted node is a no-op.
func (n *TextNode) Mount(ctx context.Context) {
	n.mu.Lock()
	if n.mounted {
		n.mu.Unlock()
		return
	}
	n.mounted = true
	n.gen++
	n.state = StateLoading
	n.value = n.fallback
	gen := n.gen
	sub := n.bus.Subscribe(bus.TextKey(n.collection, n.document, n.field))
	n.sub = sub
	n.mu.Unlock()

	go n.watch(ctx, sub, gen)
	go n.refresh(ctx, gen)
}

// Unmount deregisters the bus listener. Any resolution still in flight is
// discarded: its result will not touch the node.
func (n *TextNode) Unmount() {
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

// watch re-resolves on every notification until the subscription closes.
func (n *TextNode) watch(ctx context.Context, sub *bus.Subscription, gen int) {
	for range sub.C {
		n.refresh(ctx, gen)
	}
}

// refresh resolves the current value and applies it unless the node was
// unmounted (or remounted) while the fetch was in flight.
func (n *TextNode) refresh(ctx context.Context, gen int) {
	resolved := n.resolver.Resolve(ctx, n.collection, n.document, n.field, n.fallback)

	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.mounted || n.gen != gen {
		return
	}
	n.value = resolved
	if n.state == StateLoading {
		n.state = StateResolved
	}
	// In StateEditing the displayed value still tracks the store; the
	// modal holds its own draft.
}

// Value returns the currently displayed string. It is never empty while a
// non-empty fallback was declared: during loading the fallback shows.
func (n *TextNode) Value() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.value
}

// State returns the node's lifecycle state.
func (n *TextNode) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Element returns the declared rendered element type.
func (n *TextNode) Element() Element {
	return n.element
}

// EditAffordance describes the edit control for the current viewer.
func (n *TextNode) EditAffordance() Affordance {
	return Affordance{
		Visible:          n.viewer(),
		StopsPropagation: true,
	}
}

// BeginEdit transitions Resolved -> Editing and returns the value the edit
// surface should be pre-filled with. Unauthenticated viewers are rejected.
func (n *TextNode) BeginEdit() (string, error) {
	if !n.viewer() {
		return "", ErrNotAuthenticated
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StateResolved {
		return "", ErrNotEditable
	}
	n.state = StateEditing
	n.prior = n.value
	return n.value, nil
}

// Save commits the new value. On success the node shows it immediately; on
// failure the node stays in Editing with the prior value still displayed,
// and the error is returned for the caller's messaging.
func (n *TextNode) Save(ctx context.Context, newValue string) error {
	n.mu.Lock()
	if n.state != StateEditing {
		n.mu.Unlock()
		return ErrNotEditing
	}
	n.mu.Unlock()

	if err := n.resolver.Commit(ctx, n.collection, n.document, n.field, newValue); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = StateResolved
	n.value = newValue
	return nil
}

// Cancel discards the edit and returns to the prior resolved value.
func (n *TextNode) Cancel() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StateEditing {
		return ErrNotEditing
	}
	n.state = StateResolved
	n.value = n.prior
	return nil
}
