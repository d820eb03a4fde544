// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package bus provides the in-process notification bus that propagates
// "this content changed" events to every mounted editable binding. There is
// no server push channel in this design: a commit or upload publishes here,
// and every other binding subscribed to the same identity key re-resolves.
//
// Keys are the same identities used for resolution: the
// collection/document/field triple for text, the asset id (plus page and
// section for batch views) for media. Subscriptions are scoped acquisitions:
// every subscriber must Close on teardown or it leaks.
package bus

import (
	"sync"
)

// Event describes a single content-changed notification.
type Event struct {
	// Key is the identity the change applies to.
	Key string
}

// TextKey builds the bus key for a text identity triple.
func TextKey(collection, document, field string) string {
	return "text:" + collection + "/" + document + "/" + field
}

// AssetKey builds the bus key for a media asset id.
func AssetKey(id string) string {
	return "asset:" + id
}

// PageKey builds the bus key for page-scoped batch views.
func PageKey(page string) string {
	return "page:" + page
}

// SectionKey builds the bus key for section-scoped batch views.
func SectionKey(section string) string {
	return "section:" + section
}

// subscriptionBuffer bounds how many undelivered events a subscriber can
// hold. Publish never blocks; a subscriber that falls this far behind
// misses events and re-resolves on the next one it does receive.
const subscriptionBuffer = 8

// Bus is an application-scoped publish/subscribe hub. The zero value is not
// usable; construct with New.
type Bus struct {
	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscription is one listener's registration for a set of keys. Events
// arrive on C. Close deregisters the listener and closes C; it is safe to
// call more than once.
type Subscription struct {
	C chan Event

	bus   *Bus
	keys  []string
	close sync.Once
}

// Subscribe registers a listener for the given keys. Multiple independent
// subscriptions per key are supported.
func (b *Bus) Subscribe(keys ...string) *Subscription {
	sub := &Subscription{
		C:    make(chan Event, subscriptionBuffer),
		bus:  b,
		keys: keys,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range keys {
		set, ok := b.subs[k]
		if !ok {
			set = make(map[*Subscription]struct{})
			b.subs[k] = set
		}
		set[sub] = struct{}{}
	}
	return sub
}

// Close deregisters the subscription from every key and closes its channel.
// The channel is closed under the bus lock so Publish can never send on a
// closed channel.
func (s *Subscription) Close() {
	s.close.Do(func() {
		b := s.bus
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, k := range s.keys {
			if set, ok := b.subs[k]; ok {
				delete(set, s)
				if len(set) == 0 {
					delete(b.subs, k)
				}
			}
		}
		close(s.C)
	})
}

// Publish delivers the event to every subscription registered for its key.
// Delivery is non-blocking: a subscriber whose buffer is full is skipped
// rather than wedging the publisher (the publisher is a commit or upload
// completion and must never stall on a slow listener).
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs[e.Key] {
		select {
		case sub.C <- e:
		default:
		}
	}
}

// PublishKeys publishes the same change under several identity keys, e.g.
// an asset id plus its page and section for batch-view invalidation.
func (b *Bus) PublishKeys(keys ...string) {
	for _, k := range keys {
		b.Publish(Event{Key: k})
	}
}

// SubscriberCount reports how many subscriptions are registered for a key.
// Used by tests to verify that teardown does not leak listeners.
func (b *Bus) SubscriberCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[key])
}
