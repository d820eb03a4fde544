// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package node binds editable content slots to the resolution layer. A
// node mounts, resolves its current value (showing its default meanwhile,
// never a blank), listens on the notification bus so other writers' commits
// reach it, and, for an authenticated viewer, walks the edit state machine:
// Resolved -> Editing -> Resolved. Unmounting deregisters the listener and
// discards any in-flight resolution.
package node

import "errors"

// State is the node lifecycle state.
type State int

const (
	StateLoading State = iota
	StateResolved
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateResolved:
		return "resolved"
	case StateEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Element is the rendered element type a text node declares.
type Element string

const (
	ElementParagraph Element = "p"
	ElementHeading   Element = "h"
	ElementSpan      Element = "span"
)

// ViewerFunc reports whether the current viewer is authenticated. Edit
// affordances and transitions are gated on it.
type ViewerFunc func() bool

// Affordance describes how a node's edit control is presented.
type Affordance struct {
	// Visible is true only for an authenticated viewer.
	Visible bool
	// AlwaysVisible skips the hover gate. Video slots set it: hovering a
	// playing video is a weak discovery signal.
	AlwaysVisible bool
	// StopsPropagation is always true: the control may sit inside a link,
	// and activating it must not navigate.
	StopsPropagation bool
}

var (
	// ErrNotAuthenticated is returned when an unauthenticated viewer
	// attempts to begin editing.
	ErrNotAuthenticated = errors.New("viewer is not authenticated")

	// ErrNotEditable is returned for an edit transition from a state that
	// does not allow it.
	ErrNotEditable = errors.New("node is not in an editable state")

	// ErrNotEditing is returned for save/cancel outside the editing state.
	ErrNotEditing = errors.New("node is not being edited")
)
