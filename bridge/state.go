// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import "fmt"

// State is the lifecycle state of a Bridge.
type State int32

const (
	// StateUninitialized waits for the first invalidation with a layout.
	StateUninitialized State = iota
	// StateActive renders one frame per invalidation.
	StateActive
	// StateClosed is terminal.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}
