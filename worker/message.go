// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package worker

import "github.com/gogpu/ggview/geometry"

type msgKind uint8

const (
	msgStart msgKind = iota
	msgDraw
	msgPointerDown
	msgPointerMove
	msgPointerUp
	msgResize
	msgStop
)

func (k msgKind) String() string {
	switch k {
	case msgStart:
		return "start"
	case msgDraw:
		return "draw"
	case msgPointerDown:
		return "pointer-down"
	case msgPointerMove:
		return "pointer-move"
	case msgPointerUp:
		return "pointer-up"
	case msgResize:
		return "resize"
	case msgStop:
		return "stop"
	default:
		return "unknown"
	}
}

// message is the single type carried on the worker channel.
// reply is set for start and draw only and has capacity one.
type message struct {
	kind  msgKind
	size  geometry.Size
	id    int
	point geometry.Point
	reply chan result
}

type result struct {
	frame Frame
	err   error
}
