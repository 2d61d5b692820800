// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggview/geometry"
	"github.com/gogpu/ggview/render"
)

// ErrInvalidUpdate is returned by Validate for malformed updates.
var ErrInvalidUpdate = errors.New("scene: invalid update")

// ResourceID identifies a resource within a view's scene.
type ResourceID uint32

// NodeID identifies a node within a view's scene.
type NodeID uint32

// Well-known IDs of the single-image scene.
const (
	ContentResourceID ResourceID = 1
	RootNodeID        NodeID     = 0
)

// HitTestBehavior controls how a node takes part in hit testing.
type HitTestBehavior uint8

const (
	// HitTestOpaque makes the node's hit rect capture pointer input.
	HitTestOpaque HitTestBehavior = iota
	// HitTestSuppress excludes the node from hit testing.
	HitTestSuppress
)

// String returns the behavior name.
func (h HitTestBehavior) String() string {
	switch h {
	case HitTestOpaque:
		return "opaque"
	case HitTestSuppress:
		return "suppress"
	default:
		return fmt.Sprintf("HitTestBehavior(%d)", h)
	}
}

// RectF is a rectangle in view coordinates.
type RectF struct {
	X, Y, Width, Height float32
}

// RectFOf returns the rectangle covering a viewport of the given size.
func RectFOf(size geometry.Size) RectF {
	return RectF{Width: float32(size.Width), Height: float32(size.Height)}
}

// Image describes pixel memory the compositor reads directly.
type Image struct {
	Size   geometry.Size
	Stride int
	Offset int
	Format gputypes.TextureFormat
	Buffer *render.PixelBuffer
}

// ImageResource is drawable image content.
type ImageResource struct {
	Image Image
}

// ImageNodeOp draws a resource into a node's rectangle.
type ImageNodeOp struct {
	Image ResourceID
}

// Node places content in the view.
type Node struct {
	Op       *ImageNodeOp
	HitTest  HitTestBehavior
	HitRect  RectF
	Children []NodeID
}

// Update replaces the scene's resources and nodes.
type Update struct {
	ClearResources bool
	ClearNodes     bool
	Resources      map[ResourceID]*ImageResource
	Nodes          map[NodeID]*Node
}

// Metadata tags a published scene.
type Metadata struct {
	Version          uint32
	PresentationTime int64
}

// NewImageUpdate builds the single-image update for buf: one image resource
// over the whole buffer and one opaque node covering the viewport.
func NewImageUpdate(buf *render.PixelBuffer) Update {
	size := buf.Size()
	return Update{
		ClearResources: true,
		ClearNodes:     true,
		Resources: map[ResourceID]*ImageResource{
			ContentResourceID: {
				Image: Image{
					Size:   size,
					Stride: buf.Stride(),
					Format: buf.Format(),
					Buffer: buf,
				},
			},
		},
		Nodes: map[NodeID]*Node{
			RootNodeID: {
				Op:      &ImageNodeOp{Image: ContentResourceID},
				HitTest: HitTestOpaque,
				HitRect: RectFOf(size),
			},
		},
	}
}

// Validate checks that every node references an existing resource, every
// image lies inside its buffer, and the root node exists.
func (u Update) Validate() error {
	for id, res := range u.Resources {
		if res == nil {
			return fmt.Errorf("%w: resource %d is nil", ErrInvalidUpdate, id)
		}
		if err := res.Image.validate(); err != nil {
			return fmt.Errorf("%w: resource %d: %w", ErrInvalidUpdate, id, err)
		}
	}
	if _, ok := u.Nodes[RootNodeID]; !ok {
		return fmt.Errorf("%w: missing root node", ErrInvalidUpdate)
	}
	for id, n := range u.Nodes {
		if n == nil {
			return fmt.Errorf("%w: node %d is nil", ErrInvalidUpdate, id)
		}
		if n.Op != nil {
			if _, ok := u.Resources[n.Op.Image]; !ok {
				return fmt.Errorf("%w: node %d references missing resource %d",
					ErrInvalidUpdate, id, n.Op.Image)
			}
		}
		for _, c := range n.Children {
			if _, ok := u.Nodes[c]; !ok {
				return fmt.Errorf("%w: node %d has missing child %d", ErrInvalidUpdate, id, c)
			}
		}
	}
	return nil
}

func (img Image) validate() error {
	if img.Buffer == nil {
		return errors.New("no buffer")
	}
	if img.Size.Empty() {
		return fmt.Errorf("empty size %v", img.Size)
	}
	if img.Stride < img.Size.Width*render.BytesPerPixel {
		return fmt.Errorf("stride %d too small for width %d", img.Stride, img.Size.Width)
	}
	end := img.Offset + img.Stride*(img.Size.Height-1) + img.Size.Width*render.BytesPerPixel
	if img.Offset < 0 || end > img.Buffer.Len() {
		return fmt.Errorf("image spans [%d, %d) outside buffer of %d bytes",
			img.Offset, end, img.Buffer.Len())
	}
	return nil
}
