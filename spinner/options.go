// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spinner

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"
)

// Option configures a Square during creation.
type Option func(*Square)

// WithLabel sets the label drawn above the square. The text is stored in
// Unicode NFC form. An empty label draws nothing.
func WithLabel(label string) Option {
	return func(s *Square) {
		s.label = norm.NFC.String(label)
	}
}

// WithFace sets the label font face.
// Defaults to Go Regular at DefaultFontSize.
func WithFace(face text.Face) Option {
	return func(s *Square) {
		s.face = face
	}
}

// WithStep sets the rotation applied after each idle frame, in radians.
func WithStep(step float64) Option {
	return func(s *Square) {
		s.step = step
	}
}

// WithAngle sets the initial rotation in radians.
func WithAngle(angle float64) Option {
	return func(s *Square) {
		s.angle = angle
	}
}
