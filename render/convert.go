// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// ARGBFromRGBA converts premultiplied RGBA bytes into little-endian ARGB32.
// dst and src must have the same length, a multiple of 4. dst may alias src.
func ARGBFromRGBA(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		dst[i+0] = b
		dst[i+1] = g
		dst[i+2] = r
		dst[i+3] = a
	}
}

// RGBAFromARGB is the inverse of ARGBFromRGBA.
func RGBAFromARGB(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		b, g, r, a := src[i], src[i+1], src[i+2], src[i+3]
		dst[i+0] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}
