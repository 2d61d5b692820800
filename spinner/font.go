// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spinner

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var defaultFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DefaultFont returns the Go Regular font source used for the label.
// The source is parsed once and shared.
func DefaultFont() (*text.FontSource, error) {
	return defaultFont()
}

// LoadFontFile reads a TrueType or OpenType font from path.
//
// The file is checked with the go-text parser first so a malformed font is
// reported with its path instead of failing at first draw.
func LoadFontFile(path string) (*text.FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spinner: read font: %w", err)
	}
	if _, err := font.ParseTTF(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("spinner: parse font %s: %w", path, err)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("spinner: load font %s: %w", path, err)
	}
	return src, nil
}
