// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input defines the compositor's input event wire shapes and
// classifies raw events into a closed set of kinds.
//
// Classify never fails: anything it does not recognize becomes KindOther
// and is ignored by the view.
package input
