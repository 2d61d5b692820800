// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frametiming corrects the frame timing hints a compositor attaches
// to each invalidation.
//
// Compositor hints are advisory. A Tracker turns them into a record that is
// monotonic across frames, never scheduled in the future, and snapped
// forward to the next achievable frame boundary when the view has fallen
// behind by one or more whole presentation intervals.
//
// All times are tick counts (nanoseconds) on a monotonic clock. Zero means
// unset.
package frametiming
