// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package bridge connects a compositor-driven view to a render worker.
//
// A Bridge starts Uninitialized. The first invalidation that carries a
// layout starts the worker, registers for input and makes the bridge
// Active. From then on every invalidation produces exactly one frame:
//
//  1. correct the compositor timing with a frametiming.Tracker
//  2. block on worker.Draw
//  3. copy the frame into the shared pixel buffer
//  4. Update and Publish the single-image scene
//  5. ask the compositor for the next invalidation
//
// Input may arrive on any goroutine. Pointer events go straight to the
// worker; the quit key closes the bridge and calls Host.Quit. After Close
// no further scene is published.
package bridge
