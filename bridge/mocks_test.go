// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"sync"

	mock "github.com/stretchr/testify/mock"

	"github.com/gogpu/ggview/scene"
)

type MockScene struct {
	mock.Mock
}

func (_m *MockScene) Update(u scene.Update) error {
	ret := _m.Called(u)
	return ret.Error(0)
}

func (_m *MockScene) Publish(m scene.Metadata) error {
	ret := _m.Called(m)
	return ret.Error(0)
}

func NewMockScene(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockScene {
	mock := &MockScene{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

type MockView struct {
	mock.Mock
}

func (_m *MockView) Invalidate() error {
	ret := _m.Called()
	return ret.Error(0)
}

func NewMockView(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockView {
	mock := &MockView{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// fakeInput records the registered listener.
type fakeInput struct {
	mu       sync.Mutex
	listener func(raw any)
}

func (f *fakeInput) SetListener(fn func(raw any)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listener = fn
	return nil
}

func (f *fakeInput) send(raw any) {
	f.mu.Lock()
	fn := f.listener
	f.mu.Unlock()
	if fn != nil {
		fn(raw)
	}
}
