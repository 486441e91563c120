package mocks

import (
	"github.com/stretchr/testify/mock"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// MockRunLocker is a mock type for the RunLocker type.
type MockRunLocker struct {
	mock.Mock
}

// MockRunLocker_Expecter records typed expectations on MockRunLocker.
type MockRunLocker_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockRunLocker) EXPECT() *MockRunLocker_Expecter {
	return &MockRunLocker_Expecter{mock: &_m.Mock}
}

// Acquire provides a mock function with given fields: root
func (_m *MockRunLocker) Acquire(root m.Path) (func() error, error) {
	ret := _m.Called(root)

	if len(ret) == 0 {
		panic("no return value specified for Acquire")
	}

	var release func() error
	if ret.Get(0) != nil {
		release = ret.Get(0).(func() error)
	}

	return release, ret.Error(1)
}

// MockRunLocker_Acquire_Call wraps the Acquire expectation.
type MockRunLocker_Acquire_Call struct {
	*mock.Call
}

// Acquire is a helper method to define mock.On call
func (_e *MockRunLocker_Expecter) Acquire(root interface{}) *MockRunLocker_Acquire_Call {
	return &MockRunLocker_Acquire_Call{Call: _e.mock.On("Acquire", root)}
}

func (_c *MockRunLocker_Acquire_Call) Return(release func() error, err error) *MockRunLocker_Acquire_Call {
	_c.Call.Return(release, err)
	return _c
}
