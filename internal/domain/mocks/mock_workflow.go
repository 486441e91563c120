package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sccremover.dev/pkg/sccremover/internal/domain"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// Remove provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Remove(ctx context.Context, args domain.RunArgs) (m.Summary, error) {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Remove")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.RunArgs) (m.Summary, error)); ok {
		return rf(ctx, args)
	}

	return ret.Get(0).(m.Summary), ret.Error(1)
}

// View provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for View")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.ViewArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}
