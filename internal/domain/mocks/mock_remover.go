// Package mocks contains testify mocks of the domain services.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sccremover.dev/pkg/sccremover/internal/domain"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// MockRemover is a mock type for the Remover type.
type MockRemover struct {
	mock.Mock
}

// MockRemover_Expecter records typed expectations on MockRemover.
type MockRemover_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockRemover) EXPECT() *MockRemover_Expecter {
	return &MockRemover_Expecter{mock: &_m.Mock}
}

// Remove provides a mock function with given fields: ctx, args
func (_m *MockRemover) Remove(ctx context.Context, args domain.RemoveArgs) m.Summary {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Remove")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.RemoveArgs) m.Summary); ok {
		return rf(ctx, args)
	}

	return ret.Get(0).(m.Summary)
}

// MockRemover_Remove_Call wraps the Remove expectation.
type MockRemover_Remove_Call struct {
	*mock.Call
}

// Remove is a helper method to define mock.On call
func (_e *MockRemover_Expecter) Remove(ctx interface{}, args interface{}) *MockRemover_Remove_Call {
	return &MockRemover_Remove_Call{Call: _e.mock.On("Remove", ctx, args)}
}

func (_c *MockRemover_Remove_Call) Return(summary m.Summary) *MockRemover_Remove_Call {
	_c.Call.Return(summary)
	return _c
}

func (_c *MockRemover_Remove_Call) RunAndReturn(run func(context.Context, domain.RemoveArgs) m.Summary) *MockRemover_Remove_Call {
	_c.Call.Return(run)
	return _c
}
