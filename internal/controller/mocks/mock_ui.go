// Package mocks contains testify mocks of the controller ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// MockUI_Expecter records typed expectations on MockUI.
type MockUI_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// Start provides a mock function with given fields: ctx
func (_m *MockUI) Start(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Start")
	}

	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		return rf(ctx)
	}

	return ret.Error(0)
}

// MockUI_Start_Call wraps the Start expectation.
type MockUI_Start_Call struct {
	*mock.Call
}

// Start is a helper method to define mock.On call
func (_e *MockUI_Expecter) Start(ctx interface{}) *MockUI_Start_Call {
	return &MockUI_Start_Call{Call: _e.mock.On("Start", ctx)}
}

func (_c *MockUI_Start_Call) Return(_a0 error) *MockUI_Start_Call {
	_c.Call.Return(_a0)
	return _c
}

// Close provides a mock function with given fields: ctx
func (_m *MockUI) Close(ctx context.Context) {
	_m.Called(ctx)
}

// MockUI_Close_Call wraps the Close expectation.
type MockUI_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockUI_Expecter) Close(ctx interface{}) *MockUI_Close_Call {
	return &MockUI_Close_Call{Call: _e.mock.On("Close", ctx)}
}

func (_c *MockUI_Close_Call) Return() *MockUI_Close_Call {
	_c.Call.Return()
	return _c
}

// Wait provides a mock function with given fields: ctx
func (_m *MockUI) Wait(ctx context.Context) {
	_m.Called(ctx)
}

// MockUI_Wait_Call wraps the Wait expectation.
type MockUI_Wait_Call struct {
	*mock.Call
}

// Wait is a helper method to define mock.On call
func (_e *MockUI_Expecter) Wait(ctx interface{}) *MockUI_Wait_Call {
	return &MockUI_Wait_Call{Call: _e.mock.On("Wait", ctx)}
}

func (_c *MockUI_Wait_Call) Return() *MockUI_Wait_Call {
	_c.Call.Return()
	return _c
}

// Confirm provides a mock function with given fields: ctx, root
func (_m *MockUI) Confirm(ctx context.Context, root m.Path) (bool, error) {
	ret := _m.Called(ctx, root)

	if len(ret) == 0 {
		panic("no return value specified for Confirm")
	}

	if rf, ok := ret.Get(0).(func(context.Context, m.Path) (bool, error)); ok {
		return rf(ctx, root)
	}

	return ret.Bool(0), ret.Error(1)
}

// MockUI_Confirm_Call wraps the Confirm expectation.
type MockUI_Confirm_Call struct {
	*mock.Call
}

// Confirm is a helper method to define mock.On call
func (_e *MockUI_Expecter) Confirm(ctx interface{}, root interface{}) *MockUI_Confirm_Call {
	return &MockUI_Confirm_Call{Call: _e.mock.On("Confirm", ctx, root)}
}

func (_c *MockUI_Confirm_Call) Return(confirmed bool, err error) *MockUI_Confirm_Call {
	_c.Call.Return(confirmed, err)
	return _c
}

// Log provides a mock function with given fields: ctx, entry
func (_m *MockUI) Log(ctx context.Context, entry m.LogEntry) {
	_m.Called(ctx, entry)
}

// MockUI_Log_Call wraps the Log expectation.
type MockUI_Log_Call struct {
	*mock.Call
}

// Log is a helper method to define mock.On call
func (_e *MockUI_Expecter) Log(ctx interface{}, entry interface{}) *MockUI_Log_Call {
	return &MockUI_Log_Call{Call: _e.mock.On("Log", ctx, entry)}
}

func (_c *MockUI_Log_Call) Run(run func(ctx context.Context, entry m.LogEntry)) *MockUI_Log_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(m.LogEntry))
	})
	return _c
}

func (_c *MockUI_Log_Call) Return() *MockUI_Log_Call {
	_c.Call.Return()
	return _c
}

// DisplaySummary provides a mock function with given fields: ctx, summary
func (_m *MockUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	ret := _m.Called(ctx, summary)

	if len(ret) == 0 {
		panic("no return value specified for DisplaySummary")
	}

	if rf, ok := ret.Get(0).(func(context.Context, m.Summary) error); ok {
		return rf(ctx, summary)
	}

	return ret.Error(0)
}

// MockUI_DisplaySummary_Call wraps the DisplaySummary expectation.
type MockUI_DisplaySummary_Call struct {
	*mock.Call
}

// DisplaySummary is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplaySummary(ctx interface{}, summary interface{}) *MockUI_DisplaySummary_Call {
	return &MockUI_DisplaySummary_Call{Call: _e.mock.On("DisplaySummary", ctx, summary)}
}

func (_c *MockUI_DisplaySummary_Call) Return(_a0 error) *MockUI_DisplaySummary_Call {
	_c.Call.Return(_a0)
	return _c
}

// DisplayReport provides a mock function with given fields: ctx, report
func (_m *MockUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	ret := _m.Called(ctx, report)

	if len(ret) == 0 {
		panic("no return value specified for DisplayReport")
	}

	if rf, ok := ret.Get(0).(func(context.Context, m.RunReport) error); ok {
		return rf(ctx, report)
	}

	return ret.Error(0)
}

// MockUI_DisplayReport_Call wraps the DisplayReport expectation.
type MockUI_DisplayReport_Call struct {
	*mock.Call
}

// DisplayReport is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayReport(ctx interface{}, report interface{}) *MockUI_DisplayReport_Call {
	return &MockUI_DisplayReport_Call{Call: _e.mock.On("DisplayReport", ctx, report)}
}

func (_c *MockUI_DisplayReport_Call) Return(_a0 error) *MockUI_DisplayReport_Call {
	_c.Call.Return(_a0)
	return _c
}
