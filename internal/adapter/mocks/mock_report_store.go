// Package mocks contains testify mocks of the adapter ports.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// MockReportStore is a mock type for the ReportStore type.
type MockReportStore struct {
	mock.Mock
}

// MockReportStore_Expecter records typed expectations on MockReportStore.
type MockReportStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockReportStore) EXPECT() *MockReportStore_Expecter {
	return &MockReportStore_Expecter{mock: &_m.Mock}
}

// SaveReport provides a mock function with given fields: path, report
func (_m *MockReportStore) SaveReport(path m.Path, report m.RunReport) error {
	ret := _m.Called(path, report)

	if len(ret) == 0 {
		panic("no return value specified for SaveReport")
	}

	if rf, ok := ret.Get(0).(func(m.Path, m.RunReport) error); ok {
		return rf(path, report)
	}

	return ret.Error(0)
}

// MockReportStore_SaveReport_Call wraps the SaveReport expectation.
type MockReportStore_SaveReport_Call struct {
	*mock.Call
}

// SaveReport is a helper method to define mock.On call
func (_e *MockReportStore_Expecter) SaveReport(path interface{}, report interface{}) *MockReportStore_SaveReport_Call {
	return &MockReportStore_SaveReport_Call{Call: _e.mock.On("SaveReport", path, report)}
}

func (_c *MockReportStore_SaveReport_Call) Return(_a0 error) *MockReportStore_SaveReport_Call {
	_c.Call.Return(_a0)
	return _c
}

// LoadReport provides a mock function with given fields: path
func (_m *MockReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for LoadReport")
	}

	if rf, ok := ret.Get(0).(func(m.Path) (m.RunReport, error)); ok {
		return rf(path)
	}

	return ret.Get(0).(m.RunReport), ret.Error(1)
}

// MockReportStore_LoadReport_Call wraps the LoadReport expectation.
type MockReportStore_LoadReport_Call struct {
	*mock.Call
}

// LoadReport is a helper method to define mock.On call
func (_e *MockReportStore_Expecter) LoadReport(path interface{}) *MockReportStore_LoadReport_Call {
	return &MockReportStore_LoadReport_Call{Call: _e.mock.On("LoadReport", path)}
}

func (_c *MockReportStore_LoadReport_Call) Return(report m.RunReport, err error) *MockReportStore_LoadReport_Call {
	_c.Call.Return(report, err)
	return _c
}
