package search

import (
	"context"

	"github.com/smsportal/portal-console/internal/catalog"
	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of Source for testing.
type MockSource struct {
	mock.Mock
}

// Name provides a mock function with given fields: .
func (_m *MockSource) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}
	return r0
}

// Entries provides a mock function with given fields: ctx.
func (_m *MockSource) Entries(ctx context.Context) ([]catalog.Entry, error) {
	ret := _m.Called(ctx)

	var r0 []catalog.Entry
	if rf, ok := ret.Get(0).(func(context.Context) []catalog.Entry); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]catalog.Entry)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}
