package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/excuse-backend/internal/domain"
	"github.com/heartmarshall/excuse-backend/internal/service/excuse"
)

var _ excuseService = &excuseServiceMock{}

type excuseServiceMock struct {
	GenerateFunc  func(ctx context.Context, input excuse.GenerateInput) (*excuse.GeneratedExcuse, error)
	EmergencyFunc func(ctx context.Context, input excuse.EmergencyInput) (*excuse.EmergencyExcuse, error)
	RecentFunc    func(ctx context.Context, input excuse.RecentInput) ([]domain.Excuse, error)

	calls struct {
		Generate  []excuse.GenerateInput
		Emergency []excuse.EmergencyInput
		Recent    []excuse.RecentInput
	}
	lock sync.RWMutex
}

func (mock *excuseServiceMock) Generate(ctx context.Context, input excuse.GenerateInput) (*excuse.GeneratedExcuse, error) {
	if mock.GenerateFunc == nil {
		panic("excuseServiceMock.GenerateFunc: method is nil but excuseService.Generate was just called")
	}
	mock.lock.Lock()
	mock.calls.Generate = append(mock.calls.Generate, input)
	mock.lock.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *excuseServiceMock) GenerateCalls() []excuse.GenerateInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Generate
}

func (mock *excuseServiceMock) Emergency(ctx context.Context, input excuse.EmergencyInput) (*excuse.EmergencyExcuse, error) {
	if mock.EmergencyFunc == nil {
		panic("excuseServiceMock.EmergencyFunc: method is nil but excuseService.Emergency was just called")
	}
	mock.lock.Lock()
	mock.calls.Emergency = append(mock.calls.Emergency, input)
	mock.lock.Unlock()
	return mock.EmergencyFunc(ctx, input)
}

func (mock *excuseServiceMock) EmergencyCalls() []excuse.EmergencyInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Emergency
}

func (mock *excuseServiceMock) Recent(ctx context.Context, input excuse.RecentInput) ([]domain.Excuse, error) {
	if mock.RecentFunc == nil {
		panic("excuseServiceMock.RecentFunc: method is nil but excuseService.Recent was just called")
	}
	mock.lock.Lock()
	mock.calls.Recent = append(mock.calls.Recent, input)
	mock.lock.Unlock()
	return mock.RecentFunc(ctx, input)
}

func (mock *excuseServiceMock) RecentCalls() []excuse.RecentInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Recent
}
