package excuse

import (
	"context"
	"sync"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

var _ excuseRepo = &excuseRepoMock{}

type excuseRepoMock struct {
	CreateFunc func(ctx context.Context, category domain.Category, tone domain.Tone, content string) domain.Excuse
	RecentFunc func(ctx context.Context, limit int) []domain.Excuse

	calls struct {
		Create []struct {
			Ctx      context.Context
			Category domain.Category
			Tone     domain.Tone
			Content  string
		}
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockCreate sync.RWMutex
	lockRecent sync.RWMutex
}

func (mock *excuseRepoMock) Create(ctx context.Context, category domain.Category, tone domain.Tone, content string) domain.Excuse {
	if mock.CreateFunc == nil {
		panic("excuseRepoMock.CreateFunc: method is nil but excuseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category domain.Category
		Tone     domain.Tone
		Content  string
	}{Ctx: ctx, Category: category, Tone: tone, Content: content}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, category, tone, content)
}

func (mock *excuseRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Category domain.Category
	Tone     domain.Tone
	Content  string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *excuseRepoMock) Recent(ctx context.Context, limit int) []domain.Excuse {
	if mock.RecentFunc == nil {
		panic("excuseRepoMock.RecentFunc: method is nil but excuseRepo.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, limit)
}

func (mock *excuseRepoMock) RecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}
