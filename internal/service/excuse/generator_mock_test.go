package excuse

import (
	"context"
	"sync"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

var _ excuseGenerator = &excuseGeneratorMock{}

type excuseGeneratorMock struct {
	GenerateFunc func(ctx context.Context, category domain.Category, tone domain.Tone) domain.GenerationResult

	calls struct {
		Generate []struct {
			Ctx      context.Context
			Category domain.Category
			Tone     domain.Tone
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *excuseGeneratorMock) Generate(ctx context.Context, category domain.Category, tone domain.Tone) domain.GenerationResult {
	if mock.GenerateFunc == nil {
		panic("excuseGeneratorMock.GenerateFunc: method is nil but excuseGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category domain.Category
		Tone     domain.Tone
	}{Ctx: ctx, Category: category, Tone: tone}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, category, tone)
}

func (mock *excuseGeneratorMock) GenerateCalls() []struct {
	Ctx      context.Context
	Category domain.Category
	Tone     domain.Tone
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
