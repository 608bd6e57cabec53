package excuse

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

type excuseRepo interface {
	Create(ctx context.Context, category domain.Category, tone domain.Tone, content string) domain.Excuse
	Recent(ctx context.Context, limit int) []domain.Excuse
}

type excuseGenerator interface {
	Generate(ctx context.Context, category domain.Category, tone domain.Tone) domain.GenerationResult
}

// Service generates excuses and keeps the recent ones.
type Service struct {
	excuses excuseRepo
	gen     excuseGenerator
	contact domain.FakeContact
	log     *slog.Logger
}

// NewService creates a new Excuse service.
func NewService(
	log *slog.Logger,
	excuses excuseRepo,
	gen excuseGenerator,
	contact domain.FakeContact,
) *Service {
	return &Service{
		excuses: excuses,
		gen:     gen,
		contact: contact,
		log:     log.With("service", "excuse"),
	}
}

// GeneratedExcuse is a stored excuse together with how it was produced.
type GeneratedExcuse struct {
	Excuse        domain.Excuse
	Believability int
	Source        domain.Source
}

// EmergencyExcuse is a generated excuse paired with the simulated call
// that accompanies it.
type EmergencyExcuse struct {
	GeneratedExcuse
	CallType domain.CallType
	Contact  domain.FakeContact
}

func (s *Service) generateAndStore(ctx context.Context, category domain.Category, tone domain.Tone) *GeneratedExcuse {
	res := s.gen.Generate(ctx, category, tone)
	stored := s.excuses.Create(ctx, category, tone, res.Excuse)

	s.log.InfoContext(ctx, "excuse created",
		slog.String("excuse_id", stored.ID.String()),
		slog.String("category", category.String()),
		slog.String("tone", tone.String()),
		slog.String("source", res.Source.String()),
		slog.Int("believability", res.Believability),
	)

	return &GeneratedExcuse{
		Excuse:        stored,
		Believability: res.Believability,
		Source:        res.Source,
	}
}
