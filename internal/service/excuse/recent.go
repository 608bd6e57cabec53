package excuse

import (
	"context"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

// Recent returns up to input.Limit stored excuses, newest first.
func (s *Service) Recent(ctx context.Context, input RecentInput) ([]domain.Excuse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = domain.DefaultRecentLimit
	}
	return s.excuses.Recent(ctx, limit), nil
}
