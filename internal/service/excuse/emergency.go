package excuse

import (
	"context"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

// Emergency generates an urgent family excuse to accompany a simulated
// incoming call.
func (s *Service) Emergency(ctx context.Context, input EmergencyInput) (*EmergencyExcuse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	callType := input.CallType
	if callType == "" {
		callType = domain.CallTypeAudio
	}

	gen := s.generateAndStore(ctx, domain.CategoryFamily, domain.ToneUrgent)

	return &EmergencyExcuse{
		GeneratedExcuse: *gen,
		CallType:        callType,
		Contact:         s.contact,
	}, nil
}
