package excuse

import "context"

// Generate validates the request, generates an excuse and stores it.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*GeneratedExcuse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.generateAndStore(ctx, input.Category, input.Tone), nil
}
