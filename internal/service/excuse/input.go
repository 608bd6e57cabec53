package excuse

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

var (
	categoryChoices = joinValues(domain.AllCategories())
	toneChoices     = joinValues(domain.AllTones())
)

func joinValues[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// GenerateInput holds the parameters for generating an excuse.
type GenerateInput struct {
	Category domain.Category
	Tone     domain.Tone
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Category == "":
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	case !i.Category.IsValid():
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of: " + categoryChoices})
	}

	switch {
	case i.Tone == "":
		errs = append(errs, domain.FieldError{Field: "tone", Message: "required"})
	case !i.Tone.IsValid():
		errs = append(errs, domain.FieldError{Field: "tone", Message: "must be one of: " + toneChoices})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EmergencyInput holds the parameters for an emergency excuse.
type EmergencyInput struct {
	CallType domain.CallType // empty means audio
}

// Validate checks all fields and collects all errors.
func (i EmergencyInput) Validate() error {
	if i.CallType != "" && !i.CallType.IsValid() {
		return domain.NewValidationError("callType", "must be one of: audio, video")
	}
	return nil
}

// RecentInput holds the parameters for listing recent excuses.
type RecentInput struct {
	Limit int // 0 means domain.DefaultRecentLimit
}

// Validate checks all fields and collects all errors.
func (i RecentInput) Validate() error {
	if i.Limit < 0 || i.Limit > domain.MaxRecentLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", domain.MaxRecentLimit))
	}
	return nil
}
