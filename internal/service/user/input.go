package user

import (
	"strings"

	"github.com/imespro/reid-backend/internal/domain"
)

// MaxNameLen bounds user display names. The pipeline never produces longer
// ones; anything above this is a client mistake.
const MaxNameLen = 255

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	GlobalID int64
	Name     string
	ZoneID   *string
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.GlobalID < 0 {
		errs = append(errs, domain.FieldError{Field: "global_id", Message: "must be non-negative"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if i.ZoneID != nil && strings.TrimSpace(*i.ZoneID) == "" {
		errs = append(errs, domain.FieldError{Field: "zone_id", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateUserInput holds the parameters for a partial user update.
// ZoneID distinguishes three states: nil = don't change, pointer to nil =
// detach from zone, pointer to value = assign zone.
type UpdateUserInput struct {
	ID       int64
	GlobalID *int64
	Name     *string
	ZoneID   **string
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.GlobalID == nil && i.Name == nil && i.ZoneID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.GlobalID != nil && *i.GlobalID < 0 {
		errs = append(errs, domain.FieldError{Field: "global_id", Message: "must be non-negative"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > MaxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}
	if i.ZoneID != nil && *i.ZoneID != nil && strings.TrimSpace(**i.ZoneID) == "" {
		errs = append(errs, domain.FieldError{Field: "zone_id", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
