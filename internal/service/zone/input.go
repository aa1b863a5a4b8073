package zone

import (
	"strings"

	"github.com/imespro/reid-backend/internal/domain"
)

const (
	// MaxZoneIDLen bounds zone identifiers. They come from camera
	// configuration files, which use short slugs.
	MaxZoneIDLen = 64
	// MaxZoneNameLen bounds human-readable zone names.
	MaxZoneNameLen = 255
)

// CreateZoneInput holds the parameters for creating a working zone.
// The four corner points describe a quadrilateral in camera coordinates;
// no geometry validation is applied.
type CreateZoneInput struct {
	ZoneID   string
	ZoneName string
	X1, Y1   float64
	X2, Y2   float64
	X3, Y3   float64
	X4, Y4   float64
}

// Validate checks all fields and collects all errors.
func (i CreateZoneInput) Validate() error {
	var errs []domain.FieldError

	zoneID := strings.TrimSpace(i.ZoneID)
	if zoneID == "" {
		errs = append(errs, domain.FieldError{Field: "zone_id", Message: "required"})
	}
	if len(zoneID) > MaxZoneIDLen {
		errs = append(errs, domain.FieldError{Field: "zone_id", Message: "max 64 characters"})
	}

	zoneName := strings.TrimSpace(i.ZoneName)
	if zoneName == "" {
		errs = append(errs, domain.FieldError{Field: "zone_name", Message: "required"})
	}
	if len(zoneName) > MaxZoneNameLen {
		errs = append(errs, domain.FieldError{Field: "zone_name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateZoneInput holds the parameters for a partial zone update.
// NewZoneID renames the zone; user references follow the rename.
type UpdateZoneInput struct {
	ZoneID    string
	NewZoneID *string
	ZoneName  *string
	X1, Y1    *float64
	X2, Y2    *float64
	X3, Y3    *float64
	X4, Y4    *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateZoneInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ZoneID) == "" {
		errs = append(errs, domain.FieldError{Field: "zone_id", Message: "required"})
	}

	if i.NewZoneID == nil && i.ZoneName == nil && !i.hasCoords() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.NewZoneID != nil {
		newID := strings.TrimSpace(*i.NewZoneID)
		if newID == "" {
			errs = append(errs, domain.FieldError{Field: "new_zone_id", Message: "required"})
		}
		if len(newID) > MaxZoneIDLen {
			errs = append(errs, domain.FieldError{Field: "new_zone_id", Message: "max 64 characters"})
		}
	}
	if i.ZoneName != nil {
		zoneName := strings.TrimSpace(*i.ZoneName)
		if zoneName == "" {
			errs = append(errs, domain.FieldError{Field: "zone_name", Message: "required"})
		}
		if len(zoneName) > MaxZoneNameLen {
			errs = append(errs, domain.FieldError{Field: "zone_name", Message: "max 255 characters"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateZoneInput) hasCoords() bool {
	for _, p := range []*float64{i.X1, i.Y1, i.X2, i.Y2, i.X3, i.Y3, i.X4, i.Y4} {
		if p != nil {
			return true
		}
	}
	return false
}
