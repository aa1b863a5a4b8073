package domain

import "time"

// WorkingZone is a monitored area described by a quadrilateral in camera
// coordinates. The four corner points are stored as-is; nothing checks that
// they form a convex or even simple polygon; that is the caller's problem.
type WorkingZone struct {
	ZoneID    string
	ZoneName  string
	X1, Y1    float64
	X2, Y2    float64
	X3, Y3    float64
	X4, Y4    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ZoneUpdateParams holds the optional fields of a partial zone update.
// NewZoneID renames the zone; the users.zone_id FK is declared
// ON UPDATE CASCADE, so references follow automatically.
type ZoneUpdateParams struct {
	NewZoneID *string
	ZoneName  *string
	X1, Y1    *float64
	X2, Y2    *float64
	X3, Y3    *float64
	X4, Y4    *float64
}

// ZoneUserCount pairs a zone with the number of users currently assigned to it.
type ZoneUserCount struct {
	ZoneID    string `json:"zone_id"`
	ZoneName  string `json:"zone_name"`
	UserCount int64  `json:"user_count"`
}
