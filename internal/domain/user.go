package domain

import "time"

// User is a tracked person record. GlobalID is the identifier assigned by the
// re-identification pipeline; it is deliberately NOT unique: the pipeline may
// re-issue an ID after a track is lost and re-acquired, so several rows can
// share one GlobalID.
type User struct {
	ID        int64
	GlobalID  int64
	Name      string
	ZoneID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdateParams holds the optional fields of a partial user update.
// A nil field is left unchanged; ZoneID uses a double pointer so that
// "set zone to NULL" and "don't touch zone" stay distinguishable.
type UserUpdateParams struct {
	GlobalID *int64
	Name     *string
	ZoneID   **string
}

// UsersDict maps GlobalID to display name for every user in the store.
// When several users share a GlobalID the row with the highest ID wins.
type UsersDict map[int64]string
