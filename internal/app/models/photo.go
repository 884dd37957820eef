package models

import "time"

// Photo represents a member photo based on the 'photos' table.
// Each member has at most one photo with IsMain set; the photo service
// owns that invariant.
type Photo struct {
	ID          int64     `json:"id" db:"id"`
	MemberID    int64     `json:"memberId" db:"member_id"`
	URL         string    `json:"url" db:"url"`
	Description *string   `json:"description,omitempty" db:"description"`
	IsMain      bool      `json:"isMain" db:"is_main"`
	IsApproved  bool      `json:"isApproved" db:"is_approved"`
	PublicID    *string   `json:"-" db:"public_id"` // External media-store reference (nullable)
	DateAdded   time.Time `json:"dateAdded" db:"date_added"`
}

// PhotoForModeration pairs a pending photo with its owner's display name
type PhotoForModeration struct {
	Photo
	KnownAs string `json:"knownAs" db:"known_as"`
}
