package models

import (
	"time"
)

// Gender is the canonical gender string stored for a member
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Opposite returns the other canonical gender. Callers must pass one of the
// two canonical values; anything else is passed back unchanged.
func (g Gender) Opposite() Gender {
	switch g {
	case GenderMale:
		return GenderFemale
	case GenderFemale:
		return GenderMale
	}
	return g
}

// Member defines the member model based on the 'members' table
type Member struct {
	ID             int64     `json:"id" db:"id" example:"1"`                                     // Unique identifier for the member
	Username       string    `json:"username" db:"username" example:"lisa"`                      // Login name, unique
	Password       string    `json:"-" db:"password"`                                            // Hashed password (excluded from JSON)
	Gender         Gender    `json:"gender" db:"gender" example:"female"`                        // "male" or "female"
	DateOfBirth    time.Time `json:"dateOfBirth" db:"date_of_birth"`                             // Used for the age filter
	KnownAs        string    `json:"knownAs" db:"known_as" example:"Lisa"`                       // Display name
	CreatedProfile time.Time `json:"createdProfile" db:"created_profile"`                        // Timestamp when the profile was created
	LastActive     time.Time `json:"lastActive" db:"last_active"`                                // Stamped by the activity middleware
	Introduction   *string   `json:"introduction,omitempty" db:"introduction"`                   // Free-text profile field (nullable)
	LookingFor     *string   `json:"lookingFor,omitempty" db:"looking_for"`                      // Free-text profile field (nullable)
	Interests      *string   `json:"interests,omitempty" db:"interests"`                         // Free-text profile field (nullable)
	City           *string   `json:"city,omitempty" db:"city"`                                   // Nullable
	Country        *string   `json:"country,omitempty" db:"country"`                             // Nullable
	Role           RoleType  `json:"role" db:"role" example:"MEMBER"`                            // MEMBER or ADMIN
	Photos         []*Photo  `json:"photos,omitempty"`                                           // Relation, loaded explicitly, no db tag
}

// Age returns the member's age in full years as of today.
func (m *Member) Age() int {
	return AgeAt(m.DateOfBirth, time.Now())
}

// AgeAt returns the age in full years at the given reference date.
func AgeAt(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.YearDay() < dob.YearDay() {
		age--
	}
	return age
}
