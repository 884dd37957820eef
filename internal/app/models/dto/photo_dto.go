package dto

import (
	"time"

	"github.com/serkank/amora/internal/app/models"
)

// PhotoResponse is the photo shape returned to clients
type PhotoResponse struct {
	ID          int64     `json:"id" example:"7"`
	URL         string    `json:"url" example:"https://res.example.com/photos/abc.jpg"`
	Description *string   `json:"description,omitempty"`
	IsMain      bool      `json:"isMain" example:"true"`
	IsApproved  bool      `json:"isApproved" example:"false"`
	DateAdded   time.Time `json:"dateAdded"`
}

// PhotoForModerationResponse adds owner information for the admin queue
type PhotoForModerationResponse struct {
	PhotoResponse
	MemberID int64  `json:"memberId" example:"11"`
	KnownAs  string `json:"knownAs" example:"Lisa"`
}

// FromPhoto converts a model.Photo to a PhotoResponse
func FromPhoto(photo *models.Photo) PhotoResponse {
	return PhotoResponse{
		ID:          photo.ID,
		URL:         photo.URL,
		Description: photo.Description,
		IsMain:      photo.IsMain,
		IsApproved:  photo.IsApproved,
		DateAdded:   photo.DateAdded,
	}
}
