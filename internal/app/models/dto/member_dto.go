package dto

import (
	"time"

	"github.com/serkank/amora/internal/app/models"
)

// MemberListItemResponse is the summary shape used by the discovery list
type MemberListItemResponse struct {
	ID             int64     `json:"id" example:"11"`
	Username       string    `json:"username" example:"lisa"`
	KnownAs        string    `json:"knownAs" example:"Lisa"`
	Age            int       `json:"age" example:"29"`
	Gender         string    `json:"gender" example:"female"`
	City           *string   `json:"city,omitempty"`
	Country        *string   `json:"country,omitempty"`
	PhotoURL       *string   `json:"photoUrl,omitempty"` // URL of the main photo
	CreatedProfile time.Time `json:"createdProfile"`
	LastActive     time.Time `json:"lastActive"`
}

// MemberDetailResponse is the full profile shape including photos
type MemberDetailResponse struct {
	MemberListItemResponse
	Introduction *string         `json:"introduction,omitempty"`
	LookingFor   *string         `json:"lookingFor,omitempty"`
	Interests    *string         `json:"interests,omitempty"`
	Photos       []PhotoResponse `json:"photos"`
}

// MemberListResponse pairs a page of members with its pagination metadata
type MemberListResponse struct {
	Members    []MemberListItemResponse `json:"members"`
	Pagination Pagination               `json:"pagination"`
}

// UpdateMemberRequest carries the editable profile fields
type UpdateMemberRequest struct {
	Introduction *string `json:"introduction"`
	LookingFor   *string `json:"lookingFor"`
	Interests    *string `json:"interests"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
}

// FromMember converts a model.Member to a MemberListItemResponse
func FromMember(member *models.Member) MemberListItemResponse {
	resp := MemberListItemResponse{
		ID:             member.ID,
		Username:       member.Username,
		KnownAs:        member.KnownAs,
		Age:            member.Age(),
		Gender:         string(member.Gender),
		City:           member.City,
		Country:        member.Country,
		CreatedProfile: member.CreatedProfile,
		LastActive:     member.LastActive,
	}
	for _, p := range member.Photos {
		if p.IsMain {
			url := p.URL
			resp.PhotoURL = &url
			break
		}
	}
	return resp
}

// FromMemberDetail converts a model.Member with photos to a MemberDetailResponse
func FromMemberDetail(member *models.Member) MemberDetailResponse {
	resp := MemberDetailResponse{
		MemberListItemResponse: FromMember(member),
		Introduction:           member.Introduction,
		LookingFor:             member.LookingFor,
		Interests:              member.Interests,
		Photos:                 make([]PhotoResponse, 0, len(member.Photos)),
	}
	for _, p := range member.Photos {
		resp.Photos = append(resp.Photos, FromPhoto(p))
	}
	return resp
}
