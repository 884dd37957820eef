package dto

import (
	"time"

	"github.com/serkank/amora/internal/app/models"
)

// CreateMessageRequest is the body for sending a message
type CreateMessageRequest struct {
	RecipientID int64  `json:"recipientId" binding:"required" example:"12"`
	Content     string `json:"content" binding:"required" example:"Hey there"`
}

// MessageResponse is the message shape returned to clients
type MessageResponse struct {
	ID                int64      `json:"id" example:"42"`
	SenderID          int64      `json:"senderId" example:"11"`
	SenderKnownAs     string     `json:"senderKnownAs,omitempty" example:"Lisa"`
	SenderPhotoURL    *string    `json:"senderPhotoUrl,omitempty"`
	RecipientID       int64      `json:"recipientId" example:"12"`
	RecipientKnownAs  string     `json:"recipientKnownAs,omitempty" example:"Todd"`
	RecipientPhotoURL *string    `json:"recipientPhotoUrl,omitempty"`
	Content           string     `json:"content"`
	IsRead            bool       `json:"isRead" example:"false"`
	DateRead          *time.Time `json:"dateRead,omitempty"`
	MessageSent       time.Time  `json:"messageSent"`
}

// MessageListResponse pairs a page of messages with its pagination metadata
type MessageListResponse struct {
	Messages   []MessageResponse `json:"messages"`
	Pagination Pagination        `json:"pagination"`
}

// FromMessage converts a model.Message to a MessageResponse
func FromMessage(message *models.Message) MessageResponse {
	resp := MessageResponse{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Content:     message.Content,
		IsRead:      message.IsRead,
		DateRead:    message.DateRead,
		MessageSent: message.MessageSent,
	}
	if message.Sender != nil {
		resp.SenderKnownAs = message.Sender.KnownAs
		resp.SenderPhotoURL = mainPhotoURL(message.Sender)
	}
	if message.Recipient != nil {
		resp.RecipientKnownAs = message.Recipient.KnownAs
		resp.RecipientPhotoURL = mainPhotoURL(message.Recipient)
	}
	return resp
}

func mainPhotoURL(member *models.Member) *string {
	for _, p := range member.Photos {
		if p.IsMain {
			url := p.URL
			return &url
		}
	}
	return nil
}
