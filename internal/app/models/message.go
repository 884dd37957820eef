package models

import "time"

// MessageContainer names a member's view over their messages
type MessageContainer string

const (
	ContainerInbox  MessageContainer = "Inbox"
	ContainerOutbox MessageContainer = "Outbox"
	ContainerUnread MessageContainer = "Unread" // default when no container is given
)

// Message represents a message between two members based on the 'messages'
// table. Each party deletes their own side independently; the row is
// physically removed only once both flags are set.
type Message struct {
	ID               int64      `json:"id" db:"id"`
	SenderID         int64      `json:"senderId" db:"sender_id"`
	RecipientID      int64      `json:"recipientId" db:"recipient_id"`
	Content          string     `json:"content" db:"content"`
	IsRead           bool       `json:"isRead" db:"is_read"`
	DateRead         *time.Time `json:"dateRead,omitempty" db:"date_read"`
	MessageSent      time.Time  `json:"messageSent" db:"message_sent"`
	SenderDeleted    bool       `json:"-" db:"sender_deleted"`
	RecipientDeleted bool       `json:"-" db:"recipient_deleted"`

	// Related entities, loaded explicitly
	Sender    *Member `json:"sender,omitempty"`
	Recipient *Member `json:"recipient,omitempty"`
}

// MessageFilter is the explicit specification the message repository
// evaluates for the paged container views.
type MessageFilter struct {
	MemberID  int64
	Container MessageContainer
	Page      int
	PageSize  int
}
