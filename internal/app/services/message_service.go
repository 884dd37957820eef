package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/app/repositories"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/helpers"
)

// MessageService defines the interface for message operations
type MessageService interface {
	CreateMessage(ctx context.Context, senderID int64, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	GetMessages(ctx context.Context, filter models.MessageFilter) (*dto.MessageListResponse, error)
	GetMessage(ctx context.Context, requesterID, messageID int64) (*dto.MessageResponse, error)
	GetThread(ctx context.Context, currentID, otherID int64) ([]dto.MessageResponse, error)
	MarkRead(ctx context.Context, requesterID, messageID int64) error
	DeleteMessage(ctx context.Context, requesterID, messageID int64) error
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messageRepo repositories.IMessageRepository
	memberRepo  repositories.IMemberRepository
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo repositories.IMessageRepository,
	memberRepo repositories.IMemberRepository,
	logger zerolog.Logger,
) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

// CreateMessage sends a message from senderID to the requested recipient
func (s *messageServiceImpl) CreateMessage(ctx context.Context, senderID int64, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if senderID == req.RecipientID {
		return nil, apperrors.NewBadRequestError("you cannot message yourself")
	}

	sender, err := s.memberRepo.GetByIDWithPhotos(ctx, senderID, false)
	if err != nil {
		return nil, err
	}
	recipient, err := s.memberRepo.GetByIDWithPhotos(ctx, req.RecipientID, false)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
	}

	if _, err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("messageID", message.ID).Int64("senderID", senderID).Int64("recipientID", req.RecipientID).Msg("Message sent")

	message.Sender = sender
	message.Recipient = recipient

	resp := dto.FromMessage(message)
	return &resp, nil
}

// GetMessages returns one page of a member's container view. An unknown or
// empty container falls back to unread.
func (s *messageServiceImpl) GetMessages(ctx context.Context, filter models.MessageFilter) (*dto.MessageListResponse, error) {
	if filter.Page == 0 {
		filter.Page = helpers.DefaultPage
	}
	if filter.PageSize == 0 {
		filter.PageSize = helpers.DefaultPageSize
	}

	messages, total, err := s.messageRepo.GetForMember(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.FromMessage(m))
	}

	return &dto.MessageListResponse{
		Messages:   items,
		Pagination: helpers.NewPagination(total, filter.Page, filter.PageSize),
	}, nil
}

// GetMessage returns a single message. Only the two participants may read it,
// and a participant who deleted it on their side no longer sees it.
func (s *messageServiceImpl) GetMessage(ctx context.Context, requesterID, messageID int64) (*dto.MessageResponse, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	switch requesterID {
	case message.SenderID:
		if message.SenderDeleted {
			return nil, apperrors.ErrMessageNotFound
		}
	case message.RecipientID:
		if message.RecipientDeleted {
			return nil, apperrors.ErrMessageNotFound
		}
	default:
		return nil, apperrors.ErrNotMessageParticipant
	}

	resp := dto.FromMessage(message)
	return &resp, nil
}

// GetThread returns the conversation between the current member and another
// member, newest message first. Viewing a thread does not change read state;
// messages become read only through the explicit MarkRead transition.
func (s *messageServiceImpl) GetThread(ctx context.Context, currentID, otherID int64) ([]dto.MessageResponse, error) {
	if _, err := s.memberRepo.GetByID(ctx, otherID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.GetThread(ctx, currentID, otherID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.FromMessage(m))
	}

	return items, nil
}

// MarkRead stamps a message as read. Only the recipient may do this.
func (s *messageServiceImpl) MarkRead(ctx context.Context, requesterID, messageID int64) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if message.RecipientID != requesterID {
		return apperrors.ErrNotMessageRecipient
	}

	return s.messageRepo.MarkRead(ctx, messageID)
}

// DeleteMessage removes the message from the requester's side. Once both
// sides have deleted it, the message is gone for good.
func (s *messageServiceImpl) DeleteMessage(ctx context.Context, requesterID, messageID int64) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	var bySender bool
	switch requesterID {
	case message.SenderID:
		if message.SenderDeleted {
			return apperrors.ErrMessageNotFound
		}
		bySender = true
	case message.RecipientID:
		if message.RecipientDeleted {
			return apperrors.ErrMessageNotFound
		}
	default:
		return apperrors.ErrNotMessageParticipant
	}

	return s.messageRepo.MarkDeleted(ctx, messageID, bySender)
}
