package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMessage_Self(t *testing.T) {
	svc := NewMessageService(new(mockMessageRepo), new(mockMemberRepo), zerolog.Nop())

	_, err := svc.CreateMessage(context.Background(), 11, &dto.CreateMessageRequest{
		RecipientID: 11,
		Content:     "hi me",
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateMessage_RecipientMissing(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	memberRepo := new(mockMemberRepo)
	svc := NewMessageService(messageRepo, memberRepo, zerolog.Nop())

	memberRepo.On("GetByIDWithPhotos", mock.Anything, int64(11), false).
		Return(&models.Member{ID: 11, KnownAs: "Lisa"}, nil)
	memberRepo.On("GetByIDWithPhotos", mock.Anything, int64(99), false).
		Return(nil, apperrors.ErrMemberNotFound)

	_, err := svc.CreateMessage(context.Background(), 11, &dto.CreateMessageRequest{
		RecipientID: 99,
		Content:     "hello",
	})

	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateMessage_Success(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	memberRepo := new(mockMemberRepo)
	svc := NewMessageService(messageRepo, memberRepo, zerolog.Nop())

	memberRepo.On("GetByIDWithPhotos", mock.Anything, int64(11), false).
		Return(&models.Member{ID: 11, KnownAs: "Lisa"}, nil)
	memberRepo.On("GetByIDWithPhotos", mock.Anything, int64(12), false).
		Return(&models.Member{ID: 12, KnownAs: "Todd"}, nil)
	messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.SenderID == 11 && m.RecipientID == 12 && m.Content == "hello"
	})).Return(int64(42), nil)

	resp, err := svc.CreateMessage(context.Background(), 11, &dto.CreateMessageRequest{
		RecipientID: 12,
		Content:     "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "Lisa", resp.SenderKnownAs)
	assert.Equal(t, "Todd", resp.RecipientKnownAs)
	assert.False(t, resp.IsRead)
}

func TestGetMessage_Stranger(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12}, nil)

	_, err := svc.GetMessage(context.Background(), 99, 42)

	assert.ErrorIs(t, err, apperrors.ErrNotMessageParticipant)
}

func TestGetMessage_HiddenAfterOwnSideDelete(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12, SenderDeleted: true}, nil)

	_, err := svc.GetMessage(context.Background(), 11, 42)

	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestGetMessage_StillVisibleToOtherSide(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12, SenderDeleted: true}, nil)

	resp, err := svc.GetMessage(context.Background(), 12, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestMarkRead_OnlyRecipient(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12}, nil)

	err := svc.MarkRead(context.Background(), 11, 42)

	assert.ErrorIs(t, err, apperrors.ErrNotMessageRecipient)
	messageRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestMarkRead_Recipient(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12}, nil)
	messageRepo.On("MarkRead", mock.Anything, int64(42)).Return(nil)

	err := svc.MarkRead(context.Background(), 12, 42)

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestDeleteMessage_SenderSide(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12}, nil)
	messageRepo.On("MarkDeleted", mock.Anything, int64(42), true).Return(nil)

	err := svc.DeleteMessage(context.Background(), 11, 42)

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestDeleteMessage_RecipientSide(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12}, nil)
	messageRepo.On("MarkDeleted", mock.Anything, int64(42), false).Return(nil)

	err := svc.DeleteMessage(context.Background(), 12, 42)

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestDeleteMessage_Stranger(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12}, nil)

	err := svc.DeleteMessage(context.Background(), 99, 42)

	assert.ErrorIs(t, err, apperrors.ErrNotMessageParticipant)
	messageRepo.AssertNotCalled(t, "MarkDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteMessage_AlreadyDeletedOnOwnSide(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	svc := NewMessageService(messageRepo, new(mockMemberRepo), zerolog.Nop())

	messageRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Message{ID: 42, SenderID: 11, RecipientID: 12, SenderDeleted: true}, nil)

	err := svc.DeleteMessage(context.Background(), 11, 42)

	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestGetThread_ReadStateUntouched(t *testing.T) {
	messageRepo := new(mockMessageRepo)
	memberRepo := new(mockMemberRepo)
	svc := NewMessageService(messageRepo, memberRepo, zerolog.Nop())

	memberRepo.On("GetByID", mock.Anything, int64(12)).Return(&models.Member{ID: 12}, nil)
	messageRepo.On("GetThread", mock.Anything, int64(11), int64(12)).
		Return([]*models.Message{{ID: 1, SenderID: 12, RecipientID: 11, Content: "hey"}}, nil)

	resp, err := svc.GetThread(context.Background(), 11, 12)

	require.NoError(t, err)
	assert.Len(t, resp, 1)
	// Viewing the thread never stamps messages read; that is MarkRead's job
	assert.False(t, resp[0].IsRead)
	messageRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}
