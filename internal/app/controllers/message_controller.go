package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/app/services"
	"github.com/serkank/amora/internal/middleware"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/helpers"
)

// MessageController handles the message lifecycle
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// CreateMessage handles sending a message
// @Summary Send a message
// @Description Sends a message from the caller to another member
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMessageRequest true "Message details"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid body or self-message"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Recipient not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages [post]
func (c *MessageController) CreateMessage(ctx *gin.Context) {
	senderID, _ := middleware.MemberID(ctx)

	var req dto.CreateMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.messageService.CreateMessage(ctx, senderID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetMessages handles the paged container views
// @Summary List messages
// @Description Returns one page of the caller's Inbox, Outbox or Unread container
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param container query string false "Container: Inbox, Outbox or Unread" default(Unread)
// @Param pageNumber query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size (max 50)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.MessageListResponse} "Messages retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages [get]
func (c *MessageController) GetMessages(ctx *gin.Context) {
	memberID, _ := middleware.MemberID(ctx)
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filter := models.MessageFilter{
		MemberID:  memberID,
		Container: models.MessageContainer(ctx.DefaultQuery("container", string(models.ContainerUnread))),
		Page:      page,
		PageSize:  pageSize,
	}

	resp, err := c.messageService.GetMessages(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetMessage handles retrieving a single message
// @Summary Get message by ID
// @Description Returns a single message. Only its participants may read it.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Message retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid message ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a participant"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{id} [get]
func (c *MessageController) GetMessage(ctx *gin.Context) {
	messageID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || messageID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid message ID"))
		return
	}

	requesterID, _ := middleware.MemberID(ctx)

	resp, err := c.messageService.GetMessage(ctx, requesterID, messageID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetThread handles retrieving a conversation
// @Summary Get message thread
// @Description Returns the full conversation between the caller and another member, newest first and unpaged.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memberId path int true "Other member's ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse} "Thread retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/thread/{memberId} [get]
func (c *MessageController) GetThread(ctx *gin.Context) {
	otherID, err := strconv.ParseInt(ctx.Param("memberId"), 10, 64)
	if err != nil || otherID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid member ID"))
		return
	}

	currentID, _ := middleware.MemberID(ctx)

	resp, err := c.messageService.GetThread(ctx, currentID, otherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// MarkRead handles marking a message as read
// @Summary Mark message read
// @Description Marks a message as read. Only the recipient may do this.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse "Message marked read"
// @Failure 400 {object} dto.ErrorResponse "Invalid message ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the recipient"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{id}/read [put]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	messageID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || messageID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid message ID"))
		return
	}

	requesterID, _ := middleware.MemberID(ctx)

	if err := c.messageService.MarkRead(ctx, requesterID, messageID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Message marked read"))
}

// DeleteMessage handles deleting a message from the caller's side
// @Summary Delete a message
// @Description Removes the message from the caller's side; it disappears for good once both sides delete it
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse "Message deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid message ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a participant"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{id} [delete]
func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	messageID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || messageID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid message ID"))
		return
	}

	requesterID, _ := middleware.MemberID(ctx)

	if err := c.messageService.DeleteMessage(ctx, requesterID, messageID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Message deleted"))
}
