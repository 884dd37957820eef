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

// MemberController handles member discovery, profiles and likes
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{memberService: memberService}
}

// GetMembers handles the paged discovery list
// @Summary List members
// @Description Returns a filtered, paged list of members. Gender defaults to the opposite of the caller's.
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gender query string false "Filter by gender (male or female)"
// @Param minAge query int false "Minimum age" default(18)
// @Param maxAge query int false "Maximum age" default(99)
// @Param likers query bool false "Only members who liked the caller"
// @Param likees query bool false "Only members the caller liked"
// @Param orderBy query string false "Sort key: created or lastActive" default(lastActive)
// @Param pageNumber query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size (max 50)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.MemberListResponse} "Members retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members [get]
func (c *MemberController) GetMembers(ctx *gin.Context) {
	requesterID, _ := middleware.MemberID(ctx)
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filter := models.MemberFilter{
		RequesterID: requesterID,
		Gender:      models.Gender(ctx.Query("gender")),
		OrderBy:     ctx.DefaultQuery("orderBy", models.OrderByLastActive),
		Page:        page,
		PageSize:    pageSize,
	}

	if minAge, err := strconv.Atoi(ctx.Query("minAge")); err == nil && minAge > 0 {
		filter.MinAge = minAge
	}
	if maxAge, err := strconv.Atoi(ctx.Query("maxAge")); err == nil && maxAge > 0 {
		filter.MaxAge = maxAge
	}
	filter.Likers = ctx.Query("likers") == "true"
	filter.Likees = ctx.Query("likees") == "true"

	resp, err := c.memberService.GetMembers(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetMember handles retrieving one member's profile
// @Summary Get member by ID
// @Description Returns a member's full profile including approved photos
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} dto.APIResponse{data=dto.MemberDetailResponse} "Member retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/{id} [get]
func (c *MemberController) GetMember(ctx *gin.Context) {
	memberID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || memberID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid member ID"))
		return
	}

	requesterID, _ := middleware.MemberID(ctx)

	resp, err := c.memberService.GetMember(ctx, requesterID, memberID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateProfile handles updating the caller's own profile
// @Summary Update profile
// @Description Updates the caller's editable profile fields
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateMemberRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.MemberDetailResponse} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members [put]
func (c *MemberController) UpdateProfile(ctx *gin.Context) {
	requesterID, _ := middleware.MemberID(ctx)

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.memberService.UpdateProfile(ctx, requesterID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Like handles liking another member
// @Summary Like a member
// @Description Records that the caller liked the given member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID to like"
// @Success 200 {object} dto.APIResponse "Like recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID or self-like"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 409 {object} dto.ErrorResponse "Member already liked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/{id}/like [post]
func (c *MemberController) Like(ctx *gin.Context) {
	likeeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || likeeID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid member ID"))
		return
	}

	likerID, _ := middleware.MemberID(ctx)

	if err := c.memberService.Like(ctx, likerID, likeeID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Member liked"))
}
