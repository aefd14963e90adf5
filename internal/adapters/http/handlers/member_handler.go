package handlers

import (
	"errors"
	"strconv"
	"strings"

	"assofi/internal/core/services"
	"assofi/internal/pkg/pagination"
	"assofi/internal/pkg/photostore"
	"assofi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Create handles member creation
// @Summary Create member
// @Description Register a new association member
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MemberInput true "Member data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var input services.MemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	member, err := h.memberService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired):
			return response.BadRequest(c, "First and last name are required")
		case errors.Is(err, services.ErrInvalidMemberStatus):
			return response.BadRequest(c, "Invalid member status")
		case errors.Is(err, services.ErrInvalidMemberRole):
			return response.BadRequest(c, "Invalid member role")
		default:
			return response.InternalServerError(c, "Failed to create member")
		}
	}

	return response.Created(c, "Member created successfully", member)
}

// Get handles fetching one member
// @Summary Get member
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get member")
	}

	return response.Success(c, "Member retrieved successfully", member)
}

// List handles listing members
// @Summary List members
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	members, total, err := h.memberService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully",
		pagination.NewResponse(members, params, total))
}

// Search handles member search
// @Summary Search members
// @Description Search members by name or phone
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Success 200 {object} response.Response
// @Router /members/search [get]
func (h *MemberHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return response.BadRequest(c, "Search query is required")
	}

	members, err := h.memberService.Search(c.Context(), query, pagination.DefaultLimit)
	if err != nil {
		return response.InternalServerError(c, "Failed to search members")
	}

	return response.Success(c, "Members retrieved successfully", members)
}

// Update handles member update
// @Summary Update member
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body services.MemberInput true "Member data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	var input services.MemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrNameRequired):
			return response.BadRequest(c, "First and last name are required")
		case errors.Is(err, services.ErrInvalidMemberStatus):
			return response.BadRequest(c, "Invalid member status")
		case errors.Is(err, services.ErrInvalidMemberRole):
			return response.BadRequest(c, "Invalid member role")
		default:
			return response.InternalServerError(c, "Failed to update member")
		}
	}

	return response.Success(c, "Member updated successfully", member)
}

// SetStatusRequest represents a member status change
type SetStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles member status change
// @Summary Set member status
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body SetStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /members/{id}/status [patch]
func (h *MemberHandler) SetStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	var req SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.SetStatus(c.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrInvalidMemberStatus):
			return response.BadRequest(c, "Invalid member status")
		default:
			return response.InternalServerError(c, "Failed to update member status")
		}
	}

	return response.Success(c, "Member status updated successfully", member)
}

// Delete handles member deletion
// @Summary Delete member
// @Description Soft delete a member. Records referencing it render as N/A.
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.memberService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to delete member")
	}

	return response.Success(c, "Member deleted successfully", nil)
}

// UploadPhoto handles member photo upload
// @Summary Upload member photo
// @Description Upload a member photo (images only, 5MB max)
// @Tags Members
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 413 {object} response.Response
// @Router /members/{id}/photo [post]
func (h *MemberHandler) UploadPhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "Photo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Could not read photo file")
	}
	defer file.Close()

	member, err := h.memberService.UploadPhoto(c.Context(), id, file, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, photostore.ErrNotAnImage):
			return response.BadRequest(c, "File must be an image (jpeg, png, gif or webp)")
		case errors.Is(err, photostore.ErrTooLarge):
			return response.Error(c, fiber.StatusRequestEntityTooLarge, "File exceeds the 5MB limit")
		case errors.Is(err, services.ErrPhotoStoreOffline):
			return response.Error(c, fiber.StatusServiceUnavailable, "Photo uploads are not configured")
		default:
			return response.InternalServerError(c, "Failed to upload photo")
		}
	}

	return response.Success(c, "Photo uploaded successfully", member)
}

// parseIDParam parses the :id route parameter
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
