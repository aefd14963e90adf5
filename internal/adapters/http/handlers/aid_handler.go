package handlers

import (
	"errors"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/core/domain"
	"assofi/internal/core/services"
	"assofi/internal/pkg/pagination"
	"assofi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AidHandler handles social aid endpoints
type AidHandler struct {
	aidService *services.AidService
}

// NewAidHandler creates a new aid handler
func NewAidHandler(aidService *services.AidService) *AidHandler {
	return &AidHandler{aidService: aidService}
}

// Create handles aid creation
// @Summary Grant social aid
// @Description Grant a social aid. The amount is posted to the general fund as an exit.
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateAidInput true "Aid data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /aids [post]
func (h *AidHandler) Create(c *fiber.Ctx) error {
	var input services.CreateAidInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	aid, err := h.aidService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAnAidType):
			return response.BadRequest(c, "Transaction type is not a social aid")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		default:
			return response.InternalServerError(c, "Failed to grant aid")
		}
	}

	return response.Created(c, "Aid granted successfully", aid.ToResponse())
}

// Get handles fetching one aid record
// @Summary Get aid record
// @Tags Aids
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aid ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /aids/{id} [get]
func (h *AidHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid aid ID")
	}

	aid, err := h.aidService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAidNotFound) {
			return response.NotFound(c, "Aid record not found")
		}
		return response.InternalServerError(c, "Failed to get aid record")
	}

	return response.Success(c, "Aid retrieved successfully", aid.ToResponse())
}

// List handles listing aid records
// @Summary List aid records
// @Tags Aids
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /aids [get]
func (h *AidHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	aids, total, err := h.aidService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list aid records")
	}

	items := make([]*models.AidResponse, len(aids))
	for i, a := range aids {
		items[i] = a.ToResponse()
	}

	return response.Success(c, "Aids retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// SetAidStatusRequest represents an aid status change
type SetAidStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles the aid status toggle
// @Summary Set aid status
// @Description Toggle an aid between accordé and recouvré. Recovery posts a general fund entry once.
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aid ID"
// @Param body body SetAidStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /aids/{id}/status [patch]
func (h *AidHandler) SetStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid aid ID")
	}

	var req SetAidStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	aid, err := h.aidService.SetStatus(c.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAidNotFound):
			return response.NotFound(c, "Aid record not found")
		case errors.Is(err, services.ErrUnknownAidStatus):
			return response.BadRequest(c, "Status must be accordé or recouvré")
		default:
			return response.InternalServerError(c, "Failed to update aid status")
		}
	}

	return response.Success(c, "Aid status updated successfully", aid.ToResponse())
}

// Delete handles aid deletion
// @Summary Delete aid record
// @Description Remove an aid and its posted ledger movements
// @Tags Aids
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aid ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /aids/{id} [delete]
func (h *AidHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid aid ID")
	}

	if err := h.aidService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrAidNotFound) {
			return response.NotFound(c, "Aid record not found")
		}
		return response.InternalServerError(c, "Failed to delete aid record")
	}

	return response.Success(c, "Aid deleted successfully", nil)
}

// Summary handles the aid summary
// @Summary Aid summary
// @Tags Aids
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /aids/summary [get]
func (h *AidHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.aidService.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute summary")
	}

	return response.Success(c, "Summary computed successfully", summary)
}
