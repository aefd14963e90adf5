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

// TontineHandler handles tontine endpoints
type TontineHandler struct {
	tontineService *services.TontineService
}

// NewTontineHandler creates a new tontine handler
func NewTontineHandler(tontineService *services.TontineService) *TontineHandler {
	return &TontineHandler{tontineService: tontineService}
}

// Create handles tontine payout creation
// @Summary Create tontine payout
// @Description Record a tontine payout. The flat maintenance fee is posted to the general fund.
// @Tags Tontines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateTontineInput true "Tontine data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /tontines [post]
func (h *TontineHandler) Create(c *fiber.Ctx) error {
	var input services.CreateTontineInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tontine, err := h.tontineService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidListNumber):
			return response.BadRequest(c, "List number must be between 1 and 3")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Individual amount must be a positive number")
		case errors.Is(err, services.ErrInvalidParticipants):
			return response.BadRequest(c, "Participant count must be positive")
		default:
			return response.InternalServerError(c, "Failed to create tontine record")
		}
	}

	return response.Created(c, "Tontine recorded successfully", tontine.ToResponse())
}

// Get handles fetching one tontine record
// @Summary Get tontine record
// @Tags Tontines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tontine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tontines/{id} [get]
func (h *TontineHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid tontine ID")
	}

	tontine, err := h.tontineService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTontineNotFound) {
			return response.NotFound(c, "Tontine record not found")
		}
		return response.InternalServerError(c, "Failed to get tontine record")
	}

	return response.Success(c, "Tontine retrieved successfully", tontine.ToResponse())
}

// List handles listing tontine records
// @Summary List tontine records
// @Tags Tontines
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /tontines [get]
func (h *TontineHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	tontines, total, err := h.tontineService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list tontine records")
	}

	items := make([]*models.TontineResponse, len(tontines))
	for i, t := range tontines {
		items[i] = t.ToResponse()
	}

	return response.Success(c, "Tontines retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// Delete handles tontine record deletion
// @Summary Delete tontine record
// @Description Remove a tontine record and its posted maintenance fee entry
// @Tags Tontines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tontine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tontines/{id} [delete]
func (h *TontineHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid tontine ID")
	}

	if err := h.tontineService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrTontineNotFound) {
			return response.NotFound(c, "Tontine record not found")
		}
		return response.InternalServerError(c, "Failed to delete tontine record")
	}

	return response.Success(c, "Tontine deleted successfully", nil)
}

// Summary handles the tontine summary
// @Summary Tontine summary
// @Tags Tontines
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /tontines/summary [get]
func (h *TontineHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.tontineService.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute summary")
	}

	return response.Success(c, "Summary computed successfully", summary)
}
