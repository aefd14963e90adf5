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

// DonationHandler handles donation endpoints
type DonationHandler struct {
	donationService *services.DonationService
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationService *services.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

// Create handles donation creation
// @Summary Record donation
// @Description Record a donation. The amount is posted to the general fund.
// @Tags Donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateDonationInput true "Donation data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var input services.CreateDonationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	donation, err := h.donationService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, services.ErrDonorNameMissing):
			return response.BadRequest(c, "Donor name is required for public donations")
		default:
			return response.InternalServerError(c, "Failed to record donation")
		}
	}

	return response.Created(c, "Donation recorded successfully", donation.ToResponse())
}

// Get handles fetching one donation
// @Summary Get donation
// @Tags Donations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donations/{id} [get]
func (h *DonationHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donation ID")
	}

	donation, err := h.donationService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDonationNotFound) {
			return response.NotFound(c, "Donation not found")
		}
		return response.InternalServerError(c, "Failed to get donation")
	}

	return response.Success(c, "Donation retrieved successfully", donation.ToResponse())
}

// List handles listing donations
// @Summary List donations
// @Tags Donations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	donations, total, err := h.donationService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list donations")
	}

	items := make([]*models.DonationResponse, len(donations))
	for i, d := range donations {
		items[i] = d.ToResponse()
	}

	return response.Success(c, "Donations retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// Delete handles donation deletion
// @Summary Delete donation
// @Description Remove a donation and its posted general fund entry
// @Tags Donations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donations/{id} [delete]
func (h *DonationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donation ID")
	}

	if err := h.donationService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrDonationNotFound) {
			return response.NotFound(c, "Donation not found")
		}
		return response.InternalServerError(c, "Failed to delete donation")
	}

	return response.Success(c, "Donation deleted successfully", nil)
}

// Summary handles the donation summary
// @Summary Donation summary
// @Tags Donations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /donations/summary [get]
func (h *DonationHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.donationService.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute summary")
	}

	return response.Success(c, "Summary computed successfully", summary)
}
