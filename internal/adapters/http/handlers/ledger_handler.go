package handlers

import (
	"errors"
	"strconv"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/core/domain"
	"assofi/internal/core/services"
	"assofi/internal/pkg/pagination"
	"assofi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LedgerHandler handles general fund entry and exit endpoints
type LedgerHandler struct {
	ledgerService *services.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// ledgerError maps ledger service errors to HTTP responses
func ledgerError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnknownTransactionType):
		return response.BadRequest(c, "Unknown transaction type")
	case errors.Is(err, services.ErrNotAnEntryType):
		return response.BadRequest(c, "Transaction type is not a general fund entry")
	case errors.Is(err, services.ErrNotAnExitType):
		return response.BadRequest(c, "Transaction type is not a general fund exit")
	case errors.Is(err, domain.ErrInvalidAmount):
		return response.BadRequest(c, "Amount must be a positive number")
	case errors.Is(err, domain.ErrInvalidPaymentMode):
		return response.BadRequest(c, "Invalid payment mode")
	case errors.Is(err, services.ErrEntryNotFound):
		return response.NotFound(c, "Entry not found")
	case errors.Is(err, services.ErrExitNotFound):
		return response.NotFound(c, "Exit not found")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// CreateEntry handles entry creation
// @Summary Create entry
// @Description Record a general fund entry
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MovementInput true "Entry data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /entries [post]
func (h *LedgerHandler) CreateEntry(c *fiber.Ctx) error {
	var input services.MovementInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	entry, err := h.ledgerService.CreateEntry(c.Context(), &input)
	if err != nil {
		return ledgerError(c, err, "Failed to create entry")
	}

	return response.Created(c, "Entry created successfully", entry.ToResponse())
}

// GetEntry handles fetching one entry
// @Summary Get entry
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /entries/{id} [get]
func (h *LedgerHandler) GetEntry(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid entry ID")
	}

	entry, err := h.ledgerService.GetEntry(c.Context(), id)
	if err != nil {
		return ledgerError(c, err, "Failed to get entry")
	}

	return response.Success(c, "Entry retrieved successfully", entry.ToResponse())
}

// ListEntries handles listing entries
// @Summary List entries
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Param year query int false "Filter by year"
// @Success 200 {object} response.Response
// @Router /entries [get]
func (h *LedgerHandler) ListEntries(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	year, _ := strconv.Atoi(c.Query("year", "0"))

	entries, total, err := h.ledgerService.ListEntries(c.Context(), params.Offset, params.Limit, year)
	if err != nil {
		return response.InternalServerError(c, "Failed to list entries")
	}

	items := make([]*models.EntryResponse, len(entries))
	for i, e := range entries {
		items[i] = e.ToResponse()
	}

	return response.Success(c, "Entries retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// UpdateEntry handles entry update
// @Summary Update entry
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param body body services.MovementInput true "Entry data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /entries/{id} [put]
func (h *LedgerHandler) UpdateEntry(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid entry ID")
	}

	var input services.MovementInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	entry, err := h.ledgerService.UpdateEntry(c.Context(), id, &input)
	if err != nil {
		return ledgerError(c, err, "Failed to update entry")
	}

	return response.Success(c, "Entry updated successfully", entry.ToResponse())
}

// DeleteEntry handles entry deletion
// @Summary Delete entry
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /entries/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid entry ID")
	}

	if err := h.ledgerService.DeleteEntry(c.Context(), id); err != nil {
		return ledgerError(c, err, "Failed to delete entry")
	}

	return response.Success(c, "Entry deleted successfully", nil)
}

// CreateExit handles exit creation
// @Summary Create exit
// @Description Record a general fund exit
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MovementInput true "Exit data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /exits [post]
func (h *LedgerHandler) CreateExit(c *fiber.Ctx) error {
	var input services.MovementInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	exit, err := h.ledgerService.CreateExit(c.Context(), &input)
	if err != nil {
		return ledgerError(c, err, "Failed to create exit")
	}

	return response.Created(c, "Exit created successfully", exit.ToResponse())
}

// GetExit handles fetching one exit
// @Summary Get exit
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exit ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /exits/{id} [get]
func (h *LedgerHandler) GetExit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid exit ID")
	}

	exit, err := h.ledgerService.GetExit(c.Context(), id)
	if err != nil {
		return ledgerError(c, err, "Failed to get exit")
	}

	return response.Success(c, "Exit retrieved successfully", exit.ToResponse())
}

// ListExits handles listing exits
// @Summary List exits
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Param year query int false "Filter by year"
// @Success 200 {object} response.Response
// @Router /exits [get]
func (h *LedgerHandler) ListExits(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	year, _ := strconv.Atoi(c.Query("year", "0"))

	exits, total, err := h.ledgerService.ListExits(c.Context(), params.Offset, params.Limit, year)
	if err != nil {
		return response.InternalServerError(c, "Failed to list exits")
	}

	items := make([]*models.ExitResponse, len(exits))
	for i, e := range exits {
		items[i] = e.ToResponse()
	}

	return response.Success(c, "Exits retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// UpdateExit handles exit update
// @Summary Update exit
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exit ID"
// @Param body body services.MovementInput true "Exit data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /exits/{id} [put]
func (h *LedgerHandler) UpdateExit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid exit ID")
	}

	var input services.MovementInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	exit, err := h.ledgerService.UpdateExit(c.Context(), id, &input)
	if err != nil {
		return ledgerError(c, err, "Failed to update exit")
	}

	return response.Success(c, "Exit updated successfully", exit.ToResponse())
}

// DeleteExit handles exit deletion
// @Summary Delete exit
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exit ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /exits/{id} [delete]
func (h *LedgerHandler) DeleteExit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid exit ID")
	}

	if err := h.ledgerService.DeleteExit(c.Context(), id); err != nil {
		return ledgerError(c, err, "Failed to delete exit")
	}

	return response.Success(c, "Exit deleted successfully", nil)
}

// Summary handles the general fund summary
// @Summary General fund summary
// @Description Recompute the general fund balance from the full collections
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param year query int false "Filter by year"
// @Success 200 {object} response.Response
// @Router /ledger/summary [get]
func (h *LedgerHandler) Summary(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.Query("year", "0"))

	summary, err := h.ledgerService.Summary(c.Context(), year)
	if err != nil {
		return response.InternalServerError(c, "Failed to compute summary")
	}

	return response.Success(c, "Summary computed successfully", summary)
}
