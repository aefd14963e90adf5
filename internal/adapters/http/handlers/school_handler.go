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

// SchoolHandler handles school fund endpoints: loans and entries
type SchoolHandler struct {
	schoolService *services.SchoolService
}

// NewSchoolHandler creates a new school fund handler
func NewSchoolHandler(schoolService *services.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

// CreateLoan handles loan creation
// @Summary Create school loan
// @Description Record a school loan. Interest defaults to 10% and is computed at creation.
// @Tags School
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateLoanInput true "Loan data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /school/loans [post]
func (h *SchoolHandler) CreateLoan(c *fiber.Ctx) error {
	var input services.CreateLoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loan, err := h.schoolService.CreateLoan(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, domain.ErrInvalidRate):
			return response.BadRequest(c, "Interest rate must not be negative")
		default:
			return response.InternalServerError(c, "Failed to create loan")
		}
	}

	return response.Created(c, "Loan created successfully", loan.ToResponse())
}

// GetLoan handles fetching one loan with its repayments
// @Summary Get school loan
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /school/loans/{id} [get]
func (h *SchoolHandler) GetLoan(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.schoolService.GetLoan(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrLoanNotFound) {
			return response.NotFound(c, "Loan not found")
		}
		return response.InternalServerError(c, "Failed to get loan")
	}

	repayments, repaid, err := h.schoolService.LoanRepayments(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Failed to get loan repayments")
	}

	resp := loan.ToResponse()
	resp.RepaidTotal = repaid

	items := make([]*models.SchoolEntryResponse, len(repayments))
	for i, r := range repayments {
		items[i] = r.ToResponse()
	}

	return response.Success(c, "Loan retrieved successfully", fiber.Map{
		"loan":       resp,
		"repayments": items,
	})
}

// ListLoans handles listing loans
// @Summary List school loans
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Param year query int false "Filter by year"
// @Success 200 {object} response.Response
// @Router /school/loans [get]
func (h *SchoolHandler) ListLoans(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	year, _ := strconv.Atoi(c.Query("year", "0"))

	loans, total, err := h.schoolService.ListLoans(c.Context(), params.Offset, params.Limit, year)
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	items := make([]*models.SchoolLoanResponse, len(loans))
	for i, l := range loans {
		items[i] = l.ToResponse()
	}

	return response.Success(c, "Loans retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// SetLoanStatusRequest represents a loan status change
type SetLoanStatusRequest struct {
	Status string `json:"status"`
}

// SetLoanStatus handles the manual loan status toggle
// @Summary Set loan status
// @Description Toggle a loan between en_cours and rembourse. The flip is always manual.
// @Tags School
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param body body SetLoanStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /school/loans/{id}/status [patch]
func (h *SchoolHandler) SetLoanStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	var req SetLoanStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loan, err := h.schoolService.SetLoanStatus(c.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.Is(err, services.ErrUnknownLoanStatus):
			return response.BadRequest(c, "Status must be en_cours or rembourse")
		default:
			return response.InternalServerError(c, "Failed to update loan status")
		}
	}

	return response.Success(c, "Loan status updated successfully", loan.ToResponse())
}

// DeleteLoan handles loan deletion
// @Summary Delete school loan
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /school/loans/{id} [delete]
func (h *SchoolHandler) DeleteLoan(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	if err := h.schoolService.DeleteLoan(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrLoanNotFound) {
			return response.NotFound(c, "Loan not found")
		}
		return response.InternalServerError(c, "Failed to delete loan")
	}

	return response.Success(c, "Loan deleted successfully", nil)
}

// CreateEntry handles school entry creation
// @Summary Create school entry
// @Description Record a school fund dépôt or remboursement
// @Tags School
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateSchoolEntryInput true "Entry data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /school/entries [post]
func (h *SchoolHandler) CreateEntry(c *fiber.Ctx) error {
	var input services.CreateSchoolEntryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	entry, err := h.schoolService.CreateEntry(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSchoolType):
			return response.BadRequest(c, "Type must be dépôt or remboursement")
		case errors.Is(err, domain.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be a positive number")
		case errors.Is(err, services.ErrInvalidRepaymentKind):
			return response.BadRequest(c, "Invalid repayment kind")
		case errors.Is(err, services.ErrInvalidRepaymentScope):
			return response.BadRequest(c, "Invalid repayment scope")
		default:
			return response.InternalServerError(c, "Failed to create school entry")
		}
	}

	return response.Created(c, "School entry created successfully", entry.ToResponse())
}

// ListEntries handles listing school entries
// @Summary List school entries
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Param year query int false "Filter by year"
// @Success 200 {object} response.Response
// @Router /school/entries [get]
func (h *SchoolHandler) ListEntries(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	year, _ := strconv.Atoi(c.Query("year", "0"))

	entries, total, err := h.schoolService.ListEntries(c.Context(), params.Offset, params.Limit, year)
	if err != nil {
		return response.InternalServerError(c, "Failed to list school entries")
	}

	items := make([]*models.SchoolEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = e.ToResponse()
	}

	return response.Success(c, "School entries retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// DeleteEntry handles school entry deletion
// @Summary Delete school entry
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /school/entries/{id} [delete]
func (h *SchoolHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid entry ID")
	}

	if err := h.schoolService.DeleteEntry(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrSchoolEntryNotFound) {
			return response.NotFound(c, "School entry not found")
		}
		return response.InternalServerError(c, "Failed to delete school entry")
	}

	return response.Success(c, "School entry deleted successfully", nil)
}

// Summary handles the school fund summary
// @Summary School fund summary
// @Description Recompute the school fund balance from the full collections
// @Tags School
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /school/summary [get]
func (h *SchoolHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.schoolService.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute summary")
	}

	return response.Success(c, "Summary computed successfully", summary)
}
