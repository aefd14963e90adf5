package handlers

import (
	"errors"

	"assofi/internal/core/services"
	"assofi/internal/pkg/pagination"
	"assofi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles session and attendance endpoints
type SessionHandler struct {
	sessionService *services.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles session creation
// @Summary Create session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SessionInput true "Session data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var input services.SessionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	session, err := h.sessionService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionDateMissing):
			return response.BadRequest(c, "Session date is required")
		case errors.Is(err, services.ErrInvalidSessionType):
			return response.BadRequest(c, "Invalid session type")
		default:
			return response.InternalServerError(c, "Failed to create session")
		}
	}

	return response.Created(c, "Session created successfully", session)
}

// Get handles fetching one session
// @Summary Get session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid session ID")
	}

	session, err := h.sessionService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return response.NotFound(c, "Session not found")
		}
		return response.InternalServerError(c, "Failed to get session")
	}

	return response.Success(c, "Session retrieved successfully", session)
}

// List handles listing sessions
// @Summary List sessions
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /sessions [get]
func (h *SessionHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	sessions, total, err := h.sessionService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list sessions")
	}

	return response.Success(c, "Sessions retrieved successfully",
		pagination.NewResponse(sessions, params, total))
}

// Update handles session update
// @Summary Update session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param body body services.SessionInput true "Session data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sessions/{id} [put]
func (h *SessionHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid session ID")
	}

	var input services.SessionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	session, err := h.sessionService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			return response.NotFound(c, "Session not found")
		case errors.Is(err, services.ErrSessionDateMissing):
			return response.BadRequest(c, "Session date is required")
		case errors.Is(err, services.ErrInvalidSessionType):
			return response.BadRequest(c, "Invalid session type")
		default:
			return response.InternalServerError(c, "Failed to update session")
		}
	}

	return response.Success(c, "Session updated successfully", session)
}

// Delete handles session deletion
// @Summary Delete session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid session ID")
	}

	if err := h.sessionService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return response.NotFound(c, "Session not found")
		}
		return response.InternalServerError(c, "Failed to delete session")
	}

	return response.Success(c, "Session deleted successfully", nil)
}

// SetAttendanceRequest represents an attendance roster submission
type SetAttendanceRequest struct {
	Lines []services.AttendanceLine `json:"lines"`
}

// SetAttendance handles attendance recording
// @Summary Record attendance
// @Description Upsert the attendance roster of a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param body body SetAttendanceRequest true "Roster lines"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sessions/{id}/attendance [put]
func (h *SessionHandler) SetAttendance(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid session ID")
	}

	var req SetAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(req.Lines) == 0 {
		return response.BadRequest(c, "At least one roster line is required")
	}

	if err := h.sessionService.SetAttendance(c.Context(), id, req.Lines); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return response.NotFound(c, "Session not found")
		}
		return response.InternalServerError(c, "Failed to record attendance")
	}

	return response.Success(c, "Attendance recorded successfully", nil)
}

// GetRoster handles fetching a session roster
// @Summary Get session roster
// @Description Get the attendance roster with present count and rate
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sessions/{id}/attendance [get]
func (h *SessionHandler) GetRoster(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid session ID")
	}

	roster, err := h.sessionService.GetRoster(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return response.NotFound(c, "Session not found")
		}
		return response.InternalServerError(c, "Failed to get roster")
	}

	return response.Success(c, "Roster retrieved successfully", roster)
}
