package services

import (
	"context"
	"errors"
	"log"
	"time"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/adapters/persistence/repositories"
	"assofi/internal/core/domain"

	"gorm.io/gorm"
)

// Session errors
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrSessionDateMissing = errors.New("session date is required")
)

// SessionService handles sessions and their attendance rosters
type SessionService struct {
	sessionRepo repositories.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo repositories.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

// SessionInput represents session data for create and update
type SessionInput struct {
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Agenda   string    `json:"agenda"`
	Location string    `json:"location"`
}

func (in *SessionInput) validate() error {
	if in.Date.IsZero() {
		return ErrSessionDateMissing
	}
	if in.Type == "" {
		in.Type = domain.SessionOrdinaire
	}
	if !domain.IsValidSessionType(in.Type) {
		return ErrInvalidSessionType
	}
	return nil
}

// Create creates a new session
func (s *SessionService) Create(ctx context.Context, input *SessionInput) (*models.Session, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	session := &models.Session{
		Date:     input.Date,
		Type:     input.Type,
		Agenda:   input.Agenda,
		Location: input.Location,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("✅ Session created: %s (%s)", session.Date.Format("2006-01-02"), session.Type)
	return session, nil
}

// Get gets one session with its roster
func (s *SessionService) Get(ctx context.Context, id uint) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// List lists sessions with pagination
func (s *SessionService) List(ctx context.Context, offset, limit int) ([]*models.Session, int64, error) {
	return s.sessionRepo.List(ctx, offset, limit)
}

// Update updates a session
func (s *SessionService) Update(ctx context.Context, id uint, input *SessionInput) (*models.Session, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Date = input.Date
	session.Type = input.Type
	session.Agenda = input.Agenda
	session.Location = input.Location

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete soft deletes a session
func (s *SessionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, id)
}

// AttendanceLine is one roster entry to record
type AttendanceLine struct {
	MemberID uint `json:"member_id"`
	Present  bool `json:"present"`
}

// SetAttendance upserts the roster of a session
func (s *SessionService) SetAttendance(ctx context.Context, sessionID uint, lines []AttendanceLine) error {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return err
	}

	for _, line := range lines {
		att := &models.Attendance{
			SessionID: sessionID,
			MemberID:  line.MemberID,
			Present:   line.Present,
		}
		if err := s.sessionRepo.UpsertAttendance(ctx, att); err != nil {
			return err
		}
	}

	log.Printf("✅ Attendance recorded for session %d (%d lines)", sessionID, len(lines))
	return nil
}

// RosterLine is one roster entry for display
type RosterLine struct {
	MemberID   uint   `json:"member_id"`
	MemberName string `json:"member_name"`
	Present    bool   `json:"present"`
}

// Roster represents a session roster with derived counts
type Roster struct {
	SessionID    uint         `json:"session_id"`
	Lines        []RosterLine `json:"lines"`
	PresentCount int          `json:"present_count"`
	TotalCount   int          `json:"total_count"`
	Rate         float64      `json:"rate"`
}

// GetRoster returns the roster of a session with present count and rate
func (s *SessionService) GetRoster(ctx context.Context, sessionID uint) (*Roster, error) {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return nil, err
	}

	attendance, err := s.sessionRepo.ListAttendance(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	roster := &Roster{
		SessionID:  sessionID,
		Lines:      make([]RosterLine, len(attendance)),
		TotalCount: len(attendance),
	}
	for i, a := range attendance {
		roster.Lines[i] = RosterLine{
			MemberID:   a.MemberID,
			MemberName: models.MemberLabel(a.Member),
			Present:    a.Present,
		}
		if a.Present {
			roster.PresentCount++
		}
	}
	if roster.TotalCount > 0 {
		roster.Rate = float64(roster.PresentCount) / float64(roster.TotalCount) * 100
	}

	return roster, nil
}
