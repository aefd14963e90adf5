package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/core/domain"
)

func TestSessionCreateDefaultsToOrdinaire(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(&stubSessionRepo{})

	session, err := svc.Create(ctx, &SessionInput{Date: time.Now()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if session.Type != domain.SessionOrdinaire {
		t.Errorf("Type = %q, want %q", session.Type, domain.SessionOrdinaire)
	}
}

func TestSessionCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(&stubSessionRepo{})

	if _, err := svc.Create(ctx, &SessionInput{}); !errors.Is(err, ErrSessionDateMissing) {
		t.Errorf("Create(no date) error = %v, want ErrSessionDateMissing", err)
	}
	if _, err := svc.Create(ctx, &SessionInput{Date: time.Now(), Type: "festive"}); !errors.Is(err, ErrInvalidSessionType) {
		t.Errorf("Create(festive) error = %v, want ErrInvalidSessionType", err)
	}
}

func TestSessionAttendanceUpsert(t *testing.T) {
	ctx := context.Background()
	repo := &stubSessionRepo{}
	svc := NewSessionService(repo)

	session, err := svc.Create(ctx, &SessionInput{Date: time.Now()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.SetAttendance(ctx, session.ID, []AttendanceLine{
		{MemberID: 1, Present: true},
		{MemberID: 2, Present: false},
	})
	if err != nil {
		t.Fatalf("SetAttendance: %v", err)
	}

	// Re-recording the same member updates instead of duplicating
	err = svc.SetAttendance(ctx, session.ID, []AttendanceLine{
		{MemberID: 2, Present: true},
	})
	if err != nil {
		t.Fatalf("SetAttendance (update): %v", err)
	}

	roster, err := svc.GetRoster(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetRoster: %v", err)
	}
	if roster.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", roster.TotalCount)
	}
	if roster.PresentCount != 2 {
		t.Errorf("PresentCount = %d, want 2", roster.PresentCount)
	}
	if roster.Rate != 100 {
		t.Errorf("Rate = %v, want 100", roster.Rate)
	}
}

func TestSessionRosterRendersMissingMemberAsNA(t *testing.T) {
	ctx := context.Background()
	repo := &stubSessionRepo{}
	svc := NewSessionService(repo)

	session, err := svc.Create(ctx, &SessionInput{Date: time.Now()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A roster line whose member was deleted keeps its ID but has no relation
	repo.attendance = append(repo.attendance, &models.Attendance{
		SessionID: session.ID,
		MemberID:  42,
		Present:   true,
	})

	roster, err := svc.GetRoster(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetRoster: %v", err)
	}
	if len(roster.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(roster.Lines))
	}
	if roster.Lines[0].MemberName != domain.UnknownMemberLabel {
		t.Errorf("MemberName = %q, want %q", roster.Lines[0].MemberName, domain.UnknownMemberLabel)
	}
}

func TestSessionNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(&stubSessionRepo{})

	if _, err := svc.Get(ctx, 7); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(7) error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.GetRoster(ctx, 7); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetRoster(7) error = %v, want ErrSessionNotFound", err)
	}
}
