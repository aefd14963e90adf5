package services

import (
	"context"
	"testing"
	"time"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/core/domain"
)

func TestReminderOverdueLoans(t *testing.T) {
	ctx := context.Background()
	loanRepo := &stubLoanRepo{}
	svc := NewReminderService(loanRepo, &stubSessionRepo{})

	yesterday := time.Now().AddDate(0, 0, -1)
	nextMonth := time.Now().AddDate(0, 1, 0)

	loanRepo.Create(ctx, &models.SchoolLoan{Amount: 800, Status: domain.LoanEnCours, RepaymentDeadline: yesterday})
	loanRepo.Create(ctx, &models.SchoolLoan{Amount: 300, Status: domain.LoanEnCours, RepaymentDeadline: nextMonth})
	loanRepo.Create(ctx, &models.SchoolLoan{Amount: 500, Status: domain.LoanRembourse, RepaymentDeadline: yesterday})

	overdue, err := svc.OverdueLoans(ctx)
	if err != nil {
		t.Fatalf("OverdueLoans: %v", err)
	}
	if len(overdue) != 1 {
		t.Fatalf("overdue = %d loans, want 1", len(overdue))
	}
	if overdue[0].Amount != 800 {
		t.Errorf("overdue loan amount = %v, want 800", overdue[0].Amount)
	}
}

func TestReminderUpcomingSessions(t *testing.T) {
	ctx := context.Background()
	sessionRepo := &stubSessionRepo{}
	svc := NewReminderService(&stubLoanRepo{}, sessionRepo)

	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	sessionRepo.Create(ctx, &models.Session{Date: tomorrow, Type: domain.SessionOrdinaire})
	sessionRepo.Create(ctx, &models.Session{Date: now.AddDate(0, 0, 5), Type: domain.SessionOrdinaire})
	sessionRepo.Create(ctx, &models.Session{Date: now.AddDate(0, 0, -1), Type: domain.SessionOrdinaire})

	upcoming, err := svc.UpcomingSessions(ctx)
	if err != nil {
		t.Fatalf("UpcomingSessions: %v", err)
	}
	if len(upcoming) != 1 {
		t.Fatalf("upcoming = %d sessions, want 1", len(upcoming))
	}
}
