package services

import (
	"context"
	"log"
	"time"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderSchedule fires every morning at 08:30
const ReminderSchedule = "30 8 * * *"

// ReminderService runs the daily reminder sweep: overdue school loans
// and sessions planned for tomorrow.
type ReminderService struct {
	loanRepo    repositories.SchoolLoanRepository
	sessionRepo repositories.SessionRepository
	cron        *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(
	loanRepo repositories.SchoolLoanRepository,
	sessionRepo repositories.SessionRepository,
) *ReminderService {
	return &ReminderService{
		loanRepo:    loanRepo,
		sessionRepo: sessionRepo,
		cron:        cron.New(),
	}
}

// Start schedules the daily sweep
func (s *ReminderService) Start() error {
	_, err := s.cron.AddFunc(ReminderSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		s.Run(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("🚀 Reminder service started (schedule: %s)", ReminderSchedule)
	return nil
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Reminder service stopped")
}

// Run performs one reminder sweep immediately
func (s *ReminderService) Run(ctx context.Context) {
	s.remindOverdueLoans(ctx)
	s.remindUpcomingSessions(ctx)
}

// OverdueLoans returns running loans whose repayment deadline has passed
func (s *ReminderService) OverdueLoans(ctx context.Context) ([]*models.SchoolLoan, error) {
	return s.loanRepo.ListOverdue(ctx, time.Now())
}

// UpcomingSessions returns sessions planned for tomorrow
func (s *ReminderService) UpcomingSessions(ctx context.Context) ([]*models.Session, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)
	return s.sessionRepo.ListBetween(ctx, start, end)
}

func (s *ReminderService) remindOverdueLoans(ctx context.Context) {
	loans, err := s.OverdueLoans(ctx)
	if err != nil {
		log.Printf("❌ Overdue loan sweep failed: %v", err)
		return
	}

	for _, loan := range loans {
		log.Printf("⚠️ Loan %d overdue since %s: %s owes %.2f",
			loan.ID,
			loan.RepaymentDeadline.Format("2006-01-02"),
			models.MemberLabel(loan.Member),
			loan.Amount+loan.InterestValue,
		)
	}
	if len(loans) > 0 {
		log.Printf("✅ Overdue loan sweep done: %d loan(s) flagged", len(loans))
	}
}

func (s *ReminderService) remindUpcomingSessions(ctx context.Context) {
	sessions, err := s.UpcomingSessions(ctx)
	if err != nil {
		log.Printf("❌ Session reminder sweep failed: %v", err)
		return
	}

	for _, session := range sessions {
		log.Printf("📅 Session tomorrow: %s (%s) at %s",
			session.Date.Format("2006-01-02"), session.Type, session.Location)
	}
}
