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

// School fund errors
var (
	ErrLoanNotFound          = errors.New("school loan not found")
	ErrSchoolEntryNotFound   = errors.New("school entry not found")
	ErrUnknownLoanStatus     = errors.New("unknown loan status")
	ErrInvalidSchoolType     = errors.New("school entry type must be dépôt or remboursement")
	ErrInvalidRepaymentKind  = errors.New("invalid repayment kind")
	ErrInvalidRepaymentScope = errors.New("invalid repayment scope")
)

// SchoolService handles the school fund: loans and their repayments
type SchoolService struct {
	loanRepo  repositories.SchoolLoanRepository
	entryRepo repositories.SchoolEntryRepository
}

// NewSchoolService creates a new school fund service
func NewSchoolService(loanRepo repositories.SchoolLoanRepository, entryRepo repositories.SchoolEntryRepository) *SchoolService {
	return &SchoolService{
		loanRepo:  loanRepo,
		entryRepo: entryRepo,
	}
}

// CreateLoanInput represents a new school loan
type CreateLoanInput struct {
	MemberID          *uint     `json:"member_id"`
	Amount            float64   `json:"amount"`
	InterestRate      *float64  `json:"interest_rate"`
	RepaymentDeadline time.Time `json:"repayment_deadline"`
	SessionID         *uint     `json:"session_id"`
	Date              time.Time `json:"date"`
}

// CreateLoan records a school loan. Interest is computed once at creation:
// interest = amount × rate / 100.
func (s *SchoolService) CreateLoan(ctx context.Context, input *CreateLoanInput) (*models.SchoolLoan, error) {
	if !domain.IsValidAmount(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	rate := domain.DefaultInterestRate
	if input.InterestRate != nil {
		if !domain.IsValidRate(*input.InterestRate) {
			return nil, domain.ErrInvalidRate
		}
		rate = *input.InterestRate
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	loan := &models.SchoolLoan{
		MemberID:          input.MemberID,
		Amount:            input.Amount,
		InterestRate:      rate,
		InterestValue:     domain.LoanInterest(input.Amount, rate),
		RepaymentDeadline: input.RepaymentDeadline,
		Status:            domain.LoanEnCours,
		SessionID:         input.SessionID,
		Date:              input.Date,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("✅ School loan recorded: %.2f at %.2f%% (due %.2f)",
		loan.Amount, loan.InterestRate, domain.LoanTotalDue(loan.Amount, loan.InterestRate))
	return loan, nil
}

// GetLoan gets one school loan
func (s *SchoolService) GetLoan(ctx context.Context, id uint) (*models.SchoolLoan, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return loan, nil
}

// ListLoans lists school loans with pagination, optionally filtered by year
func (s *SchoolService) ListLoans(ctx context.Context, offset, limit, year int) ([]*models.SchoolLoan, int64, error) {
	return s.loanRepo.List(ctx, offset, limit, year)
}

// SetLoanStatus toggles a loan between en_cours and rembourse.
// Setting the current status again is a no-op. Statuses outside the
// closed set are rejected. Repayment entries never flip this flag:
// the treasurer signs off manually.
func (s *SchoolService) SetLoanStatus(ctx context.Context, id uint, status string) (*models.SchoolLoan, error) {
	if !domain.IsValidLoanStatus(status) {
		return nil, ErrUnknownLoanStatus
	}

	loan, err := s.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	if loan.Status == status {
		return loan, nil
	}

	loan.Status = status
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("✅ School loan %d marked %s", loan.ID, status)
	return loan, nil
}

// DeleteLoan soft deletes a school loan
func (s *SchoolService) DeleteLoan(ctx context.Context, id uint) error {
	if _, err := s.GetLoan(ctx, id); err != nil {
		return err
	}
	return s.loanRepo.Delete(ctx, id)
}

// LoanRepayments returns the repayments recorded against a loan and their sum
func (s *SchoolService) LoanRepayments(ctx context.Context, loanID uint) ([]*models.SchoolEntry, float64, error) {
	if _, err := s.GetLoan(ctx, loanID); err != nil {
		return nil, 0, err
	}

	entries, err := s.entryRepo.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, 0, err
	}

	amounts := make([]float64, len(entries))
	for i, e := range entries {
		amounts[i] = e.Amount
	}
	return entries, domain.Sum(amounts), nil
}

// CreateSchoolEntryInput represents a school fund entry (dépôt or remboursement)
type CreateSchoolEntryInput struct {
	Type           string    `json:"type"`
	Amount         float64   `json:"amount"`
	MemberID       *uint     `json:"member_id"`
	SessionID      *uint     `json:"session_id"`
	RepaymentKind  string    `json:"repayment_kind"`
	RepaymentScope string    `json:"repayment_scope"`
	LoanID         *uint     `json:"loan_id"`
	Date           time.Time `json:"date"`
}

// CreateEntry records a school fund entry
func (s *SchoolService) CreateEntry(ctx context.Context, input *CreateSchoolEntryInput) (*models.SchoolEntry, error) {
	if input.Type != domain.TypeDepot && input.Type != domain.TypeRemboursement {
		return nil, ErrInvalidSchoolType
	}
	if !domain.IsValidAmount(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	if input.Type == domain.TypeRemboursement {
		if input.RepaymentKind != "" && !domain.IsValidRepaymentKind(input.RepaymentKind) {
			return nil, ErrInvalidRepaymentKind
		}
		if input.RepaymentScope != "" && !domain.IsValidRepaymentScope(input.RepaymentScope) {
			return nil, ErrInvalidRepaymentScope
		}
		// A repayment may point at a loan that was since deleted.
		// The reference stays loose and renders as N/A downstream.
	} else {
		input.RepaymentKind = ""
		input.RepaymentScope = ""
		input.LoanID = nil
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	entry := &models.SchoolEntry{
		Type:           input.Type,
		Amount:         input.Amount,
		MemberID:       input.MemberID,
		SessionID:      input.SessionID,
		RepaymentKind:  input.RepaymentKind,
		RepaymentScope: input.RepaymentScope,
		LoanID:         input.LoanID,
		Date:           input.Date,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	log.Printf("✅ School entry recorded: %s %.2f", entry.Type, entry.Amount)
	return entry, nil
}

// GetEntry gets one school entry
func (s *SchoolService) GetEntry(ctx context.Context, id uint) (*models.SchoolEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries lists school entries with pagination, optionally filtered by year
func (s *SchoolService) ListEntries(ctx context.Context, offset, limit, year int) ([]*models.SchoolEntry, int64, error) {
	return s.entryRepo.List(ctx, offset, limit, year)
}

// DeleteEntry soft deletes a school entry
func (s *SchoolService) DeleteEntry(ctx context.Context, id uint) error {
	if _, err := s.GetEntry(ctx, id); err != nil {
		return err
	}
	return s.entryRepo.Delete(ctx, id)
}

// SchoolSummary represents the school fund state, recomputed in full
type SchoolSummary struct {
	TotalEntries     float64 `json:"total_entries"`
	TotalLoaned      float64 `json:"total_loaned"`
	Balance          float64 `json:"balance"`
	LoanCount        int     `json:"loan_count"`
	RunningLoans     int     `json:"running_loans"`
	RepaidLoans      int     `json:"repaid_loans"`
	ExpectedInterest float64 `json:"expected_interest"`
}

// Summary recomputes the school fund balance from the full collections:
// Σ(school entries) − Σ(loan principal paid out).
func (s *SchoolService) Summary(ctx context.Context) (*SchoolSummary, error) {
	entries, err := s.entryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entryAmounts := make([]float64, len(entries))
	for i, e := range entries {
		entryAmounts[i] = e.Amount
	}

	loanAmounts := make([]float64, len(loans))
	interests := make([]float64, len(loans))
	summary := &SchoolSummary{LoanCount: len(loans)}
	for i, l := range loans {
		loanAmounts[i] = l.Amount
		interests[i] = l.InterestValue
		switch l.Status {
		case domain.LoanEnCours:
			summary.RunningLoans++
		case domain.LoanRembourse:
			summary.RepaidLoans++
		}
	}

	summary.TotalEntries = domain.Sum(entryAmounts)
	summary.TotalLoaned = domain.Sum(loanAmounts)
	summary.Balance = domain.Balance(entryAmounts, loanAmounts)
	summary.ExpectedInterest = domain.Sum(interests)
	return summary, nil
}
