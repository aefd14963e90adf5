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

// Ledger errors
var (
	ErrEntryNotFound  = errors.New("entry not found")
	ErrExitNotFound   = errors.New("exit not found")
	ErrNotAnEntryType = errors.New("transaction type is not a general fund entry")
	ErrNotAnExitType  = errors.New("transaction type is not a general fund exit")
)

// LedgerService handles the general fund ledger
type LedgerService struct {
	entryRepo repositories.EntryRepository
	exitRepo  repositories.ExitRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(entryRepo repositories.EntryRepository, exitRepo repositories.ExitRepository) *LedgerService {
	return &LedgerService{
		entryRepo: entryRepo,
		exitRepo:  exitRepo,
	}
}

// MovementInput represents an entry or exit to record
type MovementInput struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	MemberID    *uint     `json:"member_id"`
	SessionID   *uint     `json:"session_id"`
	PaymentMode string    `json:"payment_mode"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// validate checks a movement against the classification table and amount rules
func (in *MovementInput) validate(want domain.Category) error {
	info, err := domain.Classify(in.Type)
	if err != nil {
		return err
	}
	if info.Fund != domain.FundGeneral || info.Category != want {
		if want == domain.CategoryEntry {
			return ErrNotAnEntryType
		}
		return ErrNotAnExitType
	}
	if !domain.IsValidAmount(in.Amount) {
		return domain.ErrInvalidAmount
	}
	if in.PaymentMode == "" {
		in.PaymentMode = domain.PaymentEspeces
	}
	if !domain.IsValidPaymentMode(in.PaymentMode) {
		return domain.ErrInvalidPaymentMode
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	return nil
}

// CreateEntry records a general fund entry
func (s *LedgerService) CreateEntry(ctx context.Context, input *MovementInput) (*models.Entry, error) {
	if err := input.validate(domain.CategoryEntry); err != nil {
		return nil, err
	}

	entry := &models.Entry{
		Type:        input.Type,
		Amount:      input.Amount,
		MemberID:    input.MemberID,
		SessionID:   input.SessionID,
		PaymentMode: input.PaymentMode,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	log.Printf("✅ Entry recorded: %s %.2f", entry.Type, entry.Amount)
	return entry, nil
}

// GetEntry gets one entry
func (s *LedgerService) GetEntry(ctx context.Context, id uint) (*models.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries lists entries with pagination, optionally filtered by year
func (s *LedgerService) ListEntries(ctx context.Context, offset, limit, year int) ([]*models.Entry, int64, error) {
	return s.entryRepo.List(ctx, offset, limit, year)
}

// UpdateEntry updates an entry after re-validating it
func (s *LedgerService) UpdateEntry(ctx context.Context, id uint, input *MovementInput) (*models.Entry, error) {
	if err := input.validate(domain.CategoryEntry); err != nil {
		return nil, err
	}

	entry, err := s.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Type = input.Type
	entry.Amount = input.Amount
	entry.MemberID = input.MemberID
	entry.SessionID = input.SessionID
	entry.PaymentMode = input.PaymentMode
	entry.Date = input.Date
	entry.Description = input.Description

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry soft deletes an entry
func (s *LedgerService) DeleteEntry(ctx context.Context, id uint) error {
	if _, err := s.GetEntry(ctx, id); err != nil {
		return err
	}
	return s.entryRepo.Delete(ctx, id)
}

// CreateExit records a general fund exit
func (s *LedgerService) CreateExit(ctx context.Context, input *MovementInput) (*models.Exit, error) {
	if err := input.validate(domain.CategoryExit); err != nil {
		return nil, err
	}

	exit := &models.Exit{
		Type:        input.Type,
		Amount:      input.Amount,
		MemberID:    input.MemberID,
		SessionID:   input.SessionID,
		PaymentMode: input.PaymentMode,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := s.exitRepo.Create(ctx, exit); err != nil {
		return nil, err
	}

	log.Printf("✅ Exit recorded: %s %.2f", exit.Type, exit.Amount)
	return exit, nil
}

// GetExit gets one exit
func (s *LedgerService) GetExit(ctx context.Context, id uint) (*models.Exit, error) {
	exit, err := s.exitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExitNotFound
		}
		return nil, err
	}
	return exit, nil
}

// ListExits lists exits with pagination, optionally filtered by year
func (s *LedgerService) ListExits(ctx context.Context, offset, limit, year int) ([]*models.Exit, int64, error) {
	return s.exitRepo.List(ctx, offset, limit, year)
}

// UpdateExit updates an exit after re-validating it
func (s *LedgerService) UpdateExit(ctx context.Context, id uint, input *MovementInput) (*models.Exit, error) {
	if err := input.validate(domain.CategoryExit); err != nil {
		return nil, err
	}

	exit, err := s.GetExit(ctx, id)
	if err != nil {
		return nil, err
	}

	exit.Type = input.Type
	exit.Amount = input.Amount
	exit.MemberID = input.MemberID
	exit.SessionID = input.SessionID
	exit.PaymentMode = input.PaymentMode
	exit.Date = input.Date
	exit.Description = input.Description

	if err := s.exitRepo.Update(ctx, exit); err != nil {
		return nil, err
	}
	return exit, nil
}

// DeleteExit soft deletes an exit
func (s *LedgerService) DeleteExit(ctx context.Context, id uint) error {
	if _, err := s.GetExit(ctx, id); err != nil {
		return err
	}
	return s.exitRepo.Delete(ctx, id)
}

// LedgerSummary represents the general fund state, recomputed in full
type LedgerSummary struct {
	Year         int                `json:"year,omitempty"`
	TotalEntries float64            `json:"total_entries"`
	TotalExits   float64            `json:"total_exits"`
	Balance      float64            `json:"balance"`
	EntryCount   int                `json:"entry_count"`
	ExitCount    int                `json:"exit_count"`
	ByType       map[string]float64 `json:"by_type"`
	BySession    map[uint]float64   `json:"by_session"` // net per séance
}

// Summary recomputes the general fund balance from the full collections.
// year = 0 means all years.
func (s *LedgerService) Summary(ctx context.Context, year int) (*LedgerSummary, error) {
	var (
		entries []*models.Entry
		exits   []*models.Exit
		err     error
	)

	if year > 0 {
		entries, err = s.entryRepo.ListByYear(ctx, year)
	} else {
		entries, err = s.entryRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if year > 0 {
		exits, err = s.exitRepo.ListByYear(ctx, year)
	} else {
		exits, err = s.exitRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	entryAmounts := make([]float64, len(entries))
	byType := make(map[string]float64)
	bySession := make(map[uint]float64)
	for i, e := range entries {
		entryAmounts[i] = e.Amount
		byType[e.Type] = domain.Sum([]float64{byType[e.Type], e.Amount})
		if e.SessionID != nil {
			bySession[*e.SessionID] = domain.Sum([]float64{bySession[*e.SessionID], e.Amount})
		}
	}

	exitAmounts := make([]float64, len(exits))
	for i, e := range exits {
		exitAmounts[i] = e.Amount
		byType[e.Type] = domain.Sum([]float64{byType[e.Type], e.Amount})
		if e.SessionID != nil {
			bySession[*e.SessionID] = domain.Balance([]float64{bySession[*e.SessionID]}, []float64{e.Amount})
		}
	}

	return &LedgerSummary{
		Year:         year,
		TotalEntries: domain.Sum(entryAmounts),
		TotalExits:   domain.Sum(exitAmounts),
		Balance:      domain.Balance(entryAmounts, exitAmounts),
		EntryCount:   len(entries),
		ExitCount:    len(exits),
		ByType:       byType,
		BySession:    bySession,
	}, nil
}
