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

// Tontine errors
var (
	ErrTontineNotFound     = errors.New("tontine record not found")
	ErrInvalidListNumber   = errors.New("tontine list number must be between 1 and 3")
	ErrInvalidParticipants = errors.New("participant count must be positive")
)

// TontineListCount is how many tontine lists the association runs
const TontineListCount = 3

// TontineService handles tontine payout records.
// The flat maintenance fee is posted to the general fund as an entry of
// type "maintenance tontine", exactly once per payout.
type TontineService struct {
	tontineRepo repositories.TontineRepository
	entryRepo   repositories.EntryRepository
}

// NewTontineService creates a new tontine service
func NewTontineService(tontineRepo repositories.TontineRepository, entryRepo repositories.EntryRepository) *TontineService {
	return &TontineService{
		tontineRepo: tontineRepo,
		entryRepo:   entryRepo,
	}
}

// CreateTontineInput represents a tontine payout to record
type CreateTontineInput struct {
	ListNumber       int       `json:"list_number"`
	BeneficiaryID    *uint     `json:"beneficiary_id"`
	IndividualAmount float64   `json:"individual_amount"`
	ParticipantCount int       `json:"participant_count"`
	SessionDate      time.Time `json:"session_date"`
}

// Create records a tontine payout and posts its maintenance fee
func (s *TontineService) Create(ctx context.Context, input *CreateTontineInput) (*models.Tontine, error) {
	if input.ListNumber < 1 || input.ListNumber > TontineListCount {
		return nil, ErrInvalidListNumber
	}
	if !domain.IsValidAmount(input.IndividualAmount) {
		return nil, domain.ErrInvalidAmount
	}
	if input.ParticipantCount < 1 {
		return nil, ErrInvalidParticipants
	}
	if input.SessionDate.IsZero() {
		input.SessionDate = time.Now()
	}

	tontine := &models.Tontine{
		ListNumber:       input.ListNumber,
		BeneficiaryID:    input.BeneficiaryID,
		IndividualAmount: input.IndividualAmount,
		ParticipantCount: input.ParticipantCount,
		MaintenanceFee:   domain.TontineMaintenanceFee,
		SessionDate:      input.SessionDate,
	}
	if err := s.tontineRepo.Create(ctx, tontine); err != nil {
		return nil, err
	}

	// The fee feeds the general fund, once per payout
	feeEntry := &models.Entry{
		Type:        domain.TypeMaintenanceTontine,
		Amount:      domain.TontineMaintenanceFee,
		MemberID:    input.BeneficiaryID,
		PaymentMode: domain.PaymentEspeces,
		Date:        input.SessionDate,
		Description: "Frais de maintenance tontine",
	}
	if err := s.entryRepo.Create(ctx, feeEntry); err != nil {
		return nil, err
	}

	tontine.FeeEntryID = &feeEntry.ID
	if err := s.tontineRepo.Update(ctx, tontine); err != nil {
		return nil, err
	}

	pot := domain.TontinePot(tontine.IndividualAmount, tontine.ParticipantCount)
	log.Printf("✅ Tontine payout recorded: list %d, pot %.2f, net %.2f",
		tontine.ListNumber, pot, domain.TontineNet(pot))
	return tontine, nil
}

// Get gets one tontine record
func (s *TontineService) Get(ctx context.Context, id uint) (*models.Tontine, error) {
	tontine, err := s.tontineRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTontineNotFound
		}
		return nil, err
	}
	return tontine, nil
}

// List lists tontine records with pagination
func (s *TontineService) List(ctx context.Context, offset, limit int) ([]*models.Tontine, int64, error) {
	return s.tontineRepo.List(ctx, offset, limit)
}

// Delete removes a tontine record and its posted maintenance fee entry
func (s *TontineService) Delete(ctx context.Context, id uint) error {
	tontine, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if tontine.FeeEntryID != nil {
		if err := s.entryRepo.Delete(ctx, *tontine.FeeEntryID); err != nil {
			return err
		}
	}
	return s.tontineRepo.Delete(ctx, id)
}

// TontineSummary represents tontine totals, recomputed in full
type TontineSummary struct {
	Count     int     `json:"count"`
	TotalFees float64 `json:"total_fees"`
	TotalPots float64 `json:"total_pots"`
	TotalNets float64 `json:"total_nets"`
}

// Summary recomputes tontine totals from the full collection
func (s *TontineService) Summary(ctx context.Context) (*TontineSummary, error) {
	tontines, err := s.tontineRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	fees := make([]float64, len(tontines))
	pots := make([]float64, len(tontines))
	nets := make([]float64, len(tontines))
	for i, t := range tontines {
		fees[i] = t.MaintenanceFee
		pots[i] = domain.TontinePot(t.IndividualAmount, t.ParticipantCount)
		nets[i] = domain.TontineNet(pots[i])
	}

	return &TontineSummary{
		Count:     len(tontines),
		TotalFees: domain.Sum(fees),
		TotalPots: domain.Sum(pots),
		TotalNets: domain.Sum(nets),
	}, nil
}
