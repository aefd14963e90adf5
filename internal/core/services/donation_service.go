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

// Donation errors
var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrDonorNameMissing = errors.New("donor name is required for public donations")
)

// DonationService handles donations. Each donation posts its general
// fund entry (don anonyme or don public).
type DonationService struct {
	donationRepo repositories.DonationRepository
	entryRepo    repositories.EntryRepository
}

// NewDonationService creates a new donation service
func NewDonationService(donationRepo repositories.DonationRepository, entryRepo repositories.EntryRepository) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		entryRepo:    entryRepo,
	}
}

// CreateDonationInput represents a donation to record
type CreateDonationInput struct {
	DonorName   string    `json:"donor_name"`
	Anonymous   bool      `json:"anonymous"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// Create records a donation and posts the matching general fund entry
func (s *DonationService) Create(ctx context.Context, input *CreateDonationInput) (*models.Donation, error) {
	if !domain.IsValidAmount(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}
	if !input.Anonymous && input.DonorName == "" {
		return nil, ErrDonorNameMissing
	}
	if input.Anonymous {
		input.DonorName = ""
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	donation := &models.Donation{
		DonorName:   input.DonorName,
		Anonymous:   input.Anonymous,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	entryType := domain.TypeDonPublic
	if input.Anonymous {
		entryType = domain.TypeDonAnonyme
	}
	entry := &models.Entry{
		Type:        entryType,
		Amount:      input.Amount,
		PaymentMode: domain.PaymentEspeces,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	donation.EntryID = &entry.ID
	if err := s.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	log.Printf("✅ Donation recorded: %s %.2f", entryType, donation.Amount)
	return donation, nil
}

// Get gets one donation
func (s *DonationService) Get(ctx context.Context, id uint) (*models.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return donation, nil
}

// List lists donations with pagination
func (s *DonationService) List(ctx context.Context, offset, limit int) ([]*models.Donation, int64, error) {
	return s.donationRepo.List(ctx, offset, limit)
}

// Delete removes a donation and its posted entry
func (s *DonationService) Delete(ctx context.Context, id uint) error {
	donation, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if donation.EntryID != nil {
		if err := s.entryRepo.Delete(ctx, *donation.EntryID); err != nil {
			return err
		}
	}
	return s.donationRepo.Delete(ctx, id)
}

// DonationSummary represents donation totals, recomputed in full
type DonationSummary struct {
	Count          int     `json:"count"`
	TotalAnonymous float64 `json:"total_anonymous"`
	TotalPublic    float64 `json:"total_public"`
	Total          float64 `json:"total"`
}

// Summary recomputes donation totals from the full collection
func (s *DonationService) Summary(ctx context.Context) (*DonationSummary, error) {
	donations, err := s.donationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var anonymous, public []float64
	for _, d := range donations {
		if d.Anonymous {
			anonymous = append(anonymous, d.Amount)
		} else {
			public = append(public, d.Amount)
		}
	}

	totalAnon := domain.Sum(anonymous)
	totalPub := domain.Sum(public)
	return &DonationSummary{
		Count:          len(donations),
		TotalAnonymous: totalAnon,
		TotalPublic:    totalPub,
		Total:          domain.Sum([]float64{totalAnon, totalPub}),
	}, nil
}
