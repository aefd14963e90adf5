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

// Aid errors
var (
	ErrAidNotFound      = errors.New("aid not found")
	ErrUnknownAidStatus = errors.New("unknown aid status")
	ErrNotAnAidType     = errors.New("transaction type is not a social aid")
)

// AidService handles social aid with recovery tracking.
// Granting an aid posts the exit; marking it recovered posts a
// "recouvrement aide" entry. Both postings happen exactly once.
type AidService struct {
	aidRepo   repositories.AidRepository
	entryRepo repositories.EntryRepository
	exitRepo  repositories.ExitRepository
}

// NewAidService creates a new aid service
func NewAidService(
	aidRepo repositories.AidRepository,
	entryRepo repositories.EntryRepository,
	exitRepo repositories.ExitRepository,
) *AidService {
	return &AidService{
		aidRepo:   aidRepo,
		entryRepo: entryRepo,
		exitRepo:  exitRepo,
	}
}

// CreateAidInput represents an aid to grant
type CreateAidInput struct {
	Type          string    `json:"type"`
	BeneficiaryID *uint     `json:"beneficiary_id"`
	Amount        float64   `json:"amount"`
	SessionID     *uint     `json:"session_id"`
	GrantedAt     time.Time `json:"granted_at"`
}

// Create grants an aid and posts the matching general fund exit
func (s *AidService) Create(ctx context.Context, input *CreateAidInput) (*models.Aid, error) {
	if !domain.IsAidType(input.Type) {
		return nil, ErrNotAnAidType
	}
	if !domain.IsValidAmount(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}
	if input.GrantedAt.IsZero() {
		input.GrantedAt = time.Now()
	}

	aid := &models.Aid{
		Type:          input.Type,
		BeneficiaryID: input.BeneficiaryID,
		Amount:        input.Amount,
		Status:        domain.AidAccorde,
		GrantedAt:     input.GrantedAt,
		SessionID:     input.SessionID,
	}
	if err := s.aidRepo.Create(ctx, aid); err != nil {
		return nil, err
	}

	exit := &models.Exit{
		Type:        input.Type,
		Amount:      input.Amount,
		MemberID:    input.BeneficiaryID,
		SessionID:   input.SessionID,
		PaymentMode: domain.PaymentEspeces,
		Date:        input.GrantedAt,
		Description: "Aide sociale accordée",
	}
	if err := s.exitRepo.Create(ctx, exit); err != nil {
		return nil, err
	}

	aid.ExitID = &exit.ID
	if err := s.aidRepo.Update(ctx, aid); err != nil {
		return nil, err
	}

	log.Printf("✅ Aid granted: %s %.2f", aid.Type, aid.Amount)
	return aid, nil
}

// Get gets one aid record
func (s *AidService) Get(ctx context.Context, id uint) (*models.Aid, error) {
	aid, err := s.aidRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAidNotFound
		}
		return nil, err
	}
	return aid, nil
}

// List lists aid records with pagination
func (s *AidService) List(ctx context.Context, offset, limit int) ([]*models.Aid, int64, error) {
	return s.aidRepo.List(ctx, offset, limit)
}

// SetStatus toggles an aid between accordé and recouvré.
// Setting the current status again is a no-op, so the recovery entry is
// never posted twice. Statuses outside the closed set are rejected.
func (s *AidService) SetStatus(ctx context.Context, id uint, status string) (*models.Aid, error) {
	if !domain.IsValidAidStatus(status) {
		return nil, ErrUnknownAidStatus
	}

	aid, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if aid.Status == status {
		return aid, nil
	}

	switch status {
	case domain.AidRecouvre:
		now := time.Now()
		entry := &models.Entry{
			Type:        domain.TypeRecouvrementAide,
			Amount:      aid.Amount,
			MemberID:    aid.BeneficiaryID,
			SessionID:   aid.SessionID,
			PaymentMode: domain.PaymentEspeces,
			Date:        now,
			Description: "Recouvrement aide sociale",
		}
		if err := s.entryRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
		aid.Status = domain.AidRecouvre
		aid.RecoveredAt = &now
		aid.RecoveryEntryID = &entry.ID

	case domain.AidAccorde:
		// Reverting removes the recovery posting so the ledger stays consistent
		if aid.RecoveryEntryID != nil {
			if err := s.entryRepo.Delete(ctx, *aid.RecoveryEntryID); err != nil {
				return nil, err
			}
		}
		aid.Status = domain.AidAccorde
		aid.RecoveredAt = nil
		aid.RecoveryEntryID = nil
	}

	if err := s.aidRepo.Update(ctx, aid); err != nil {
		return nil, err
	}

	log.Printf("✅ Aid %d marked %s", aid.ID, status)
	return aid, nil
}

// Delete removes an aid and its posted ledger movements
func (s *AidService) Delete(ctx context.Context, id uint) error {
	aid, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if aid.ExitID != nil {
		if err := s.exitRepo.Delete(ctx, *aid.ExitID); err != nil {
			return err
		}
	}
	if aid.RecoveryEntryID != nil {
		if err := s.entryRepo.Delete(ctx, *aid.RecoveryEntryID); err != nil {
			return err
		}
	}
	return s.aidRepo.Delete(ctx, id)
}

// AidSummary represents aid totals, recomputed in full
type AidSummary struct {
	Count          int     `json:"count"`
	TotalAccorded  float64 `json:"total_accorded"`
	TotalRecovered float64 `json:"total_recovered"`
	PendingCount   int     `json:"pending_count"`
}

// Summary recomputes aid totals from the full collection
func (s *AidService) Summary(ctx context.Context) (*AidSummary, error) {
	aids, err := s.aidRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var accorded, recovered []float64
	summary := &AidSummary{Count: len(aids)}
	for _, a := range aids {
		accorded = append(accorded, a.Amount)
		if a.Status == domain.AidRecouvre {
			recovered = append(recovered, a.Amount)
		} else {
			summary.PendingCount++
		}
	}

	summary.TotalAccorded = domain.Sum(accorded)
	summary.TotalRecovered = domain.Sum(recovered)
	return summary, nil
}
