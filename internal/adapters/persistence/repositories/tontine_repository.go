package repositories

import (
	"context"

	"assofi/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// tontineRepository implements TontineRepository interface
type tontineRepository struct {
	db *gorm.DB
}

// NewTontineRepository creates a new tontine repository
func NewTontineRepository(db *gorm.DB) TontineRepository {
	return &tontineRepository{db: db}
}

// Create creates a new tontine record
func (r *tontineRepository) Create(ctx context.Context, tontine *models.Tontine) error {
	return r.db.WithContext(ctx).Create(tontine).Error
}

// GetByID gets a tontine record by ID with its beneficiary
func (r *tontineRepository) GetByID(ctx context.Context, id uint) (*models.Tontine, error) {
	var tontine models.Tontine
	err := r.db.WithContext(ctx).
		Preload("Beneficiary").
		First(&tontine, id).Error
	if err != nil {
		return nil, err
	}
	return &tontine, nil
}

// List lists tontine records with pagination, newest session first
func (r *tontineRepository) List(ctx context.Context, offset, limit int) ([]*models.Tontine, int64, error) {
	var tontines []*models.Tontine
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Tontine{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Beneficiary").
		Order("session_date DESC, list_number ASC").
		Offset(offset).
		Limit(limit).
		Find(&tontines).Error

	return tontines, total, err
}

// ListAll lists every tontine record
func (r *tontineRepository) ListAll(ctx context.Context) ([]*models.Tontine, error) {
	var tontines []*models.Tontine
	err := r.db.WithContext(ctx).
		Preload("Beneficiary").
		Order("session_date DESC, list_number ASC").
		Find(&tontines).Error
	return tontines, err
}

// Update updates a tontine record
func (r *tontineRepository) Update(ctx context.Context, tontine *models.Tontine) error {
	return r.db.WithContext(ctx).Save(tontine).Error
}

// Delete soft deletes a tontine record
func (r *tontineRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Tontine{}, id).Error
}

// aidRepository implements AidRepository interface
type aidRepository struct {
	db *gorm.DB
}

// NewAidRepository creates a new aid repository
func NewAidRepository(db *gorm.DB) AidRepository {
	return &aidRepository{db: db}
}

// Create creates a new aid record
func (r *aidRepository) Create(ctx context.Context, aid *models.Aid) error {
	return r.db.WithContext(ctx).Create(aid).Error
}

// GetByID gets an aid record by ID with its beneficiary
func (r *aidRepository) GetByID(ctx context.Context, id uint) (*models.Aid, error) {
	var aid models.Aid
	err := r.db.WithContext(ctx).
		Preload("Beneficiary").
		First(&aid, id).Error
	if err != nil {
		return nil, err
	}
	return &aid, nil
}

// List lists aid records with pagination, newest first
func (r *aidRepository) List(ctx context.Context, offset, limit int) ([]*models.Aid, int64, error) {
	var aids []*models.Aid
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Aid{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Beneficiary").
		Order("granted_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&aids).Error

	return aids, total, err
}

// ListAll lists every aid record
func (r *aidRepository) ListAll(ctx context.Context) ([]*models.Aid, error) {
	var aids []*models.Aid
	err := r.db.WithContext(ctx).
		Preload("Beneficiary").
		Order("granted_at DESC, id DESC").
		Find(&aids).Error
	return aids, err
}

// Update updates an aid record
func (r *aidRepository) Update(ctx context.Context, aid *models.Aid) error {
	return r.db.WithContext(ctx).Save(aid).Error
}

// Delete soft deletes an aid record
func (r *aidRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Aid{}, id).Error
}

// donationRepository implements DonationRepository interface
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// Create creates a new donation
func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

// GetByID gets a donation by ID
func (r *donationRepository) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.WithContext(ctx).First(&donation, id).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// List lists donations with pagination, newest first
func (r *donationRepository) List(ctx context.Context, offset, limit int) ([]*models.Donation, int64, error) {
	var donations []*models.Donation
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Donation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error

	return donations, total, err
}

// ListAll lists every donation
func (r *donationRepository) ListAll(ctx context.Context) ([]*models.Donation, error) {
	var donations []*models.Donation
	err := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&donations).Error
	return donations, err
}

// Update updates a donation
func (r *donationRepository) Update(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

// Delete soft deletes a donation
func (r *donationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Donation{}, id).Error
}
