package repositories

import (
	"context"
	"time"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/core/domain"

	"gorm.io/gorm"
)

// schoolLoanRepository implements SchoolLoanRepository interface
type schoolLoanRepository struct {
	db *gorm.DB
}

// NewSchoolLoanRepository creates a new school loan repository
func NewSchoolLoanRepository(db *gorm.DB) SchoolLoanRepository {
	return &schoolLoanRepository{db: db}
}

// Create creates a new school loan
func (r *schoolLoanRepository) Create(ctx context.Context, loan *models.SchoolLoan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByID gets a school loan by ID with relations
func (r *schoolLoanRepository) GetByID(ctx context.Context, id uint) (*models.SchoolLoan, error) {
	var loan models.SchoolLoan
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Session").
		First(&loan, id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// List lists school loans with pagination, optionally filtered by year (0 = all)
func (r *schoolLoanRepository) List(ctx context.Context, offset, limit int, year int) ([]*models.SchoolLoan, int64, error) {
	var loans []*models.SchoolLoan
	var total int64

	q := r.db.WithContext(ctx).Model(&models.SchoolLoan{})
	if year > 0 {
		q = q.Where("YEAR(date) = ?", year)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = r.db.WithContext(ctx).Preload("Member").Preload("Session")
	if year > 0 {
		q = q.Where("YEAR(date) = ?", year)
	}
	err := q.Order("date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&loans).Error

	return loans, total, err
}

// ListAll lists every school loan
func (r *schoolLoanRepository) ListAll(ctx context.Context) ([]*models.SchoolLoan, error) {
	var loans []*models.SchoolLoan
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("date DESC, id DESC").
		Find(&loans).Error
	return loans, err
}

// ListOverdue lists loans still running past their repayment deadline
func (r *schoolLoanRepository) ListOverdue(ctx context.Context, before time.Time) ([]*models.SchoolLoan, error) {
	var loans []*models.SchoolLoan
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("status = ?", domain.LoanEnCours).
		Where("repayment_deadline < ?", before).
		Order("repayment_deadline ASC").
		Find(&loans).Error
	return loans, err
}

// Update updates a school loan
func (r *schoolLoanRepository) Update(ctx context.Context, loan *models.SchoolLoan) error {
	return r.db.WithContext(ctx).Save(loan).Error
}

// Delete soft deletes a school loan
func (r *schoolLoanRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SchoolLoan{}, id).Error
}

// schoolEntryRepository implements SchoolEntryRepository interface
type schoolEntryRepository struct {
	db *gorm.DB
}

// NewSchoolEntryRepository creates a new school entry repository
func NewSchoolEntryRepository(db *gorm.DB) SchoolEntryRepository {
	return &schoolEntryRepository{db: db}
}

// Create creates a new school entry
func (r *schoolEntryRepository) Create(ctx context.Context, entry *models.SchoolEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID gets a school entry by ID with relations
func (r *schoolEntryRepository) GetByID(ctx context.Context, id uint) (*models.SchoolEntry, error) {
	var entry models.SchoolEntry
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Loan").
		First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List lists school entries with pagination, optionally filtered by year (0 = all)
func (r *schoolEntryRepository) List(ctx context.Context, offset, limit int, year int) ([]*models.SchoolEntry, int64, error) {
	var entries []*models.SchoolEntry
	var total int64

	q := r.db.WithContext(ctx).Model(&models.SchoolEntry{})
	if year > 0 {
		q = q.Where("YEAR(date) = ?", year)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = r.db.WithContext(ctx).Preload("Member").Preload("Loan")
	if year > 0 {
		q = q.Where("YEAR(date) = ?", year)
	}
	err := q.Order("date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error

	return entries, total, err
}

// ListAll lists every school entry
func (r *schoolEntryRepository) ListAll(ctx context.Context) ([]*models.SchoolEntry, error) {
	var entries []*models.SchoolEntry
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("date DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// ListByLoanID lists repayments recorded against one loan
func (r *schoolEntryRepository) ListByLoanID(ctx context.Context, loanID uint) ([]*models.SchoolEntry, error) {
	var entries []*models.SchoolEntry
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("date ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

// Update updates a school entry
func (r *schoolEntryRepository) Update(ctx context.Context, entry *models.SchoolEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete soft deletes a school entry
func (r *schoolEntryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SchoolEntry{}, id).Error
}
