package repositories

import (
	"context"

	"assofi/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// entryRepository implements EntryRepository interface
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

// Create creates a new entry
func (r *entryRepository) Create(ctx context.Context, entry *models.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID gets an entry by ID with relations
func (r *entryRepository) GetByID(ctx context.Context, id uint) (*models.Entry, error) {
	var entry models.Entry
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Session").
		First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List lists entries with pagination, optionally filtered by year (0 = all)
func (r *entryRepository) List(ctx context.Context, offset, limit int, year int) ([]*models.Entry, int64, error) {
	var entries []*models.Entry
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Entry{})
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
		Find(&entries).Error

	return entries, total, err
}

// ListAll lists every entry
func (r *entryRepository) ListAll(ctx context.Context) ([]*models.Entry, error) {
	var entries []*models.Entry
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Session").
		Order("date DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// ListByYear lists entries of one calendar year
func (r *entryRepository) ListByYear(ctx context.Context, year int) ([]*models.Entry, error) {
	var entries []*models.Entry
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Session").
		Where("YEAR(date) = ?", year).
		Order("date DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// Update updates an entry
func (r *entryRepository) Update(ctx context.Context, entry *models.Entry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete soft deletes an entry
func (r *entryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Entry{}, id).Error
}

// exitRepository implements ExitRepository interface
type exitRepository struct {
	db *gorm.DB
}

// NewExitRepository creates a new exit repository
func NewExitRepository(db *gorm.DB) ExitRepository {
	return &exitRepository{db: db}
}

// Create creates a new exit
func (r *exitRepository) Create(ctx context.Context, exit *models.Exit) error {
	return r.db.WithContext(ctx).Create(exit).Error
}

// GetByID gets an exit by ID with relations
func (r *exitRepository) GetByID(ctx context.Context, id uint) (*models.Exit, error) {
	var exit models.Exit
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Session").
		First(&exit, id).Error
	if err != nil {
		return nil, err
	}
	return &exit, nil
}

// List lists exits with pagination, optionally filtered by year (0 = all)
func (r *exitRepository) List(ctx context.Context, offset, limit int, year int) ([]*models.Exit, int64, error) {
	var exits []*models.Exit
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Exit{})
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
		Find(&exits).Error

	return exits, total, err
}

// ListAll lists every exit
func (r *exitRepository) ListAll(ctx context.Context) ([]*models.Exit, error) {
	var exits []*models.Exit
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Session").
		Order("date DESC, id DESC").
		Find(&exits).Error
	return exits, err
}

// ListByYear lists exits of one calendar year
func (r *exitRepository) ListByYear(ctx context.Context, year int) ([]*models.Exit, error) {
	var exits []*models.Exit
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Session").
		Where("YEAR(date) = ?", year).
		Order("date DESC, id DESC").
		Find(&exits).Error
	return exits, err
}

// Update updates an exit
func (r *exitRepository) Update(ctx context.Context, exit *models.Exit) error {
	return r.db.WithContext(ctx).Save(exit).Error
}

// Delete soft deletes an exit
func (r *exitRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Exit{}, id).Error
}
