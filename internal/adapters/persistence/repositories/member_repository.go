package repositories

import (
	"context"

	"assofi/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List lists members with pagination
func (r *memberRepository) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&members).Error

	return members, total, err
}

// ListAll lists every member
func (r *memberRepository) ListAll(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&members).Error
	return members, err
}

// Search searches members by name or phone
func (r *memberRepository) Search(ctx context.Context, query string, limit int) ([]*models.Member, error) {
	var members []*models.Member
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("first_name LIKE ? OR last_name LIKE ? OR phone LIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&members).Error
	return members, err
}

// Update updates a member
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete soft deletes a member
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Member{}, id).Error
}

// CountByStatus counts members with the given status
func (r *memberRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// Count counts all members
func (r *memberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&count).Error
	return count, err
}
