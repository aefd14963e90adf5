package repositories

import (
	"context"
	"time"

	"assofi/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements SessionRepository interface
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create creates a new session
func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// GetByID gets a session by ID with its roster
func (r *sessionRepository) GetByID(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).
		Preload("Attendances").
		Preload("Attendances.Member").
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// List lists sessions with pagination, newest first
func (r *sessionRepository) List(ctx context.Context, offset, limit int) ([]*models.Session, int64, error) {
	var sessions []*models.Session
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&sessions).Error

	return sessions, total, err
}

// ListAll lists every session
func (r *sessionRepository) ListAll(ctx context.Context) ([]*models.Session, error) {
	var sessions []*models.Session
	err := r.db.WithContext(ctx).Order("date DESC").Find(&sessions).Error
	return sessions, err
}

// ListBetween lists sessions whose date falls in [from, to)
func (r *sessionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.Session, error) {
	var sessions []*models.Session
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&sessions).Error
	return sessions, err
}

// Update updates a session
func (r *sessionRepository) Update(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// Delete soft deletes a session
func (r *sessionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Session{}, id).Error
}

// Count counts all sessions
func (r *sessionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Session{}).Count(&count).Error
	return count, err
}

// UpsertAttendance inserts or updates one roster line of a session
func (r *sessionRepository) UpsertAttendance(ctx context.Context, att *models.Attendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "member_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"present", "updated_at"}),
		}).
		Create(att).Error
}

// ListAttendance lists the roster of a session with member info
func (r *sessionRepository) ListAttendance(ctx context.Context, sessionID uint) ([]*models.Attendance, error) {
	var roster []*models.Attendance
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("session_id = ?", sessionID).
		Find(&roster).Error
	return roster, err
}

// CountAttendance counts roster lines and present lines across all sessions
func (r *sessionRepository) CountAttendance(ctx context.Context) (int64, int64, error) {
	var total, present int64
	if err := r.db.WithContext(ctx).Model(&models.Attendance{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Where("present = ?", true).
		Count(&present).Error
	return total, present, err
}
