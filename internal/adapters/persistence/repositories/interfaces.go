package repositories

import (
	"context"
	"time"

	"assofi/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	GetByUserID(ctx context.Context, userID uint) ([]*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// MemberRepository defines member repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error)
	ListAll(ctx context.Context) ([]*models.Member, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository defines session repository interface
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id uint) (*models.Session, error)
	List(ctx context.Context, offset, limit int) ([]*models.Session, int64, error)
	ListAll(ctx context.Context) ([]*models.Session, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*models.Session, error)
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	UpsertAttendance(ctx context.Context, att *models.Attendance) error
	ListAttendance(ctx context.Context, sessionID uint) ([]*models.Attendance, error)
	CountAttendance(ctx context.Context) (total, present int64, err error)
}

// EntryRepository defines general fund entry repository interface
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	GetByID(ctx context.Context, id uint) (*models.Entry, error)
	List(ctx context.Context, offset, limit int, year int) ([]*models.Entry, int64, error)
	ListAll(ctx context.Context) ([]*models.Entry, error)
	ListByYear(ctx context.Context, year int) ([]*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) error
	Delete(ctx context.Context, id uint) error
}

// ExitRepository defines general fund exit repository interface
type ExitRepository interface {
	Create(ctx context.Context, exit *models.Exit) error
	GetByID(ctx context.Context, id uint) (*models.Exit, error)
	List(ctx context.Context, offset, limit int, year int) ([]*models.Exit, int64, error)
	ListAll(ctx context.Context) ([]*models.Exit, error)
	ListByYear(ctx context.Context, year int) ([]*models.Exit, error)
	Update(ctx context.Context, exit *models.Exit) error
	Delete(ctx context.Context, id uint) error
}

// SchoolLoanRepository defines school loan repository interface
type SchoolLoanRepository interface {
	Create(ctx context.Context, loan *models.SchoolLoan) error
	GetByID(ctx context.Context, id uint) (*models.SchoolLoan, error)
	List(ctx context.Context, offset, limit int, year int) ([]*models.SchoolLoan, int64, error)
	ListAll(ctx context.Context) ([]*models.SchoolLoan, error)
	ListOverdue(ctx context.Context, before time.Time) ([]*models.SchoolLoan, error)
	Update(ctx context.Context, loan *models.SchoolLoan) error
	Delete(ctx context.Context, id uint) error
}

// SchoolEntryRepository defines school fund entry repository interface
type SchoolEntryRepository interface {
	Create(ctx context.Context, entry *models.SchoolEntry) error
	GetByID(ctx context.Context, id uint) (*models.SchoolEntry, error)
	List(ctx context.Context, offset, limit int, year int) ([]*models.SchoolEntry, int64, error)
	ListAll(ctx context.Context) ([]*models.SchoolEntry, error)
	ListByLoanID(ctx context.Context, loanID uint) ([]*models.SchoolEntry, error)
	Update(ctx context.Context, entry *models.SchoolEntry) error
	Delete(ctx context.Context, id uint) error
}

// TontineRepository defines tontine repository interface
type TontineRepository interface {
	Create(ctx context.Context, tontine *models.Tontine) error
	GetByID(ctx context.Context, id uint) (*models.Tontine, error)
	List(ctx context.Context, offset, limit int) ([]*models.Tontine, int64, error)
	ListAll(ctx context.Context) ([]*models.Tontine, error)
	Update(ctx context.Context, tontine *models.Tontine) error
	Delete(ctx context.Context, id uint) error
}

// AidRepository defines aid repository interface
type AidRepository interface {
	Create(ctx context.Context, aid *models.Aid) error
	GetByID(ctx context.Context, id uint) (*models.Aid, error)
	List(ctx context.Context, offset, limit int) ([]*models.Aid, int64, error)
	ListAll(ctx context.Context) ([]*models.Aid, error)
	Update(ctx context.Context, aid *models.Aid) error
	Delete(ctx context.Context, id uint) error
}

// DonationRepository defines donation repository interface
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	GetByID(ctx context.Context, id uint) (*models.Donation, error)
	List(ctx context.Context, offset, limit int) ([]*models.Donation, int64, error)
	ListAll(ctx context.Context) ([]*models.Donation, error)
	Update(ctx context.Context, donation *models.Donation) error
	Delete(ctx context.Context, id uint) error
}
