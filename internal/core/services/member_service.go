package services

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"time"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/adapters/persistence/repositories"
	"assofi/internal/core/domain"
	"assofi/internal/pkg/photostore"

	"gorm.io/gorm"
)

// Member errors
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrInvalidMemberStatus = errors.New("invalid member status")
	ErrInvalidMemberRole   = errors.New("invalid member role")
	ErrNameRequired        = errors.New("first and last name are required")
	ErrPhotoStoreOffline   = errors.New("photo store is not configured")
)

// MemberService handles association members
type MemberService struct {
	memberRepo repositories.MemberRepository
	photos     *photostore.PhotoStore
}

// NewMemberService creates a new member service.
// photos may be nil when no photo store is configured.
func NewMemberService(memberRepo repositories.MemberRepository, photos *photostore.PhotoStore) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		photos:     photos,
	}
}

// MemberInput represents member data for create and update
type MemberInput struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	JoinDate  time.Time `json:"join_date"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
}

// validate applies the closed status and role sets, filling defaults
func (in *MemberInput) validate() error {
	if in.FirstName == "" || in.LastName == "" {
		return ErrNameRequired
	}
	if in.Status == "" {
		in.Status = domain.MemberActif
	}
	if !domain.IsValidMemberStatus(in.Status) {
		return ErrInvalidMemberStatus
	}
	if in.Role == "" {
		in.Role = domain.RoleMembre
	}
	if !domain.IsValidMemberRole(in.Role) {
		return ErrInvalidMemberRole
	}
	if in.JoinDate.IsZero() {
		in.JoinDate = time.Now()
	}
	return nil
}

// Create creates a new member
func (s *MemberService) Create(ctx context.Context, input *MemberInput) (*models.Member, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	member := &models.Member{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		JoinDate:  input.JoinDate,
		Status:    input.Status,
		Role:      input.Role,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	log.Printf("✅ Member created: %s", member.FullName())
	return member, nil
}

// Get gets one member
func (s *MemberService) Get(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// List lists members with pagination
func (s *MemberService) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	return s.memberRepo.List(ctx, offset, limit)
}

// Search searches members by name or phone
func (s *MemberService) Search(ctx context.Context, query string, limit int) ([]*models.Member, error) {
	return s.memberRepo.Search(ctx, query, limit)
}

// Update updates a member
func (s *MemberService) Update(ctx context.Context, id uint, input *MemberInput) (*models.Member, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	member.FirstName = input.FirstName
	member.LastName = input.LastName
	member.Phone = input.Phone
	member.Email = input.Email
	member.Address = input.Address
	member.JoinDate = input.JoinDate
	member.Status = input.Status
	member.Role = input.Role

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// SetStatus updates only the member status, against the closed set
func (s *MemberService) SetStatus(ctx context.Context, id uint, status string) (*models.Member, error) {
	if !domain.IsValidMemberStatus(status) {
		return nil, ErrInvalidMemberStatus
	}

	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Status = status
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete soft deletes a member. Records that reference it keep their
// loose ID and render as N/A.
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}

// UploadPhoto validates, uploads and attaches a member photo.
// A previous photo is removed from the store first.
func (s *MemberService) UploadPhoto(ctx context.Context, id uint, file multipart.File, fileHeader *multipart.FileHeader) (*models.Member, error) {
	if s.photos == nil {
		return nil, ErrPhotoStoreOffline
	}

	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if member.PhotoURL != "" {
		if err := s.photos.Delete(member.PhotoURL); err != nil {
			log.Printf("⚠️ Could not delete previous photo for member %d: %v", member.ID, err)
		}
	}

	photoURL, err := s.photos.Upload(file, fileHeader)
	if err != nil {
		return nil, err
	}

	member.PhotoURL = photoURL
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	log.Printf("✅ Photo uploaded for member %d", member.ID)
	return member, nil
}
