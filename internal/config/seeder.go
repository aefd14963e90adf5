package config

import (
	"log"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDemoUsers(); err != nil {
		log.Printf("⚠️ User seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDemoUsers seeds the two demo accounts the association starts with.
// Existing accounts are never overwritten.
func (s *Seeder) seedDemoUsers() error {
	demos := []struct {
		username string
		email    string
		password string
		role     string
	}{
		{"admin", "admin@assofi.app", "admin123", "admin"},
		{"tresorier", "tresorier@assofi.app", "tresorier123", "tresorier"},
	}

	for _, d := range demos {
		var count int64
		s.db.Model(&models.User{}).Where("username = ?", d.username).Count(&count)
		if count > 0 {
			continue
		}

		hashedPassword, err := password.Hash(d.password)
		if err != nil {
			return err
		}

		user := &models.User{
			Username: d.username,
			Email:    d.email,
			Password: hashedPassword,
			Role:     d.role,
			IsActive: true,
		}
		if err := s.db.Create(user).Error; err != nil {
			return err
		}

		log.Printf("✅ Demo user created: %s (%s)", user.Username, user.Role)
	}

	return nil
}
