package models

import (
	"time"

	"assofi/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Auth Tables
// ============================================================

// User represents users table (application accounts, not association members)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'tresorier'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Association Tables
// ============================================================

// Member represents members table
type Member struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"size:100;not null" json:"first_name"`
	LastName  string         `gorm:"size:100;not null" json:"last_name"`
	Phone     string         `gorm:"size:30" json:"phone"`
	Email     string         `gorm:"size:100" json:"email"`
	Address   string         `gorm:"size:255" json:"address"`
	JoinDate  time.Time      `gorm:"type:date" json:"join_date"`
	Status    string         `gorm:"size:30;default:'actif(ve)'" json:"status"`
	Role      string         `gorm:"size:40;default:'membre'" json:"role"`
	PhotoURL  string         `gorm:"size:255" json:"photo_url"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// FullName joins first and last name for display
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// MemberLabel resolves an optional member relation for display.
// Missing references render as "N/A" instead of failing.
func MemberLabel(m *Member) string {
	if m == nil {
		return domain.UnknownMemberLabel
	}
	return m.FullName()
}

// Session represents sessions table (séances)
type Session struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Date      time.Time      `gorm:"type:date;not null;index" json:"date"`
	Type      string         `gorm:"size:20;not null;default:'ordinaire'" json:"type"`
	Agenda    string         `gorm:"type:text" json:"agenda"`
	Location  string         `gorm:"size:150" json:"location"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Attendances []Attendance `gorm:"foreignKey:SessionID" json:"attendances,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}

// Attendance represents one roster line of a session
type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;uniqueIndex:idx_session_member" json:"session_id"`
	MemberID  uint      `gorm:"not null;uniqueIndex:idx_session_member" json:"member_id"`
	Present   bool      `gorm:"default:false" json:"present"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// Entry represents entries table (entrées, general fund)
type Entry struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Type        string         `gorm:"size:50;not null;index" json:"type"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	MemberID    *uint          `gorm:"index" json:"member_id"`
	SessionID   *uint          `gorm:"index" json:"session_id"`
	PaymentMode string         `gorm:"size:20;default:'espèces'" json:"payment_mode"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Member  *Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Session *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
}

func (Entry) TableName() string {
	return "entries"
}

// EntryResponse DTO
type EntryResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	MemberID    *uint     `json:"member_id"`
	MemberName  string    `json:"member_name"`
	SessionID   *uint     `json:"session_id"`
	SessionDate string    `json:"session_date"`
	PaymentMode string    `json:"payment_mode"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Entry) ToResponse() *EntryResponse {
	resp := &EntryResponse{
		ID:          e.ID,
		Type:        e.Type,
		Amount:      e.Amount,
		MemberID:    e.MemberID,
		MemberName:  MemberLabel(e.Member),
		SessionID:   e.SessionID,
		SessionDate: domain.UnknownMemberLabel,
		PaymentMode: e.PaymentMode,
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
	if e.Session != nil {
		resp.SessionDate = e.Session.Date.Format("2006-01-02")
	}
	return resp
}

// Exit represents exits table (sorties, general fund)
type Exit struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Type        string         `gorm:"size:50;not null;index" json:"type"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	MemberID    *uint          `gorm:"index" json:"member_id"`
	SessionID   *uint          `gorm:"index" json:"session_id"`
	PaymentMode string         `gorm:"size:20;default:'espèces'" json:"payment_mode"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Member  *Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Session *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
}

func (Exit) TableName() string {
	return "exits"
}

// ExitResponse DTO
type ExitResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	MemberID    *uint     `json:"member_id"`
	MemberName  string    `json:"member_name"`
	SessionID   *uint     `json:"session_id"`
	SessionDate string    `json:"session_date"`
	PaymentMode string    `json:"payment_mode"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Exit) ToResponse() *ExitResponse {
	resp := &ExitResponse{
		ID:          e.ID,
		Type:        e.Type,
		Amount:      e.Amount,
		MemberID:    e.MemberID,
		MemberName:  MemberLabel(e.Member),
		SessionID:   e.SessionID,
		SessionDate: domain.UnknownMemberLabel,
		PaymentMode: e.PaymentMode,
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
	if e.Session != nil {
		resp.SessionDate = e.Session.Date.Format("2006-01-02")
	}
	return resp
}

// ============================================================
// School Fund Tables
// ============================================================

// SchoolLoan represents school_loans table (emprunts scolaires)
type SchoolLoan struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	MemberID          *uint          `gorm:"index" json:"member_id"`
	Amount            float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	InterestRate      float64        `gorm:"type:decimal(5,2);not null;default:10" json:"interest_rate"`
	InterestValue     float64        `gorm:"type:decimal(15,2);not null" json:"interest_value"`
	RepaymentDeadline time.Time      `gorm:"type:date" json:"repayment_deadline"`
	Status            string         `gorm:"size:20;not null;default:'en_cours';index" json:"status"`
	SessionID         *uint          `gorm:"index" json:"session_id"`
	Date              time.Time      `gorm:"type:date;not null" json:"date"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	Member  *Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Session *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
}

func (SchoolLoan) TableName() string {
	return "school_loans"
}

// SchoolLoanResponse DTO
type SchoolLoanResponse struct {
	ID                uint      `json:"id"`
	MemberID          *uint     `json:"member_id"`
	MemberName        string    `json:"member_name"`
	Amount            float64   `json:"amount"`
	InterestRate      float64   `json:"interest_rate"`
	InterestValue     float64   `json:"interest_value"`
	TotalDue          float64   `json:"total_due"`
	RepaidTotal       float64   `json:"repaid_total"`
	RepaymentDeadline time.Time `json:"repayment_deadline"`
	Status            string    `json:"status"`
	SessionID         *uint     `json:"session_id"`
	Date              time.Time `json:"date"`
	CreatedAt         time.Time `json:"created_at"`
}

func (l *SchoolLoan) ToResponse() *SchoolLoanResponse {
	return &SchoolLoanResponse{
		ID:                l.ID,
		MemberID:          l.MemberID,
		MemberName:        MemberLabel(l.Member),
		Amount:            l.Amount,
		InterestRate:      l.InterestRate,
		InterestValue:     l.InterestValue,
		TotalDue:          domain.LoanTotalDue(l.Amount, l.InterestRate),
		RepaymentDeadline: l.RepaymentDeadline,
		Status:            l.Status,
		SessionID:         l.SessionID,
		Date:              l.Date,
		CreatedAt:         l.CreatedAt,
	}
}

// SchoolEntry represents school_entries table (entrées scolaires)
type SchoolEntry struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Type           string         `gorm:"size:30;not null;index" json:"type"`
	Amount         float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	MemberID       *uint          `gorm:"index" json:"member_id"`
	SessionID      *uint          `gorm:"index" json:"session_id"`
	RepaymentKind  string         `gorm:"size:20" json:"repayment_kind"`
	RepaymentScope string         `gorm:"size:20" json:"repayment_scope"`
	LoanID         *uint          `gorm:"index" json:"loan_id"`
	Date           time.Time      `gorm:"type:date;not null" json:"date"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Member *Member     `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Loan   *SchoolLoan `gorm:"foreignKey:LoanID" json:"loan,omitempty"`
}

func (SchoolEntry) TableName() string {
	return "school_entries"
}

// SchoolEntryResponse DTO
type SchoolEntryResponse struct {
	ID             uint      `json:"id"`
	Type           string    `json:"type"`
	Amount         float64   `json:"amount"`
	MemberID       *uint     `json:"member_id"`
	MemberName     string    `json:"member_name"`
	SessionID      *uint     `json:"session_id"`
	RepaymentKind  string    `json:"repayment_kind,omitempty"`
	RepaymentScope string    `json:"repayment_scope,omitempty"`
	LoanID         *uint     `json:"loan_id"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e *SchoolEntry) ToResponse() *SchoolEntryResponse {
	return &SchoolEntryResponse{
		ID:             e.ID,
		Type:           e.Type,
		Amount:         e.Amount,
		MemberID:       e.MemberID,
		MemberName:     MemberLabel(e.Member),
		SessionID:      e.SessionID,
		RepaymentKind:  e.RepaymentKind,
		RepaymentScope: e.RepaymentScope,
		LoanID:         e.LoanID,
		Date:           e.Date,
		CreatedAt:      e.CreatedAt,
	}
}

// ============================================================
// Tontine / Aid / Donation Tables
// ============================================================

// Tontine represents tontines table (one payout record per beneficiary)
type Tontine struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	ListNumber       int            `gorm:"not null;index" json:"list_number"`
	BeneficiaryID    *uint          `gorm:"index" json:"beneficiary_id"`
	IndividualAmount float64        `gorm:"type:decimal(15,2);not null" json:"individual_amount"`
	ParticipantCount int            `gorm:"not null" json:"participant_count"`
	MaintenanceFee   float64        `gorm:"type:decimal(15,2);not null;default:10" json:"maintenance_fee"`
	FeeEntryID       *uint          `json:"fee_entry_id"`
	SessionDate      time.Time      `gorm:"type:date;not null" json:"session_date"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Beneficiary *Member `gorm:"foreignKey:BeneficiaryID" json:"beneficiary,omitempty"`
}

func (Tontine) TableName() string {
	return "tontines"
}

// TontineResponse DTO
type TontineResponse struct {
	ID               uint      `json:"id"`
	ListNumber       int       `json:"list_number"`
	BeneficiaryID    *uint     `json:"beneficiary_id"`
	BeneficiaryName  string    `json:"beneficiary_name"`
	IndividualAmount float64   `json:"individual_amount"`
	ParticipantCount int       `json:"participant_count"`
	Pot              float64   `json:"pot"`
	MaintenanceFee   float64   `json:"maintenance_fee"`
	NetAmount        float64   `json:"net_amount"`
	SessionDate      time.Time `json:"session_date"`
	CreatedAt        time.Time `json:"created_at"`
}

func (t *Tontine) ToResponse() *TontineResponse {
	pot := domain.TontinePot(t.IndividualAmount, t.ParticipantCount)
	return &TontineResponse{
		ID:               t.ID,
		ListNumber:       t.ListNumber,
		BeneficiaryID:    t.BeneficiaryID,
		BeneficiaryName:  MemberLabel(t.Beneficiary),
		IndividualAmount: t.IndividualAmount,
		ParticipantCount: t.ParticipantCount,
		Pot:              pot,
		MaintenanceFee:   t.MaintenanceFee,
		NetAmount:        domain.TontineNet(pot),
		SessionDate:      t.SessionDate,
		CreatedAt:        t.CreatedAt,
	}
}

// Aid represents aids table (social aid with recovery tracking)
type Aid struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Type            string         `gorm:"size:50;not null;index" json:"type"`
	BeneficiaryID   *uint          `gorm:"index" json:"beneficiary_id"`
	Amount          float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status          string         `gorm:"size:20;not null;default:'accordé';index" json:"status"`
	GrantedAt       time.Time      `gorm:"type:date;not null" json:"granted_at"`
	RecoveredAt     *time.Time     `gorm:"type:date" json:"recovered_at"`
	ExitID          *uint          `json:"exit_id"`
	RecoveryEntryID *uint          `json:"recovery_entry_id"`
	SessionID       *uint          `gorm:"index" json:"session_id"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Beneficiary *Member `gorm:"foreignKey:BeneficiaryID" json:"beneficiary,omitempty"`
}

func (Aid) TableName() string {
	return "aids"
}

// AidResponse DTO
type AidResponse struct {
	ID              uint       `json:"id"`
	Type            string     `json:"type"`
	BeneficiaryID   *uint      `json:"beneficiary_id"`
	BeneficiaryName string     `json:"beneficiary_name"`
	Amount          float64    `json:"amount"`
	Status          string     `json:"status"`
	GrantedAt       time.Time  `json:"granted_at"`
	RecoveredAt     *time.Time `json:"recovered_at"`
	SessionID       *uint      `json:"session_id"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (a *Aid) ToResponse() *AidResponse {
	return &AidResponse{
		ID:              a.ID,
		Type:            a.Type,
		BeneficiaryID:   a.BeneficiaryID,
		BeneficiaryName: MemberLabel(a.Beneficiary),
		Amount:          a.Amount,
		Status:          a.Status,
		GrantedAt:       a.GrantedAt,
		RecoveredAt:     a.RecoveredAt,
		SessionID:       a.SessionID,
		CreatedAt:       a.CreatedAt,
	}
}

// Donation represents donations table
type Donation struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	DonorName   string         `gorm:"size:150" json:"donor_name"`
	Anonymous   bool           `gorm:"default:false" json:"anonymous"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	EntryID     *uint          `json:"entry_id"`
	Date        time.Time      `gorm:"type:date;not null" json:"date"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationResponse DTO. Donor name is hidden for anonymous donations.
type DonationResponse struct {
	ID          uint      `json:"id"`
	DonorName   string    `json:"donor_name"`
	Anonymous   bool      `json:"anonymous"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d *Donation) ToResponse() *DonationResponse {
	donor := d.DonorName
	if d.Anonymous {
		donor = "Anonyme"
	}
	return &DonationResponse{
		ID:          d.ID,
		DonorName:   donor,
		Anonymous:   d.Anonymous,
		Amount:      d.Amount,
		Date:        d.Date,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Auth
		&User{},
		&RefreshToken{},
		// Association
		&Member{},
		&Session{},
		&Attendance{},
		// General fund
		&Entry{},
		&Exit{},
		// School fund
		&SchoolLoan{},
		&SchoolEntry{},
		// Tontines / aids / donations
		&Tontine{},
		&Aid{},
		&Donation{},
	)
}
