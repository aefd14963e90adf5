package services

import (
	"context"
	"log"
	"sort"
	"time"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/adapters/persistence/repositories"
	"assofi/internal/core/domain"
)

// MonthlyBuckets is the number of trailing months shown on the dashboard
const MonthlyBuckets = 6

// RecentActivityLimit caps the merged recent activity feed
const RecentActivityLimit = 5

// DashboardService aggregates every collection into one overview.
// A failing collection never sinks the whole dashboard: its section is
// zeroed and the response is flagged partial.
type DashboardService struct {
	memberRepo   repositories.MemberRepository
	sessionRepo  repositories.SessionRepository
	entryRepo    repositories.EntryRepository
	exitRepo     repositories.ExitRepository
	loanRepo     repositories.SchoolLoanRepository
	schoolRepo   repositories.SchoolEntryRepository
	tontineRepo  repositories.TontineRepository
	aidRepo      repositories.AidRepository
	donationRepo repositories.DonationRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	memberRepo repositories.MemberRepository,
	sessionRepo repositories.SessionRepository,
	entryRepo repositories.EntryRepository,
	exitRepo repositories.ExitRepository,
	loanRepo repositories.SchoolLoanRepository,
	schoolRepo repositories.SchoolEntryRepository,
	tontineRepo repositories.TontineRepository,
	aidRepo repositories.AidRepository,
	donationRepo repositories.DonationRepository,
) *DashboardService {
	return &DashboardService{
		memberRepo:   memberRepo,
		sessionRepo:  sessionRepo,
		entryRepo:    entryRepo,
		exitRepo:     exitRepo,
		loanRepo:     loanRepo,
		schoolRepo:   schoolRepo,
		tontineRepo:  tontineRepo,
		aidRepo:      aidRepo,
		donationRepo: donationRepo,
	}
}

// MonthlyPoint is one month of entry/exit totals
type MonthlyPoint struct {
	Month   string  `json:"month"` // YYYY-MM
	Entries float64 `json:"entries"`
	Exits   float64 `json:"exits"`
}

// ActivityItem is one line of the recent activity feed
type ActivityItem struct {
	Kind        string    `json:"kind"` // entree, sortie, tontine, aide, don
	Label       string    `json:"label"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// DashboardData represents the full dashboard payload
type DashboardData struct {
	// Members
	TotalMembers  int64 `json:"total_members"`
	ActiveMembers int64 `json:"active_members"`

	// General fund
	TotalEntries float64 `json:"total_entries"`
	TotalExits   float64 `json:"total_exits"`
	Balance      float64 `json:"balance"`

	// School fund
	SchoolEntries float64 `json:"school_entries"`
	SchoolLoaned  float64 `json:"school_loaned"`
	SchoolBalance float64 `json:"school_balance"`
	RunningLoans  int64   `json:"running_loans"`

	// Sessions
	TotalSessions  int64   `json:"total_sessions"`
	AttendanceRate float64 `json:"attendance_rate"`

	// Other collections
	TontineCount  int64   `json:"tontine_count"`
	AidPending    int64   `json:"aid_pending"`
	DonationTotal float64 `json:"donation_total"`

	// Breakdowns
	ByType  map[string]float64 `json:"by_type"`
	Monthly []MonthlyPoint     `json:"monthly"`

	// Feed
	RecentActivity []ActivityItem `json:"recent_activity"`

	// Partial is true when at least one collection could not be read
	Partial        bool     `json:"partial"`
	FailedSections []string `json:"failed_sections,omitempty"`
}

// markFailed zeroes nothing (sections start zeroed) and records the failure
func (d *DashboardData) markFailed(section string, err error) {
	log.Printf("⚠️ Dashboard section %s failed: %v", section, err)
	d.Partial = true
	d.FailedSections = append(d.FailedSections, section)
}

// Get builds the dashboard, tolerating per-collection failures
func (s *DashboardService) Get(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{
		ByType:  make(map[string]float64),
		Monthly: monthlySkeleton(time.Now()),
	}

	s.fillMembers(ctx, data)

	entries, exits := s.fillGeneralFund(ctx, data)
	s.fillSchoolFund(ctx, data)
	s.fillSessions(ctx, data)

	tontines := s.fillTontines(ctx, data)
	aids := s.fillAids(ctx, data)
	donations := s.fillDonations(ctx, data)

	data.RecentActivity = buildActivity(entries, exits, tontines, aids, donations)

	return data, nil
}

func (s *DashboardService) fillMembers(ctx context.Context, data *DashboardData) {
	total, err := s.memberRepo.Count(ctx)
	if err != nil {
		data.markFailed("members", err)
		return
	}
	data.TotalMembers = total

	active, err := s.memberRepo.CountByStatus(ctx, domain.MemberActif)
	if err != nil {
		data.markFailed("members", err)
		return
	}
	data.ActiveMembers = active
}

func (s *DashboardService) fillGeneralFund(ctx context.Context, data *DashboardData) ([]*models.Entry, []*models.Exit) {
	entries, err := s.entryRepo.ListAll(ctx)
	if err != nil {
		data.markFailed("entries", err)
		entries = nil
	}
	exits, err := s.exitRepo.ListAll(ctx)
	if err != nil {
		data.markFailed("exits", err)
		exits = nil
	}

	entryAmounts := make([]float64, len(entries))
	for i, e := range entries {
		entryAmounts[i] = e.Amount
		data.ByType[e.Type] += e.Amount
		bucketAdd(data.Monthly, e.Date, e.Amount, 0)
	}
	exitAmounts := make([]float64, len(exits))
	for i, e := range exits {
		exitAmounts[i] = e.Amount
		data.ByType[e.Type] += e.Amount
		bucketAdd(data.Monthly, e.Date, 0, e.Amount)
	}

	data.TotalEntries = domain.Sum(entryAmounts)
	data.TotalExits = domain.Sum(exitAmounts)
	data.Balance = domain.Balance(entryAmounts, exitAmounts)
	return entries, exits
}

func (s *DashboardService) fillSchoolFund(ctx context.Context, data *DashboardData) {
	schoolEntries, err := s.schoolRepo.ListAll(ctx)
	if err != nil {
		data.markFailed("school_entries", err)
		schoolEntries = nil
	}
	loans, err := s.loanRepo.ListAll(ctx)
	if err != nil {
		data.markFailed("school_loans", err)
		loans = nil
	}

	entryAmounts := make([]float64, len(schoolEntries))
	for i, e := range schoolEntries {
		entryAmounts[i] = e.Amount
	}
	loanAmounts := make([]float64, len(loans))
	for i, l := range loans {
		loanAmounts[i] = l.Amount
		if l.Status == domain.LoanEnCours {
			data.RunningLoans++
		}
	}

	data.SchoolEntries = domain.Sum(entryAmounts)
	data.SchoolLoaned = domain.Sum(loanAmounts)
	data.SchoolBalance = domain.Balance(entryAmounts, loanAmounts)
}

func (s *DashboardService) fillSessions(ctx context.Context, data *DashboardData) {
	count, err := s.sessionRepo.Count(ctx)
	if err != nil {
		data.markFailed("sessions", err)
		return
	}
	data.TotalSessions = count

	total, present, err := s.sessionRepo.CountAttendance(ctx)
	if err != nil {
		data.markFailed("sessions", err)
		return
	}
	if total > 0 {
		data.AttendanceRate = float64(present) / float64(total) * 100
	}
}

func (s *DashboardService) fillTontines(ctx context.Context, data *DashboardData) []*models.Tontine {
	tontines, err := s.tontineRepo.ListAll(ctx)
	if err != nil {
		data.markFailed("tontines", err)
		return nil
	}
	data.TontineCount = int64(len(tontines))
	return tontines
}

func (s *DashboardService) fillAids(ctx context.Context, data *DashboardData) []*models.Aid {
	aids, err := s.aidRepo.ListAll(ctx)
	if err != nil {
		data.markFailed("aids", err)
		return nil
	}
	for _, a := range aids {
		if a.Status == domain.AidAccorde {
			data.AidPending++
		}
	}
	return aids
}

func (s *DashboardService) fillDonations(ctx context.Context, data *DashboardData) []*models.Donation {
	donations, err := s.donationRepo.ListAll(ctx)
	if err != nil {
		data.markFailed("donations", err)
		return nil
	}
	amounts := make([]float64, len(donations))
	for i, d := range donations {
		amounts[i] = d.Amount
	}
	data.DonationTotal = domain.Sum(amounts)
	return donations
}

// monthlySkeleton builds the trailing month buckets ending at now
func monthlySkeleton(now time.Time) []MonthlyPoint {
	points := make([]MonthlyPoint, MonthlyBuckets)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < MonthlyBuckets; i++ {
		m := first.AddDate(0, i-MonthlyBuckets+1, 0)
		points[i] = MonthlyPoint{Month: m.Format("2006-01")}
	}
	return points
}

func bucketAdd(points []MonthlyPoint, date time.Time, entry, exit float64) {
	key := date.Format("2006-01")
	for i := range points {
		if points[i].Month == key {
			points[i].Entries += entry
			points[i].Exits += exit
			return
		}
	}
}

// buildActivity merges the collections into one feed, newest first
func buildActivity(
	entries []*models.Entry,
	exits []*models.Exit,
	tontines []*models.Tontine,
	aids []*models.Aid,
	donations []*models.Donation,
) []ActivityItem {
	var items []ActivityItem

	for _, e := range entries {
		items = append(items, ActivityItem{
			Kind: "entree", Label: e.Type, Amount: e.Amount,
			Date: e.Date, Description: e.Description,
		})
	}
	for _, e := range exits {
		items = append(items, ActivityItem{
			Kind: "sortie", Label: e.Type, Amount: e.Amount,
			Date: e.Date, Description: e.Description,
		})
	}
	for _, t := range tontines {
		items = append(items, ActivityItem{
			Kind: "tontine", Label: "tontine", Amount: domain.TontinePot(t.IndividualAmount, t.ParticipantCount),
			Date: t.SessionDate, Description: "Tontine",
		})
	}
	for _, a := range aids {
		items = append(items, ActivityItem{
			Kind: "aide", Label: a.Type, Amount: a.Amount,
			Date: a.GrantedAt, Description: "Aide sociale",
		})
	}
	for _, d := range donations {
		label := domain.TypeDonPublic
		if d.Anonymous {
			label = domain.TypeDonAnonyme
		}
		items = append(items, ActivityItem{
			Kind: "don", Label: label, Amount: d.Amount,
			Date: d.Date, Description: d.Description,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	if len(items) > RecentActivityLimit {
		items = items[:RecentActivityLimit]
	}
	return items
}
