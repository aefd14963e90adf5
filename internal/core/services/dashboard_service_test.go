package services

import (
	"context"
	"testing"
	"time"

	"assofi/internal/adapters/persistence/models"
	"assofi/internal/core/domain"
)

func newDashboardFixture() (*DashboardService, *stubEntryRepo, *stubExitRepo, *stubAidRepo) {
	entryRepo := &stubEntryRepo{}
	exitRepo := &stubExitRepo{}
	aidRepo := &stubAidRepo{}
	svc := NewDashboardService(
		&stubMemberRepo{},
		&stubSessionRepo{},
		entryRepo,
		exitRepo,
		&stubLoanRepo{},
		&stubSchoolEntryRepo{},
		&stubTontineRepo{},
		aidRepo,
		&stubDonationRepo{},
	)
	return svc, entryRepo, exitRepo, aidRepo
}

func TestDashboardBalance(t *testing.T) {
	ctx := context.Background()
	svc, entryRepo, exitRepo, _ := newDashboardFixture()

	now := time.Now()
	entryRepo.Create(ctx, &models.Entry{Type: domain.TypeInscription, Amount: 100, Date: now})
	exitRepo.Create(ctx, &models.Exit{Type: domain.TypeDepenseBureau, Amount: 25, Date: now})

	data, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data.Partial {
		t.Errorf("Partial = true with healthy collections, failed: %v", data.FailedSections)
	}
	if data.Balance != 75 {
		t.Errorf("Balance = %v, want 75", data.Balance)
	}
	if data.ByType[domain.TypeInscription] != 100 {
		t.Errorf("ByType[inscription] = %v, want 100", data.ByType[domain.TypeInscription])
	}
	if len(data.Monthly) != MonthlyBuckets {
		t.Fatalf("Monthly buckets = %d, want %d", len(data.Monthly), MonthlyBuckets)
	}
	current := data.Monthly[MonthlyBuckets-1]
	if current.Month != now.Format("2006-01") {
		t.Errorf("last bucket = %q, want %q", current.Month, now.Format("2006-01"))
	}
	if current.Entries != 100 || current.Exits != 25 {
		t.Errorf("current bucket = %v/%v, want 100/25", current.Entries, current.Exits)
	}
}

func TestDashboardToleratesOneFailingCollection(t *testing.T) {
	ctx := context.Background()
	svc, entryRepo, exitRepo, aidRepo := newDashboardFixture()

	entryRepo.Create(ctx, &models.Entry{Type: domain.TypeInscription, Amount: 100, Date: time.Now()})
	exitRepo.Create(ctx, &models.Exit{Type: domain.TypeDepenseBureau, Amount: 25, Date: time.Now()})
	aidRepo.fail = true

	data, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get should never fail outright: %v", err)
	}
	if !data.Partial {
		t.Error("Partial = false, want true when a collection is down")
	}
	if len(data.FailedSections) != 1 || data.FailedSections[0] != "aids" {
		t.Errorf("FailedSections = %v, want [aids]", data.FailedSections)
	}

	// The healthy sections still carry their numbers
	if data.Balance != 75 {
		t.Errorf("Balance = %v, want 75 despite the aids outage", data.Balance)
	}
	if data.AidPending != 0 {
		t.Errorf("AidPending = %d, want 0 for the failed section", data.AidPending)
	}
}

func TestDashboardRecentActivity(t *testing.T) {
	ctx := context.Background()
	svc, entryRepo, exitRepo, _ := newDashboardFixture()

	base := time.Now()
	for i := 0; i < 4; i++ {
		entryRepo.Create(ctx, &models.Entry{
			Type: domain.TypeInscription, Amount: float64(10 + i),
			Date: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	for i := 0; i < 3; i++ {
		exitRepo.Create(ctx, &models.Exit{
			Type: domain.TypeFraisRepas, Amount: float64(5 + i),
			Date: base.Add(-time.Duration(i*2+1) * time.Hour),
		})
	}

	data, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(data.RecentActivity) != RecentActivityLimit {
		t.Fatalf("RecentActivity = %d items, want %d", len(data.RecentActivity), RecentActivityLimit)
	}
	for i := 1; i < len(data.RecentActivity); i++ {
		if data.RecentActivity[i].Date.After(data.RecentActivity[i-1].Date) {
			t.Errorf("activity not sorted newest first at index %d", i)
		}
	}
	if data.RecentActivity[0].Amount != 10 {
		t.Errorf("newest item amount = %v, want 10", data.RecentActivity[0].Amount)
	}
}

func TestDashboardAttendanceRate(t *testing.T) {
	ctx := context.Background()
	sessionRepo := &stubSessionRepo{}
	svc := NewDashboardService(
		&stubMemberRepo{},
		sessionRepo,
		&stubEntryRepo{},
		&stubExitRepo{},
		&stubLoanRepo{},
		&stubSchoolEntryRepo{},
		&stubTontineRepo{},
		&stubAidRepo{},
		&stubDonationRepo{},
	)

	sessionRepo.Create(ctx, &models.Session{Date: time.Now(), Type: domain.SessionOrdinaire})
	sessionRepo.UpsertAttendance(ctx, &models.Attendance{SessionID: 1, MemberID: 1, Present: true})
	sessionRepo.UpsertAttendance(ctx, &models.Attendance{SessionID: 1, MemberID: 2, Present: true})
	sessionRepo.UpsertAttendance(ctx, &models.Attendance{SessionID: 1, MemberID: 3, Present: false})
	sessionRepo.UpsertAttendance(ctx, &models.Attendance{SessionID: 1, MemberID: 4, Present: false})

	data, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", data.TotalSessions)
	}
	if data.AttendanceRate != 50 {
		t.Errorf("AttendanceRate = %v, want 50", data.AttendanceRate)
	}
}
