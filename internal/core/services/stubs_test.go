package services

import (
	"context"
	"errors"
	"time"

	"assofi/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// errCollectionDown simulates a backing collection outage
var errCollectionDown = errors.New("collection unavailable")

// ---- entries ----

type stubEntryRepo struct {
	entries []*models.Entry
	nextID  uint
	fail    bool
}

func (r *stubEntryRepo) Create(ctx context.Context, entry *models.Entry) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	entry.ID = r.nextID
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubEntryRepo) GetByID(ctx context.Context, id uint) (*models.Entry, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEntryRepo) List(ctx context.Context, offset, limit, year int) ([]*models.Entry, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.entries, int64(len(r.entries)), nil
}

func (r *stubEntryRepo) ListAll(ctx context.Context) ([]*models.Entry, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.entries, nil
}

func (r *stubEntryRepo) ListByYear(ctx context.Context, year int) ([]*models.Entry, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	var out []*models.Entry
	for _, e := range r.entries {
		if e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) Update(ctx context.Context, entry *models.Entry) error {
	if r.fail {
		return errCollectionDown
	}
	for i, e := range r.entries {
		if e.ID == entry.ID {
			r.entries[i] = entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubEntryRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ---- exits ----

type stubExitRepo struct {
	exits  []*models.Exit
	nextID uint
	fail   bool
}

func (r *stubExitRepo) Create(ctx context.Context, exit *models.Exit) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	exit.ID = r.nextID
	r.exits = append(r.exits, exit)
	return nil
}

func (r *stubExitRepo) GetByID(ctx context.Context, id uint) (*models.Exit, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, e := range r.exits {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubExitRepo) List(ctx context.Context, offset, limit, year int) ([]*models.Exit, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.exits, int64(len(r.exits)), nil
}

func (r *stubExitRepo) ListAll(ctx context.Context) ([]*models.Exit, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.exits, nil
}

func (r *stubExitRepo) ListByYear(ctx context.Context, year int) ([]*models.Exit, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	var out []*models.Exit
	for _, e := range r.exits {
		if e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubExitRepo) Update(ctx context.Context, exit *models.Exit) error {
	if r.fail {
		return errCollectionDown
	}
	for i, e := range r.exits {
		if e.ID == exit.ID {
			r.exits[i] = exit
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubExitRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, e := range r.exits {
		if e.ID == id {
			r.exits = append(r.exits[:i], r.exits[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ---- school loans ----

type stubLoanRepo struct {
	loans  []*models.SchoolLoan
	nextID uint
	fail   bool
}

func (r *stubLoanRepo) Create(ctx context.Context, loan *models.SchoolLoan) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	loan.ID = r.nextID
	r.loans = append(r.loans, loan)
	return nil
}

func (r *stubLoanRepo) GetByID(ctx context.Context, id uint) (*models.SchoolLoan, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, l := range r.loans {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLoanRepo) List(ctx context.Context, offset, limit, year int) ([]*models.SchoolLoan, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.loans, int64(len(r.loans)), nil
}

func (r *stubLoanRepo) ListAll(ctx context.Context) ([]*models.SchoolLoan, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.loans, nil
}

func (r *stubLoanRepo) ListOverdue(ctx context.Context, before time.Time) ([]*models.SchoolLoan, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	var out []*models.SchoolLoan
	for _, l := range r.loans {
		if l.Status == "en_cours" && l.RepaymentDeadline.Before(before) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoanRepo) Update(ctx context.Context, loan *models.SchoolLoan) error {
	if r.fail {
		return errCollectionDown
	}
	for i, l := range r.loans {
		if l.ID == loan.ID {
			r.loans[i] = loan
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubLoanRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, l := range r.loans {
		if l.ID == id {
			r.loans = append(r.loans[:i], r.loans[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ---- school entries ----

type stubSchoolEntryRepo struct {
	entries []*models.SchoolEntry
	nextID  uint
	fail    bool
}

func (r *stubSchoolEntryRepo) Create(ctx context.Context, entry *models.SchoolEntry) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	entry.ID = r.nextID
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubSchoolEntryRepo) GetByID(ctx context.Context, id uint) (*models.SchoolEntry, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSchoolEntryRepo) List(ctx context.Context, offset, limit, year int) ([]*models.SchoolEntry, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.entries, int64(len(r.entries)), nil
}

func (r *stubSchoolEntryRepo) ListAll(ctx context.Context) ([]*models.SchoolEntry, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.entries, nil
}

func (r *stubSchoolEntryRepo) ListByLoanID(ctx context.Context, loanID uint) ([]*models.SchoolEntry, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	var out []*models.SchoolEntry
	for _, e := range r.entries {
		if e.LoanID != nil && *e.LoanID == loanID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubSchoolEntryRepo) Update(ctx context.Context, entry *models.SchoolEntry) error {
	if r.fail {
		return errCollectionDown
	}
	for i, e := range r.entries {
		if e.ID == entry.ID {
			r.entries[i] = entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubSchoolEntryRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ---- tontines ----

type stubTontineRepo struct {
	tontines []*models.Tontine
	nextID   uint
	fail     bool
}

func (r *stubTontineRepo) Create(ctx context.Context, tontine *models.Tontine) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	tontine.ID = r.nextID
	r.tontines = append(r.tontines, tontine)
	return nil
}

func (r *stubTontineRepo) GetByID(ctx context.Context, id uint) (*models.Tontine, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, t := range r.tontines {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTontineRepo) List(ctx context.Context, offset, limit int) ([]*models.Tontine, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.tontines, int64(len(r.tontines)), nil
}

func (r *stubTontineRepo) ListAll(ctx context.Context) ([]*models.Tontine, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.tontines, nil
}

func (r *stubTontineRepo) Update(ctx context.Context, tontine *models.Tontine) error {
	if r.fail {
		return errCollectionDown
	}
	for i, t := range r.tontines {
		if t.ID == tontine.ID {
			r.tontines[i] = tontine
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubTontineRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, t := range r.tontines {
		if t.ID == id {
			r.tontines = append(r.tontines[:i], r.tontines[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ---- aids ----

type stubAidRepo struct {
	aids   []*models.Aid
	nextID uint
	fail   bool
}

func (r *stubAidRepo) Create(ctx context.Context, aid *models.Aid) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	aid.ID = r.nextID
	r.aids = append(r.aids, aid)
	return nil
}

func (r *stubAidRepo) GetByID(ctx context.Context, id uint) (*models.Aid, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, a := range r.aids {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAidRepo) List(ctx context.Context, offset, limit int) ([]*models.Aid, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.aids, int64(len(r.aids)), nil
}

func (r *stubAidRepo) ListAll(ctx context.Context) ([]*models.Aid, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.aids, nil
}

func (r *stubAidRepo) Update(ctx context.Context, aid *models.Aid) error {
	if r.fail {
		return errCollectionDown
	}
	for i, a := range r.aids {
		if a.ID == aid.ID {
			r.aids[i] = aid
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubAidRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, a := range r.aids {
		if a.ID == id {
			r.aids = append(r.aids[:i], r.aids[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ---- donations ----

type stubDonationRepo struct {
	donations []*models.Donation
	nextID    uint
	fail      bool
}

func (r *stubDonationRepo) Create(ctx context.Context, donation *models.Donation) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	donation.ID = r.nextID
	r.donations = append(r.donations, donation)
	return nil
}

func (r *stubDonationRepo) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, d := range r.donations {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDonationRepo) List(ctx context.Context, offset, limit int) ([]*models.Donation, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.donations, int64(len(r.donations)), nil
}

func (r *stubDonationRepo) ListAll(ctx context.Context) ([]*models.Donation, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.donations, nil
}

func (r *stubDonationRepo) Update(ctx context.Context, donation *models.Donation) error {
	if r.fail {
		return errCollectionDown
	}
	for i, d := range r.donations {
		if d.ID == donation.ID {
			r.donations[i] = donation
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubDonationRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, d := range r.donations {
		if d.ID == id {
			r.donations = append(r.donations[:i], r.donations[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ---- members ----

type stubMemberRepo struct {
	members []*models.Member
	nextID  uint
	fail    bool
}

func (r *stubMemberRepo) Create(ctx context.Context, member *models.Member) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	member.ID = r.nextID
	r.members = append(r.members, member)
	return nil
}

func (r *stubMemberRepo) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMemberRepo) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.members, int64(len(r.members)), nil
}

func (r *stubMemberRepo) ListAll(ctx context.Context) ([]*models.Member, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.members, nil
}

func (r *stubMemberRepo) Search(ctx context.Context, query string, limit int) ([]*models.Member, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.members, nil
}

func (r *stubMemberRepo) Update(ctx context.Context, member *models.Member) error {
	if r.fail {
		return errCollectionDown
	}
	for i, m := range r.members {
		if m.ID == member.ID {
			r.members[i] = member
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubMemberRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, m := range r.members {
		if m.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubMemberRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	if r.fail {
		return 0, errCollectionDown
	}
	var n int64
	for _, m := range r.members {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubMemberRepo) Count(ctx context.Context) (int64, error) {
	if r.fail {
		return 0, errCollectionDown
	}
	return int64(len(r.members)), nil
}

// ---- sessions ----

type stubSessionRepo struct {
	sessions   []*models.Session
	attendance []*models.Attendance
	nextID     uint
	fail       bool
}

func (r *stubSessionRepo) Create(ctx context.Context, session *models.Session) error {
	if r.fail {
		return errCollectionDown
	}
	r.nextID++
	session.ID = r.nextID
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *stubSessionRepo) GetByID(ctx context.Context, id uint) (*models.Session, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	for _, s := range r.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSessionRepo) List(ctx context.Context, offset, limit int) ([]*models.Session, int64, error) {
	if r.fail {
		return nil, 0, errCollectionDown
	}
	return r.sessions, int64(len(r.sessions)), nil
}

func (r *stubSessionRepo) ListAll(ctx context.Context) ([]*models.Session, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	return r.sessions, nil
}

func (r *stubSessionRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*models.Session, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	var out []*models.Session
	for _, s := range r.sessions {
		if !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSessionRepo) Update(ctx context.Context, session *models.Session) error {
	if r.fail {
		return errCollectionDown
	}
	for i, s := range r.sessions {
		if s.ID == session.ID {
			r.sessions[i] = session
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubSessionRepo) Delete(ctx context.Context, id uint) error {
	if r.fail {
		return errCollectionDown
	}
	for i, s := range r.sessions {
		if s.ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubSessionRepo) Count(ctx context.Context) (int64, error) {
	if r.fail {
		return 0, errCollectionDown
	}
	return int64(len(r.sessions)), nil
}

func (r *stubSessionRepo) UpsertAttendance(ctx context.Context, att *models.Attendance) error {
	if r.fail {
		return errCollectionDown
	}
	for _, a := range r.attendance {
		if a.SessionID == att.SessionID && a.MemberID == att.MemberID {
			a.Present = att.Present
			return nil
		}
	}
	r.attendance = append(r.attendance, att)
	return nil
}

func (r *stubSessionRepo) ListAttendance(ctx context.Context, sessionID uint) ([]*models.Attendance, error) {
	if r.fail {
		return nil, errCollectionDown
	}
	var out []*models.Attendance
	for _, a := range r.attendance {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubSessionRepo) CountAttendance(ctx context.Context) (total, present int64, err error) {
	if r.fail {
		return 0, 0, errCollectionDown
	}
	for _, a := range r.attendance {
		total++
		if a.Present {
			present++
		}
	}
	return total, present, nil
}
