package services

import (
	"context"
	"errors"
	"testing"

	"assofi/internal/core/domain"
)

func TestCreateLoanInterest(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name         string
		amount       float64
		rate         *float64
		wantInterest float64
		wantDue      float64
	}{
		{"default rate", 800, nil, 80, 880},
		{"explicit rate", 1000, ratePtr(5), 50, 1050},
		{"zero rate", 500, ratePtr(0), 0, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSchoolService(&stubLoanRepo{}, &stubSchoolEntryRepo{})
			loan, err := svc.CreateLoan(ctx, &CreateLoanInput{
				Amount:       tc.amount,
				InterestRate: tc.rate,
			})
			if err != nil {
				t.Fatalf("CreateLoan: %v", err)
			}
			if loan.InterestValue != tc.wantInterest {
				t.Errorf("InterestValue = %v, want %v", loan.InterestValue, tc.wantInterest)
			}
			if due := domain.LoanTotalDue(loan.Amount, loan.InterestRate); due != tc.wantDue {
				t.Errorf("total due = %v, want %v", due, tc.wantDue)
			}
			if loan.Status != domain.LoanEnCours {
				t.Errorf("Status = %q, want %q", loan.Status, domain.LoanEnCours)
			}
		})
	}
}

func TestCreateLoanRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := NewSchoolService(&stubLoanRepo{}, &stubSchoolEntryRepo{})

	if _, err := svc.CreateLoan(ctx, &CreateLoanInput{Amount: 0}); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("CreateLoan(amount=0) error = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.CreateLoan(ctx, &CreateLoanInput{Amount: 100, InterestRate: ratePtr(-5)}); !errors.Is(err, domain.ErrInvalidRate) {
		t.Errorf("CreateLoan(rate=-5) error = %v, want ErrInvalidRate", err)
	}
}

func TestSetLoanStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewSchoolService(&stubLoanRepo{}, &stubSchoolEntryRepo{})

	loan, err := svc.CreateLoan(ctx, &CreateLoanInput{Amount: 800})
	if err != nil {
		t.Fatalf("CreateLoan: %v", err)
	}

	// Toggle to rembourse
	loan, err = svc.SetLoanStatus(ctx, loan.ID, domain.LoanRembourse)
	if err != nil {
		t.Fatalf("SetLoanStatus: %v", err)
	}
	if loan.Status != domain.LoanRembourse {
		t.Errorf("Status = %q, want %q", loan.Status, domain.LoanRembourse)
	}

	// Setting the same status again is a no-op
	loan, err = svc.SetLoanStatus(ctx, loan.ID, domain.LoanRembourse)
	if err != nil {
		t.Fatalf("SetLoanStatus (repeat): %v", err)
	}
	if loan.Status != domain.LoanRembourse {
		t.Errorf("Status after repeat = %q, want %q", loan.Status, domain.LoanRembourse)
	}

	// Toggle back
	loan, err = svc.SetLoanStatus(ctx, loan.ID, domain.LoanEnCours)
	if err != nil {
		t.Fatalf("SetLoanStatus (back): %v", err)
	}
	if loan.Status != domain.LoanEnCours {
		t.Errorf("Status = %q, want %q", loan.Status, domain.LoanEnCours)
	}

	// Anything outside the closed set is rejected
	if _, err := svc.SetLoanStatus(ctx, loan.ID, "annulé"); !errors.Is(err, ErrUnknownLoanStatus) {
		t.Errorf("SetLoanStatus(annulé) error = %v, want ErrUnknownLoanStatus", err)
	}
}

func TestRepaymentsDoNotFlipLoanStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewSchoolService(&stubLoanRepo{}, &stubSchoolEntryRepo{})

	loan, err := svc.CreateLoan(ctx, &CreateLoanInput{Amount: 800})
	if err != nil {
		t.Fatalf("CreateLoan: %v", err)
	}

	// Repay the full amount due
	_, err = svc.CreateEntry(ctx, &CreateSchoolEntryInput{
		Type:           domain.TypeRemboursement,
		Amount:         880,
		RepaymentKind:  domain.RepaymentLesDeux,
		RepaymentScope: domain.RepaymentSolde,
		LoanID:         &loan.ID,
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	loan, err = svc.GetLoan(ctx, loan.ID)
	if err != nil {
		t.Fatalf("GetLoan: %v", err)
	}
	if loan.Status != domain.LoanEnCours {
		t.Errorf("Status = %q after repayment, want %q (sign-off is manual)", loan.Status, domain.LoanEnCours)
	}

	_, sum, err := svc.LoanRepayments(ctx, loan.ID)
	if err != nil {
		t.Fatalf("LoanRepayments: %v", err)
	}
	if sum != 880 {
		t.Errorf("repayment sum = %v, want 880", sum)
	}
}

func TestCreateSchoolEntryValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewSchoolService(&stubLoanRepo{}, &stubSchoolEntryRepo{})

	// Only dépôt and remboursement belong to the school fund
	_, err := svc.CreateEntry(ctx, &CreateSchoolEntryInput{Type: domain.TypeInscription, Amount: 50})
	if !errors.Is(err, ErrInvalidSchoolType) {
		t.Errorf("CreateEntry(inscription) error = %v, want ErrInvalidSchoolType", err)
	}

	_, err = svc.CreateEntry(ctx, &CreateSchoolEntryInput{
		Type:          domain.TypeRemboursement,
		Amount:        50,
		RepaymentKind: "acompte",
	})
	if !errors.Is(err, ErrInvalidRepaymentKind) {
		t.Errorf("CreateEntry(kind=acompte) error = %v, want ErrInvalidRepaymentKind", err)
	}

	// A dépôt never carries repayment metadata
	entry, err := svc.CreateEntry(ctx, &CreateSchoolEntryInput{
		Type:          domain.TypeDepot,
		Amount:        200,
		RepaymentKind: domain.RepaymentEmprunt,
	})
	if err != nil {
		t.Fatalf("CreateEntry(dépôt): %v", err)
	}
	if entry.RepaymentKind != "" || entry.LoanID != nil {
		t.Errorf("dépôt kept repayment fields: kind=%q loan=%v", entry.RepaymentKind, entry.LoanID)
	}
}

func TestSchoolSummary(t *testing.T) {
	ctx := context.Background()
	svc := NewSchoolService(&stubLoanRepo{}, &stubSchoolEntryRepo{})

	if _, err := svc.CreateEntry(ctx, &CreateSchoolEntryInput{Type: domain.TypeDepot, Amount: 1000}); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if _, err := svc.CreateLoan(ctx, &CreateLoanInput{Amount: 800}); err != nil {
		t.Fatalf("CreateLoan: %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalEntries != 1000 {
		t.Errorf("TotalEntries = %v, want 1000", summary.TotalEntries)
	}
	if summary.TotalLoaned != 800 {
		t.Errorf("TotalLoaned = %v, want 800", summary.TotalLoaned)
	}
	if summary.Balance != 200 {
		t.Errorf("Balance = %v, want 200", summary.Balance)
	}
	if summary.RunningLoans != 1 || summary.RepaidLoans != 0 {
		t.Errorf("loan counts = %d/%d, want 1/0", summary.RunningLoans, summary.RepaidLoans)
	}
	if summary.ExpectedInterest != 80 {
		t.Errorf("ExpectedInterest = %v, want 80", summary.ExpectedInterest)
	}
}

func ratePtr(v float64) *float64 { return &v }
