package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"assofi/internal/core/domain"
)

func TestLedgerBalance(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(&stubEntryRepo{}, &stubExitRepo{})

	if _, err := svc.CreateEntry(ctx, &MovementInput{
		Type:   domain.TypeInscription,
		Amount: 100,
	}); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if _, err := svc.CreateExit(ctx, &MovementInput{
		Type:   domain.TypeDepenseBureau,
		Amount: 25,
	}); err != nil {
		t.Fatalf("CreateExit: %v", err)
	}

	summary, err := svc.Summary(ctx, 0)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalEntries != 100 {
		t.Errorf("TotalEntries = %v, want 100", summary.TotalEntries)
	}
	if summary.TotalExits != 25 {
		t.Errorf("TotalExits = %v, want 25", summary.TotalExits)
	}
	if summary.Balance != 75 {
		t.Errorf("Balance = %v, want 75", summary.Balance)
	}
}

func TestLedgerRejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(&stubEntryRepo{}, &stubExitRepo{})

	_, err := svc.CreateEntry(ctx, &MovementInput{Type: "loterie", Amount: 50})
	if !errors.Is(err, domain.ErrUnknownTransactionType) {
		t.Errorf("CreateEntry(loterie) error = %v, want ErrUnknownTransactionType", err)
	}

	_, err = svc.CreateExit(ctx, &MovementInput{Type: "loterie", Amount: 50})
	if !errors.Is(err, domain.ErrUnknownTransactionType) {
		t.Errorf("CreateExit(loterie) error = %v, want ErrUnknownTransactionType", err)
	}
}

func TestLedgerRejectsWrongCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(&stubEntryRepo{}, &stubExitRepo{})

	// An exit type cannot be recorded as an entry
	_, err := svc.CreateEntry(ctx, &MovementInput{Type: domain.TypeDepenseBureau, Amount: 50})
	if !errors.Is(err, ErrNotAnEntryType) {
		t.Errorf("CreateEntry(exit type) error = %v, want ErrNotAnEntryType", err)
	}

	// An entry type cannot be recorded as an exit
	_, err = svc.CreateExit(ctx, &MovementInput{Type: domain.TypeInscription, Amount: 50})
	if !errors.Is(err, ErrNotAnExitType) {
		t.Errorf("CreateExit(entry type) error = %v, want ErrNotAnExitType", err)
	}

	// School types never land in the general fund
	_, err = svc.CreateEntry(ctx, &MovementInput{Type: domain.TypeDepot, Amount: 50})
	if !errors.Is(err, ErrNotAnEntryType) {
		t.Errorf("CreateEntry(school type) error = %v, want ErrNotAnEntryType", err)
	}
}

func TestLedgerRejectsBadAmounts(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(&stubEntryRepo{}, &stubExitRepo{})

	cases := []struct {
		name   string
		amount float64
	}{
		{"zero", 0},
		{"negative", -10},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEntry(ctx, &MovementInput{
				Type:   domain.TypeInscription,
				Amount: tc.amount,
			})
			if !errors.Is(err, domain.ErrInvalidAmount) {
				t.Errorf("CreateEntry(%v) error = %v, want ErrInvalidAmount", tc.amount, err)
			}
		})
	}
}

func TestLedgerGetEntryNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(&stubEntryRepo{}, &stubExitRepo{})

	if _, err := svc.GetEntry(ctx, 99); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("GetEntry(99) error = %v, want ErrEntryNotFound", err)
	}
	if _, err := svc.GetExit(ctx, 99); !errors.Is(err, ErrExitNotFound) {
		t.Errorf("GetExit(99) error = %v, want ErrExitNotFound", err)
	}
}
