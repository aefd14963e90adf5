package services

import (
	"context"
	"errors"
	"testing"

	"assofi/internal/core/domain"
)

func TestTontineCreatePostsFeeOnce(t *testing.T) {
	ctx := context.Background()
	entryRepo := &stubEntryRepo{}
	svc := NewTontineService(&stubTontineRepo{}, entryRepo)

	tontine, err := svc.Create(ctx, &CreateTontineInput{
		ListNumber:       1,
		IndividualAmount: 500,
		ParticipantCount: 3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	pot := domain.TontinePot(tontine.IndividualAmount, tontine.ParticipantCount)
	if pot != 1500 {
		t.Errorf("pot = %v, want 1500", pot)
	}
	if net := domain.TontineNet(pot); net != 1490 {
		t.Errorf("net = %v, want 1490", net)
	}

	if len(entryRepo.entries) != 1 {
		t.Fatalf("fee entries = %d, want exactly 1", len(entryRepo.entries))
	}
	fee := entryRepo.entries[0]
	if fee.Type != domain.TypeMaintenanceTontine {
		t.Errorf("fee type = %q, want %q", fee.Type, domain.TypeMaintenanceTontine)
	}
	if fee.Amount != domain.TontineMaintenanceFee {
		t.Errorf("fee amount = %v, want %v", fee.Amount, domain.TontineMaintenanceFee)
	}
	if tontine.FeeEntryID == nil || *tontine.FeeEntryID != fee.ID {
		t.Errorf("FeeEntryID = %v, want %d", tontine.FeeEntryID, fee.ID)
	}
}

func TestTontineCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewTontineService(&stubTontineRepo{}, &stubEntryRepo{})

	cases := []struct {
		name    string
		input   CreateTontineInput
		wantErr error
	}{
		{"list zero", CreateTontineInput{ListNumber: 0, IndividualAmount: 500, ParticipantCount: 3}, ErrInvalidListNumber},
		{"list four", CreateTontineInput{ListNumber: 4, IndividualAmount: 500, ParticipantCount: 3}, ErrInvalidListNumber},
		{"bad amount", CreateTontineInput{ListNumber: 2, IndividualAmount: -1, ParticipantCount: 3}, domain.ErrInvalidAmount},
		{"no participants", CreateTontineInput{ListNumber: 2, IndividualAmount: 500, ParticipantCount: 0}, ErrInvalidParticipants},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, &tc.input); !errors.Is(err, tc.wantErr) {
				t.Errorf("Create error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestTontineDeleteRemovesFeeEntry(t *testing.T) {
	ctx := context.Background()
	entryRepo := &stubEntryRepo{}
	svc := NewTontineService(&stubTontineRepo{}, entryRepo)

	tontine, err := svc.Create(ctx, &CreateTontineInput{
		ListNumber:       3,
		IndividualAmount: 200,
		ParticipantCount: 5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, tontine.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(entryRepo.entries) != 0 {
		t.Errorf("fee entries after delete = %d, want 0", len(entryRepo.entries))
	}
}

func TestTontineSummary(t *testing.T) {
	ctx := context.Background()
	svc := NewTontineService(&stubTontineRepo{}, &stubEntryRepo{})

	if _, err := svc.Create(ctx, &CreateTontineInput{ListNumber: 1, IndividualAmount: 500, ParticipantCount: 3}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, &CreateTontineInput{ListNumber: 2, IndividualAmount: 100, ParticipantCount: 10}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Count != 2 {
		t.Errorf("Count = %d, want 2", summary.Count)
	}
	if summary.TotalPots != 2500 {
		t.Errorf("TotalPots = %v, want 2500", summary.TotalPots)
	}
	if summary.TotalNets != 2480 {
		t.Errorf("TotalNets = %v, want 2480", summary.TotalNets)
	}
	if summary.TotalFees != 20 {
		t.Errorf("TotalFees = %v, want 20", summary.TotalFees)
	}
}
