package services

import (
	"context"
	"errors"
	"testing"

	"assofi/internal/core/domain"
)

func TestCreateMemberDefaults(t *testing.T) {
	repo := &stubMemberRepo{}
	svc := NewMemberService(repo, nil)

	member, err := svc.Create(context.Background(), &MemberInput{
		FirstName: "Awa",
		LastName:  "Diallo",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if member.Status != domain.MemberActif {
		t.Errorf("default status = %q, want %q", member.Status, domain.MemberActif)
	}
	if member.Role != domain.RoleMembre {
		t.Errorf("default role = %q, want %q", member.Role, domain.RoleMembre)
	}
	if member.JoinDate.IsZero() {
		t.Error("join date should default to now")
	}
}

func TestCreateMemberValidation(t *testing.T) {
	repo := &stubMemberRepo{}
	svc := NewMemberService(repo, nil)

	tests := []struct {
		name    string
		input   MemberInput
		wantErr error
	}{
		{"missing first name", MemberInput{LastName: "Diallo"}, ErrNameRequired},
		{"missing last name", MemberInput{FirstName: "Awa"}, ErrNameRequired},
		{"unknown status", MemberInput{FirstName: "Awa", LastName: "Diallo", Status: "parti"}, ErrInvalidMemberStatus},
		{"unknown role", MemberInput{FirstName: "Awa", LastName: "Diallo", Role: "chef"}, ErrInvalidMemberRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), &tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetMemberStatus(t *testing.T) {
	repo := &stubMemberRepo{}
	svc := NewMemberService(repo, nil)

	member, err := svc.Create(context.Background(), &MemberInput{FirstName: "Awa", LastName: "Diallo"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.SetStatus(context.Background(), member.ID, domain.MemberSuspendu)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != domain.MemberSuspendu {
		t.Errorf("status = %q, want %q", updated.Status, domain.MemberSuspendu)
	}

	if _, err := svc.SetStatus(context.Background(), member.ID, "banni"); !errors.Is(err, ErrInvalidMemberStatus) {
		t.Errorf("SetStatus(banni) error = %v, want ErrInvalidMemberStatus", err)
	}

	if _, err := svc.SetStatus(context.Background(), 999, domain.MemberActif); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("SetStatus(999) error = %v, want ErrMemberNotFound", err)
	}
}

func TestDeleteMember(t *testing.T) {
	repo := &stubMemberRepo{}
	svc := NewMemberService(repo, nil)

	member, err := svc.Create(context.Background(), &MemberInput{FirstName: "Awa", LastName: "Diallo"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), member.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), member.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("Get after delete error = %v, want ErrMemberNotFound", err)
	}

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("Delete(999) error = %v, want ErrMemberNotFound", err)
	}
}

func TestUploadPhotoWithoutStore(t *testing.T) {
	repo := &stubMemberRepo{}
	svc := NewMemberService(repo, nil)

	member, err := svc.Create(context.Background(), &MemberInput{FirstName: "Awa", LastName: "Diallo"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UploadPhoto(context.Background(), member.ID, nil, nil); !errors.Is(err, ErrPhotoStoreOffline) {
		t.Errorf("UploadPhoto error = %v, want ErrPhotoStoreOffline", err)
	}
}
