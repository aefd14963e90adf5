package domain

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		transactionType string
		category        Category
		fund            Fund
	}{
		{TypeDonAnonyme, CategoryEntry, FundGeneral},
		{TypeDonPublic, CategoryEntry, FundGeneral},
		{TypeRecouvrementAide, CategoryEntry, FundGeneral},
		{TypeInscription, CategoryEntry, FundGeneral},
		{TypeMaintenanceTontine, CategoryEntry, FundGeneral},
		{TypeFondsCaisse, CategoryEntry, FundGeneral},
		{TypeAideDecesMere, CategoryExit, FundGeneral},
		{TypeAideDecesPere, CategoryExit, FundGeneral},
		{TypeAideMaladie, CategoryExit, FundGeneral},
		{TypeAideNaissance, CategoryExit, FundGeneral},
		{TypeAideMariage, CategoryExit, FundGeneral},
		{TypeFraisEntretienSalle, CategoryExit, FundGeneral},
		{TypeFraisRepas, CategoryExit, FundGeneral},
		{TypeFraisBoisson, CategoryExit, FundGeneral},
		{TypeDepenseBureau, CategoryExit, FundGeneral},
		{TypeDepenseStatutaire, CategoryExit, FundGeneral},
		{TypeDepot, CategoryEntry, FundSchool},
		{TypeRemboursement, CategoryEntry, FundSchool},
		{TypeEmprunt, CategoryExit, FundSchool},
	}

	for i, c := range cases {
		info, err := Classify(c.transactionType)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if info.Category != c.category {
			t.Fatalf("case %d: expected category %s, got %s", i, c.category, info.Category)
		}
		if info.Fund != c.fund {
			t.Fatalf("case %d: expected fund %s, got %s", i, c.fund, info.Fund)
		}
	}

	if len(cases) != len(typeTable) {
		t.Fatalf("classification table has %d types, cases cover %d", len(typeTable), len(cases))
	}
}

func TestClassifyUnknownType(t *testing.T) {
	cases := []string{"", "loterie", "don", "Dépôt", "aide deces mere"}

	for i, c := range cases {
		_, err := Classify(c)
		if !errors.Is(err, ErrUnknownTransactionType) {
			t.Fatalf("case %d: expected ErrUnknownTransactionType for %q, got %v", i, c, err)
		}
	}
}

func TestIsAidType(t *testing.T) {
	cases := []struct {
		transactionType string
		want            bool
	}{
		{TypeAideMaladie, true},
		{TypeAideMariage, true},
		{TypeAideDecesMere, true},
		{TypeFraisRepas, false},
		{TypeDonPublic, false},
		{"aide inconnue", false},
	}

	for i, c := range cases {
		if got := IsAidType(c.transactionType); got != c.want {
			t.Fatalf("case %d: IsAidType(%q) = %v, want %v", i, c.transactionType, got, c.want)
		}
	}
}

func TestClosedSets(t *testing.T) {
	if !IsValidPaymentMode(PaymentEspeces) || !IsValidPaymentMode(PaymentMbway) || !IsValidPaymentMode(PaymentMixte) {
		t.Fatal("known payment modes rejected")
	}
	if IsValidPaymentMode("virement") {
		t.Fatal("unknown payment mode accepted")
	}

	if !IsValidAidStatus(AidAccorde) || !IsValidAidStatus(AidRecouvre) {
		t.Fatal("known aid statuses rejected")
	}
	if IsValidAidStatus("annulé") || IsValidAidStatus("") {
		t.Fatal("unknown aid status accepted")
	}

	if !IsValidLoanStatus(LoanEnCours) || !IsValidLoanStatus(LoanRembourse) {
		t.Fatal("known loan statuses rejected")
	}
	if IsValidLoanStatus("en retard") {
		t.Fatal("unknown loan status accepted")
	}

	if !IsValidMemberStatus(MemberActif) || IsValidMemberStatus("actif") {
		t.Fatal("member status set mismatch")
	}
	if !IsValidSessionType(SessionOrdinaire) || IsValidSessionType("annuelle") {
		t.Fatal("session type set mismatch")
	}
}
