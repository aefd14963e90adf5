package domain

import "fmt"

// Category tells whether a movement adds to or removes from a fund
type Category string

const (
	CategoryEntry Category = "entree"
	CategoryExit  Category = "sortie"
)

// Fund identifies which cash box a movement belongs to
type Fund string

const (
	FundGeneral Fund = "generale"
	FundSchool  Fund = "scolaire"
)

// Transaction types - General fund entries
const (
	TypeDonAnonyme        = "don anonyme"
	TypeDonPublic         = "don public"
	TypeRecouvrementAide  = "recouvrement aide"
	TypeInscription       = "inscription"
	TypeMaintenanceTontine = "maintenance tontine"
	TypeFondsCaisse       = "fonds caisse"
)

// Transaction types - General fund exits
const (
	TypeAideDecesMere       = "aide décès mère"
	TypeAideDecesPere       = "aide décès père"
	TypeAideMaladie         = "aide maladie"
	TypeAideNaissance       = "aide naissance"
	TypeAideMariage         = "aide mariage"
	TypeFraisEntretienSalle = "frais entretien salle"
	TypeFraisRepas          = "frais repas"
	TypeFraisBoisson        = "frais boisson"
	TypeDepenseBureau       = "dépense bureau"
	TypeDepenseStatutaire   = "dépense statutaire"
)

// Transaction types - School fund
const (
	TypeDepot         = "dépôt"
	TypeRemboursement = "remboursement"
	TypeEmprunt       = "emprunt"
)

// TypeInfo classifies a transaction type
type TypeInfo struct {
	Category Category `json:"category"`
	Fund     Fund     `json:"fund"`
}

// typeTable is the exhaustive classification of every transaction type.
// Any type not listed here is rejected at the boundary.
var typeTable = map[string]TypeInfo{
	// General fund - entries
	TypeDonAnonyme:         {CategoryEntry, FundGeneral},
	TypeDonPublic:          {CategoryEntry, FundGeneral},
	TypeRecouvrementAide:   {CategoryEntry, FundGeneral},
	TypeInscription:        {CategoryEntry, FundGeneral},
	TypeMaintenanceTontine: {CategoryEntry, FundGeneral},
	TypeFondsCaisse:        {CategoryEntry, FundGeneral},
	// General fund - exits
	TypeAideDecesMere:       {CategoryExit, FundGeneral},
	TypeAideDecesPere:       {CategoryExit, FundGeneral},
	TypeAideMaladie:         {CategoryExit, FundGeneral},
	TypeAideNaissance:       {CategoryExit, FundGeneral},
	TypeAideMariage:         {CategoryExit, FundGeneral},
	TypeFraisEntretienSalle: {CategoryExit, FundGeneral},
	TypeFraisRepas:          {CategoryExit, FundGeneral},
	TypeFraisBoisson:        {CategoryExit, FundGeneral},
	TypeDepenseBureau:       {CategoryExit, FundGeneral},
	TypeDepenseStatutaire:   {CategoryExit, FundGeneral},
	// School fund
	TypeDepot:         {CategoryEntry, FundSchool},
	TypeRemboursement: {CategoryEntry, FundSchool},
	TypeEmprunt:       {CategoryExit, FundSchool},
}

// Classify returns the category and fund for a transaction type
func Classify(transactionType string) (TypeInfo, error) {
	info, ok := typeTable[transactionType]
	if !ok {
		return TypeInfo{}, fmt.Errorf("%w: %q", ErrUnknownTransactionType, transactionType)
	}
	return info, nil
}

// IsEntryType reports whether the type is a general fund entry
func IsEntryType(transactionType string) bool {
	info, ok := typeTable[transactionType]
	return ok && info.Category == CategoryEntry && info.Fund == FundGeneral
}

// IsExitType reports whether the type is a general fund exit
func IsExitType(transactionType string) bool {
	info, ok := typeTable[transactionType]
	return ok && info.Category == CategoryExit && info.Fund == FundGeneral
}

// AidTypes are the exit types a social aid can be granted under
var AidTypes = []string{
	TypeAideDecesMere,
	TypeAideDecesPere,
	TypeAideMaladie,
	TypeAideNaissance,
	TypeAideMariage,
}

// IsAidType reports whether the type is one of the social aid exits
func IsAidType(transactionType string) bool {
	for _, t := range AidTypes {
		if t == transactionType {
			return true
		}
	}
	return false
}

// Payment modes
const (
	PaymentEspeces = "espèces"
	PaymentMbway   = "Mbway"
	PaymentMixte   = "mixte"
)

// IsValidPaymentMode checks a payment mode against the closed set
func IsValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentEspeces, PaymentMbway, PaymentMixte:
		return true
	}
	return false
}

// Member statuses
const (
	MemberActif          = "actif(ve)"
	MemberSuspendu       = "suspendu(e)"
	MemberExclu          = "exclu(e)"
	MemberDemissionnaire = "démissionnaire"
	MemberDesactive      = "désactive(e)"
)

// IsValidMemberStatus checks a member status against the closed set
func IsValidMemberStatus(status string) bool {
	switch status {
	case MemberActif, MemberSuspendu, MemberExclu, MemberDemissionnaire, MemberDesactive:
		return true
	}
	return false
}

// Member roles within the association
const (
	RoleMembre      = "membre"
	RoleTresorier   = "trésorier"
	RolePresident   = "président"
	RoleCommissaire = "commissaire aux comptes"
	RoleSecretaire  = "secrétaire général"
)

// IsValidMemberRole checks a member role against the closed set
func IsValidMemberRole(role string) bool {
	switch role {
	case RoleMembre, RoleTresorier, RolePresident, RoleCommissaire, RoleSecretaire:
		return true
	}
	return false
}

// Session types
const (
	SessionInaugurale     = "inaugurale"
	SessionOrdinaire      = "ordinaire"
	SessionExtraordinaire = "extraordinaire"
)

// IsValidSessionType checks a session type against the closed set
func IsValidSessionType(sessionType string) bool {
	switch sessionType {
	case SessionInaugurale, SessionOrdinaire, SessionExtraordinaire:
		return true
	}
	return false
}

// Aid statuses (two-state toggle)
const (
	AidAccorde  = "accordé"
	AidRecouvre = "recouvré"
)

// IsValidAidStatus checks an aid status against the closed set
func IsValidAidStatus(status string) bool {
	return status == AidAccorde || status == AidRecouvre
}

// School loan statuses (two-state toggle)
const (
	LoanEnCours   = "en_cours"
	LoanRembourse = "rembourse"
)

// IsValidLoanStatus checks a loan status against the closed set
func IsValidLoanStatus(status string) bool {
	return status == LoanEnCours || status == LoanRembourse
}

// School entry repayment qualifiers
const (
	RepaymentEmprunt = "emprunt"
	RepaymentInteret = "intérêt"
	RepaymentLesDeux = "les deux"
)

// IsValidRepaymentKind checks what a repayment covers
func IsValidRepaymentKind(kind string) bool {
	switch kind {
	case RepaymentEmprunt, RepaymentInteret, RepaymentLesDeux:
		return true
	}
	return false
}

// School entry repayment scopes
const (
	RepaymentGlobale   = "globale"
	RepaymentPartielle = "partielle"
	RepaymentSolde     = "solde"
)

// IsValidRepaymentScope checks how much of the loan a repayment settles
func IsValidRepaymentScope(scope string) bool {
	switch scope {
	case RepaymentGlobale, RepaymentPartielle, RepaymentSolde:
		return true
	}
	return false
}

// UnknownMemberLabel is shown when a referenced member no longer exists
const UnknownMemberLabel = "N/A"
