package model

import (
	"time"

	"github.com/google/uuid"
)

// Section values for a child's class group.
const (
	SectionPetite      = "Petite"
	SectionMoyenne     = "Moyenne"
	SectionPrescolaire = "Prescolaire"
)

// Statut values. Inactif children are excluded from every ledger, late-payment
// and invoicing view.
const (
	StatutActif   = "Actif"
	StatutInactif = "Inactif"
)

// Child is one enrolled (or formerly enrolled) child.
// Parental fields are informational only — no computation depends on them.
type Child struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nom           string    `gorm:"index;not null"`
	Prenom        string    `gorm:"not null"`
	DateNaissance time.Time `gorm:"not null"`
	Section       string    `gorm:"type:varchar(20);not null"`
	// DateInscription determines the enrollment month used for the
	// registration-fee rule and for late-payment eligibility.
	DateInscription *time.Time
	Statut          string `gorm:"type:varchar(10);not null;default:'Actif'"`
	// Sexe: "M", "F" or empty — drives grammatical agreement in generated
	// documents ("inscrit" / "inscrite").
	Sexe      string `gorm:"type:varchar(1)"`
	Pere      *string
	TelPere   *string
	Mere      *string
	TelMere   *string
	Allergies *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actif reports whether the child appears in ledgers and invoicing.
func (c *Child) Actif() bool { return c.Statut == StatutActif }

// EnrollmentMonth returns the calendar month of DateInscription, or 0 when the
// enrollment date is unknown.
func (c *Child) EnrollmentMonth() int {
	if c.DateInscription == nil {
		return 0
	}
	return int(c.DateInscription.Month())
}

// FullName is "Nom Prenom", the order used on all printed documents.
func (c *Child) FullName() string { return c.Nom + " " + c.Prenom }
