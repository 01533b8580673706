package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ChildRequest is the JSON body of POST /v1/enfants and PUT /v1/enfants/:id.
// Dates use the YYYY-MM-DD format.
type ChildRequest struct {
	Nom             string  `json:"nom"              validate:"required,min=2"`
	Prenom          string  `json:"prenom"           validate:"required,min=2"`
	DateNaissance   string  `json:"date_naissance"   validate:"required"`
	Section         string  `json:"section"          validate:"required,oneof=Petite Moyenne Prescolaire"`
	DateInscription *string `json:"date_inscription" validate:"omitempty"`
	Statut          string  `json:"statut"           validate:"omitempty,oneof=Actif Inactif"`
	Sexe            string  `json:"sexe"             validate:"omitempty,oneof=M F"`
	Pere            *string `json:"pere"`
	TelPere         *string `json:"tel_pere"`
	Mere            *string `json:"mere"`
	TelMere         *string `json:"tel_mere"`
	Allergies       *string `json:"allergies"`
}

// ChildFilter is bound from the query string of GET /v1/enfants.
type ChildFilter struct {
	Statut  string `form:"statut"`  // Actif | Inactif | empty = all
	Section string `form:"section"` // Petite | Moyenne | Prescolaire
	Search  string `form:"search"`  // matches nom/prenom prefix
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ChildResponse struct {
	ID              string  `json:"id"`
	Nom             string  `json:"nom"`
	Prenom          string  `json:"prenom"`
	DateNaissance   string  `json:"date_naissance"`
	Section         string  `json:"section"`
	DateInscription *string `json:"date_inscription,omitempty"`
	Statut          string  `json:"statut"`
	Sexe            string  `json:"sexe,omitempty"`
	Pere            *string `json:"pere,omitempty"`
	TelPere         *string `json:"tel_pere,omitempty"`
	Mere            *string `json:"mere,omitempty"`
	TelMere         *string `json:"tel_mere,omitempty"`
	Allergies       *string `json:"allergies,omitempty"`
}

// CsvImportResponse summarizes POST /v1/enfants/import.
type CsvImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
