package dto

// SettingRequest is the JSON body of PUT /v1/profil.
type SettingRequest struct {
	Nom       string `json:"nom" validate:"required,min=2"`
	SousTitre string `json:"sous_titre"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Email     string `json:"email" validate:"omitempty,email"`
	NIF       string `json:"nif"`
	RC        string `json:"rc"`
	Article   string `json:"article"`
	NIS       string `json:"nis"`
}

// SettingResponse is the organization profile returned by GET /v1/profil.
type SettingResponse struct {
	Nom       string `json:"nom"`
	SousTitre string `json:"sous_titre"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	NIF       string `json:"nif"`
	RC        string `json:"rc"`
	Article   string `json:"article"`
	NIS       string `json:"nis"`
}
