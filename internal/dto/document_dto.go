package dto

// Document kinds generated for a child.
const (
	DocumentCertificat  = "certificat"  // certificat de scolarité
	DocumentAttestation = "attestation" // attestation d'inscription
)

// BuildDocumentRequest is the JSON body of POST /v1/documents.
type BuildDocumentRequest struct {
	ChildID string `json:"child_id" validate:"required,uuid"`
	Type    string `json:"type"     validate:"required,oneof=certificat attestation"`
	// AnneeScolaire overrides the derived school year, format "2024-2025".
	AnneeScolaire string `json:"annee_scolaire" validate:"omitempty,len=9"`
}

// DocumentResponse points at the generated PDF.
type DocumentResponse struct {
	Type     string `json:"type"`
	FileName string `json:"file_name"`
	PDFUrl   string `json:"pdf_url"`
}
