package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/apierror"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/service"

	"github.com/gin-gonic/gin"
)

type DocumentsHandler struct {
	svc         service.DocumentService
	storagePath string
}

func NewDocumentsHandler(svc service.DocumentService, storagePath string) *DocumentsHandler {
	return &DocumentsHandler{svc: svc, storagePath: storagePath}
}

// Build godoc
// @Summary      Générer un certificat ou une attestation
// @Description  Rend le document PDF immédiatement et retourne son URL de téléchargement.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body body dto.BuildDocumentRequest true "Enfant et type de document"
// @Success      201 {object} dto.DocumentResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/documents [post]
func (h *DocumentsHandler) Build(c *gin.Context) {
	var req dto.BuildDocumentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Build(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ServePDF godoc
// @Summary      Télécharger un PDF généré
// @Description  Sert les factures et documents rendus par leur nom de fichier.
// @Tags         documents
// @Produce      application/pdf
// @Param        file path string true "Nom du fichier PDF"
// @Success      200
// @Failure      404 {object} apierror.APIError
// @Router       /v1/documents/pdf/{file} [get]
func (h *DocumentsHandler) ServePDF(c *gin.Context) {
	name := c.Param("file")
	// filepath.Base strips any traversal attempt before touching the disk
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".pdf") {
		c.JSON(http.StatusBadRequest, apierror.New("Nom de fichier invalide"))
		return
	}
	c.FileAttachment(filepath.Join(h.storagePath, name), name)
}
