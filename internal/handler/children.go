package handler

import (
	"net/http"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/apierror"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChildrenHandler struct{ svc service.ChildService }

func NewChildrenHandler(svc service.ChildService) *ChildrenHandler {
	return &ChildrenHandler{svc: svc}
}

// Create godoc
// @Summary      Inscrire un enfant
// @Description  Crée la fiche d'un enfant avec ses coordonnées parentales.
// @Tags         enfants
// @Accept       json
// @Produce      json
// @Param        body body dto.ChildRequest true "Fiche de l'enfant"
// @Success      201  {object} dto.ChildResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/enfants [post]
func (h *ChildrenHandler) Create(c *gin.Context) {
	var req dto.ChildRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Lister les enfants
// @Description  Liste triée par nom, filtrable par statut, section et préfixe de nom.
// @Tags         enfants
// @Produce      json
// @Param        statut  query string false "Actif | Inactif"
// @Param        section query string false "Petite | Moyenne | Prescolaire"
// @Param        search  query string false "Préfixe du nom ou du prénom"
// @Success      200 {array} dto.ChildResponse
// @Router       /v1/enfants [get]
func (h *ChildrenHandler) List(c *gin.Context) {
	var filter dto.ChildFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement des enfants"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Consulter une fiche enfant
// @Tags         enfants
// @Produce      json
// @Param        id path string true "UUID de l'enfant"
// @Success      200 {object} dto.ChildResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/enfants/{id} [get]
func (h *ChildrenHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrChildNotFound.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Modifier une fiche enfant
// @Tags         enfants
// @Accept       json
// @Produce      json
// @Param        id   path string           true "UUID de l'enfant"
// @Param        body body dto.ChildRequest true "Fiche mise à jour"
// @Success      200 {object} dto.ChildResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/enfants/{id} [put]
func (h *ChildrenHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	var req dto.ChildRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Supprimer une fiche enfant
// @Tags         enfants
// @Param        id path string true "UUID de l'enfant"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/enfants/{id} [delete]
func (h *ChildrenHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportCSV godoc
// @Summary      Importer des enfants depuis un CSV
// @Description  Colonnes attendues : Nom, Prénom, Sexe, Date naissance, Section. Les lignes invalides sont ignorées.
// @Tags         enfants
// @Accept       mpfd
// @Produce      json
// @Param        file formData file true "Fichier CSV"
// @Success      200 {object} dto.CsvImportResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/enfants/import [post]
func (h *ChildrenHandler) ImportCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fichier CSV manquant"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fichier CSV illisible"))
		return
	}
	defer f.Close()

	resp, err := h.svc.ImportCSV(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
