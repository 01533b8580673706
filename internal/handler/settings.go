package handler

import (
	"net/http"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/apierror"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get godoc
// @Summary      Profil de l'établissement
// @Description  En-tête imprimé sur les factures et documents.
// @Tags         profil
// @Produce      json
// @Success      200 {object} dto.SettingResponse
// @Router       /v1/profil [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement du profil"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Modifier le profil de l'établissement
// @Tags         profil
// @Accept       json
// @Produce      json
// @Param        body body dto.SettingRequest true "Profil mis à jour"
// @Success      200 {object} dto.SettingResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/profil [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
