package handler

import (
	"net/http"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/apierror"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/service"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct{ svc service.LedgerService }

func NewLedgerHandler(svc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// GetLedger godoc
// @Summary      Tableau mensuel des paiements
// @Description  Une ligne par enfant actif pour le mois demandé, avec le statut dérivé.
// @Tags         paiements
// @Produce      json
// @Param        year  query int true "Année"
// @Param        month query int true "Mois (1-12)"
// @Success      200 {object} dto.LedgerResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ledger [get]
func (h *LedgerHandler) GetLedger(c *gin.Context) {
	var filter dto.LedgerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Année ou mois invalide"))
		return
	}
	resp, err := h.svc.BuildLedger(c.Request.Context(), filter.Year, filter.Month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement du tableau"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetLate godoc
// @Summary      Enfants en retard de paiement
// @Description  Enfants actifs inscrits avant la fin du mois ciblé, sans paiement validé pour ce mois.
// @Tags         paiements
// @Produce      json
// @Param        precedent query bool false "Cibler le mois précédent"
// @Success      200 {array} dto.LateEntry
// @Router       /v1/retards [get]
func (h *LedgerHandler) GetLate(c *gin.Context) {
	var filter dto.LateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.FindLate(c.Request.Context(), filter.Precedent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement des retards"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
