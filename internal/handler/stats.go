package handler

import (
	"net/http"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/apierror"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct{ svc service.StatsService }

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Dashboard godoc
// @Summary      Indicateurs du tableau de bord
// @Description  Effectifs par section et agrégats de paiement du mois courant.
// @Tags         stats
// @Produce      json
// @Success      200 {object} dto.StatsResponse
// @Router       /v1/stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du calcul des statistiques"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
