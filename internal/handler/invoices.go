package handler

import (
	"net/http"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/apierror"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoicesHandler struct{ svc service.InvoiceService }

func NewInvoicesHandler(svc service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

// Build godoc
// @Summary      Générer des factures
// @Description  Agrège la sélection (enfants × mois) en factures numérotées FAC-{année}-{seq} et lance le rendu PDF asynchrone.
// @Tags         factures
// @Accept       json
// @Produce      json
// @Param        body body dto.BuildInvoicesRequest true "Sélection à facturer"
// @Success      201 {object} dto.BuildInvoicesResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/factures [post]
func (h *InvoicesHandler) Build(c *gin.Context) {
	var req dto.BuildInvoicesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.BuildInvoices(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
