package handler

import (
	"errors"
	"net/http"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/apierror"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentsHandler struct{ svc service.PaymentService }

func NewPaymentsHandler(svc service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{svc: svc}
}

// Upsert godoc
// @Summary      Enregistrer un paiement mensuel
// @Description  Crée ou remplace le paiement d'un enfant pour (année, mois). Idempotent.
// @Tags         paiements
// @Accept       json
// @Produce      json
// @Param        body body dto.UpsertPaymentRequest true "Paiement du mois"
// @Success      200 {object} dto.PaymentResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/paiements [post]
func (h *PaymentsHandler) Upsert(c *gin.Context) {
	var req dto.UpsertPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Upsert(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrChildNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateAmount godoc
// @Summary      Saisie rapide du montant versé
// @Description  Met à jour le montant versé et recalcule la validation automatique.
// @Tags         paiements
// @Accept       json
// @Produce      json
// @Param        id   path string                     true "UUID du paiement"
// @Param        body body dto.UpdateAmountPaidRequest true "Nouveau montant versé"
// @Success      200 {object} dto.PaymentResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/paiements/{id}/montant [patch]
func (h *PaymentsHandler) UpdateAmount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	var req dto.UpdateAmountPaidRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateAmountPaid(c.Request.Context(), id, req.AmountPaid)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrPaymentNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Validate godoc
// @Summary      Valider un paiement
// @Description  Marque le paiement comme réglé, quel que soit le montant versé.
// @Tags         paiements
// @Produce      json
// @Param        id path string true "UUID du paiement"
// @Success      200 {object} dto.PaymentResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/paiements/{id}/valider [post]
func (h *PaymentsHandler) Validate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	resp, err := h.svc.Validate(c.Request.Context(), id)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrPaymentNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
