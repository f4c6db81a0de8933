package handlers

import (
	"errors"
	"net/http"

	"colis_express/internal/services"
	"colis_express/pkg/mobilemoney"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PayMobileMoney runs the simulated mobile money charge for a shipment.
func (h *PaymentHandler) PayMobileMoney(c *gin.Context) {
	var req struct {
		TrackingNumber string `json:"tracking_number" binding:"required"`
		Operator       string `json:"operator" binding:"required"`
		Phone          string `json:"phone" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.paymentService.PayMobileMoney(services.PaymentInput{
		TrackingNumber: req.TrackingNumber,
		Operator:       req.Operator,
		Phone:          req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrShipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		case errors.Is(err, services.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": "Shipment is already paid"})
		case errors.Is(err, mobilemoney.ErrUnknownOperator), errors.Is(err, mobilemoney.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, mobilemoney.ErrDeclined):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": mobilemoney.DeclinedMessage})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "paid", "receipt": receipt})
}
