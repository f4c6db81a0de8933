package handlers

import (
	"errors"
	"net/http"
	"strings"

	"colis_express/internal/services"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	shipmentService services.ShipmentService
}

func NewTrackingHandler(shipmentService services.ShipmentService) *TrackingHandler {
	return &TrackingHandler{shipmentService: shipmentService}
}

// Track is the public tracking lookup. An unknown number is a modeled
// outcome, not a generic failure.
func (h *TrackingHandler) Track(c *gin.Context) {
	number := strings.ToUpper(strings.TrimSpace(c.Param("number")))
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tracking number is required"})
		return
	}

	result, err := h.shipmentService.TrackShipment(number)
	if err != nil {
		if errors.Is(err, services.ErrShipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":           "not_found",
				"tracking_number": number,
				"message":         "Le numéro de suivi n'existe pas dans notre système",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
