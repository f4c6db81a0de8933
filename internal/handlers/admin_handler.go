package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"colis_express/internal/repository"
	"colis_express/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	shipmentService services.ShipmentService
}

func NewAdminHandler(shipmentService services.ShipmentService) *AdminHandler {
	return &AdminHandler{shipmentService: shipmentService}
}

// ListShipments returns every shipment, optionally narrowed by
// ?status= and ?search= query parameters.
func (h *AdminHandler) ListShipments(c *gin.Context) {
	filter := repository.ShipmentFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	shipments, err := h.shipmentService.GetAllShipments(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipments": shipments, "count": len(shipments)})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.shipmentService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := h.shipmentService.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrShipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		case errors.Is(err, services.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrBackwardTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipment": shipment})
}
