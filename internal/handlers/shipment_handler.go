package handlers

import (
	"net/http"

	"colis_express/internal/services"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	shipmentService services.ShipmentService
}

func NewShipmentHandler(shipmentService services.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

type quoteRequest struct {
	WeightKg   float64  `json:"weight_kg"`
	LengthCm   *float64 `json:"length_cm"`
	WidthCm    *float64 `json:"width_cm"`
	HeightCm   *float64 `json:"height_cm"`
	Service    string   `json:"service"`
	CODEnabled bool     `json:"cod_enabled"`
	CODAmount  *float64 `json:"cod_amount"`
}

type createShipmentRequest struct {
	SenderName    string `json:"sender_name" binding:"required"`
	SenderPhone   string `json:"sender_phone" binding:"required"`
	SenderAddress string `json:"sender_address"`
	SenderCity    string `json:"sender_city" binding:"required"`

	RecipientName    string `json:"recipient_name" binding:"required"`
	RecipientPhone   string `json:"recipient_phone" binding:"required"`
	RecipientAddress string `json:"recipient_address"`
	RecipientCity    string `json:"recipient_city" binding:"required"`

	WeightKg   float64  `json:"weight_kg" binding:"required,gt=0"`
	LengthCm   *float64 `json:"length_cm"`
	WidthCm    *float64 `json:"width_cm"`
	HeightCm   *float64 `json:"height_cm"`
	Service    string   `json:"service"`
	CODEnabled bool     `json:"cod_enabled"`
	CODAmount  *float64 `json:"cod_amount"`

	PaymentMethod string `json:"payment_method"`
}

// Quote runs the pricing calculator without creating anything. Missing or
// zero fields are fine; the calculator treats them as zero.
func (h *ShipmentHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote := h.shipmentService.QuotePrice(services.CreateShipmentInput{
		WeightKg:   req.WeightKg,
		LengthCm:   req.LengthCm,
		WidthCm:    req.WidthCm,
		HeightCm:   req.HeightCm,
		Service:    req.Service,
		CODEnabled: req.CODEnabled,
		CODAmount:  req.CODAmount,
	})

	c.JSON(http.StatusOK, quote)
}

// Create registers a new shipment. Anonymous creation is allowed; when a
// session is present the shipment is attached to the user.
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req createShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateShipmentInput{
		SenderName:       req.SenderName,
		SenderPhone:      req.SenderPhone,
		SenderAddress:    req.SenderAddress,
		SenderCity:       req.SenderCity,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		RecipientAddress: req.RecipientAddress,
		RecipientCity:    req.RecipientCity,
		WeightKg:         req.WeightKg,
		LengthCm:         req.LengthCm,
		WidthCm:          req.WidthCm,
		HeightCm:         req.HeightCm,
		Service:          req.Service,
		CODEnabled:       req.CODEnabled,
		CODAmount:        req.CODAmount,
		PaymentMethod:    req.PaymentMethod,
	}
	if session := SessionFrom(c); session != nil {
		userID := session.UserID
		input.UserID = &userID
	}

	shipment, err := h.shipmentService.CreateShipment(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"shipment": shipment})
}

// List returns the authenticated user's shipments, newest first, with the
// summary shown on the dashboard cards.
func (h *ShipmentHandler) List(c *gin.Context) {
	session := SessionFrom(c)

	shipments, err := h.shipmentService.GetUserShipments(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shipments": shipments,
		"count":     len(shipments),
		"stats":     services.ComputeUserStats(shipments),
	})
}
