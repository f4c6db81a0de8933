package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"colis_express/internal/models"
	"colis_express/internal/pricing"
	"colis_express/internal/repository"
	"colis_express/internal/tracking"

	"gorm.io/gorm"
)

var (
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrUnknownStatus      = errors.New("unknown shipment status")
	ErrBackwardTransition = errors.New("shipment status cannot move backward")
)

// TrackingCache is the slice of the Redis client used for tracking
// lookups; narrowed to an interface so tests can swap it out.
type TrackingCache interface {
	SetTrackedShipment(number string, value interface{}, ttl time.Duration) error
	GetTrackedShipment(number string, dest interface{}) error
	InvalidateTrackedShipment(number string) error
}

type CreateShipmentInput struct {
	SenderName    string
	SenderPhone   string
	SenderAddress string
	SenderCity    string

	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	RecipientCity    string

	WeightKg float64
	LengthCm *float64
	WidthCm  *float64
	HeightCm *float64

	Service    string
	CODEnabled bool
	CODAmount  *float64

	PaymentMethod string
	UserID        *uint
}

type QuoteResult struct {
	Price              int64   `json:"price"`
	BillableWeightKg   float64 `json:"billable_weight_kg"`
	VolumetricWeightKg float64 `json:"volumetric_weight_kg"`
}

// TrackingResult is the public tracking projection: the shipment record
// plus all display state derived from its status.
type TrackingResult struct {
	Shipment          models.Shipment         `json:"shipment"`
	Status            tracking.StatusInfo     `json:"status"`
	Progress          int                     `json:"progress"`
	EstimatedDelivery string                  `json:"estimated_delivery,omitempty"`
	Timeline          []tracking.TimelineStep `json:"timeline"`
}

// UserShipmentStats backs the customer dashboard cards: everything not
// yet delivered counts as in progress.
type UserShipmentStats struct {
	Total        int   `json:"total"`
	EnCours      int   `json:"en_cours"`
	Livrees      int   `json:"livrees"`
	MontantTotal int64 `json:"montant_total"`
}

type ShipmentStats struct {
	Total         int     `json:"total"`
	EnPreparation int     `json:"en_preparation"`
	EnTransit     int     `json:"en_transit"`
	EnLivraison   int     `json:"en_livraison"`
	Livre         int     `json:"livre"`
	RevenueTotal  int64   `json:"revenue_total"`
	RevenueCOD    float64 `json:"revenue_cod"`
}

type ShipmentService interface {
	QuotePrice(input CreateShipmentInput) QuoteResult
	CreateShipment(input CreateShipmentInput) (*models.Shipment, error)
	TrackShipment(number string) (*TrackingResult, error)
	GetUserShipments(userID uint) ([]models.Shipment, error)
	GetAllShipments(filter repository.ShipmentFilter) ([]models.Shipment, error)
	UpdateStatus(id uint, status string) (*models.Shipment, error)
	GetStats() (*ShipmentStats, error)
}

type shipmentService struct {
	shipmentRepo  repository.ShipmentRepository
	cache         TrackingCache
	cacheTTL      time.Duration
	allowRollback bool
}

func NewShipmentService(shipmentRepo repository.ShipmentRepository, cache TrackingCache, cacheTTL time.Duration, allowRollback bool) ShipmentService {
	return &shipmentService{
		shipmentRepo:  shipmentRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
		allowRollback: allowRollback,
	}
}

func (s *shipmentService) QuotePrice(input CreateShipmentInput) QuoteResult {
	quote := quoteFromInput(input)
	return QuoteResult{
		Price:              pricing.Compute(quote),
		BillableWeightKg:   pricing.BillableWeight(quote.WeightKg, quote.LengthCm, quote.WidthCm, quote.HeightCm),
		VolumetricWeightKg: pricing.VolumetricWeight(quote.LengthCm, quote.WidthCm, quote.HeightCm),
	}
}

func (s *shipmentService) CreateShipment(input CreateShipmentInput) (*models.Shipment, error) {
	service := input.Service
	if service != string(models.ServiceExpress) {
		service = string(models.ServiceStandard)
	}

	method := input.PaymentMethod
	if method != string(models.PaymentMobileMoney) {
		method = string(models.PaymentCashDelivery)
	}

	shipment := &models.Shipment{
		SenderName:       input.SenderName,
		SenderPhone:      input.SenderPhone,
		SenderAddress:    input.SenderAddress,
		SenderCity:       input.SenderCity,
		RecipientName:    input.RecipientName,
		RecipientPhone:   input.RecipientPhone,
		RecipientAddress: input.RecipientAddress,
		RecipientCity:    input.RecipientCity,
		WeightKg:         input.WeightKg,
		LengthCm:         input.LengthCm,
		WidthCm:          input.WidthCm,
		HeightCm:         input.HeightCm,
		Service:          service,
		Price:            pricing.Compute(quoteFromInput(input)),
		CODEnabled:       input.CODEnabled,
		CODAmount:        input.CODAmount,
		Status:           string(models.StatusEnPreparation),
		PaymentMethod:    method,
		UserID:           input.UserID,
	}
	if !shipment.CODEnabled {
		shipment.CODAmount = nil
	}

	// The generator's uniqueness is probabilistic, so retry with a fresh
	// number when the unique index rejects the insert.
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		shipment.TrackingNumber = tracking.GenerateNumber()
		err = s.shipmentRepo.Create(shipment)
		if err == nil {
			return shipment, nil
		}
		if !repository.IsDuplicateKey(err) {
			return nil, fmt.Errorf("failed to create shipment: %w", err)
		}
	}
	return nil, fmt.Errorf("failed to allocate a unique tracking number: %w", err)
}

func (s *shipmentService) TrackShipment(number string) (*TrackingResult, error) {
	number = strings.ToUpper(strings.TrimSpace(number))

	var cached TrackingResult
	if err := s.cache.GetTrackedShipment(number, &cached); err == nil {
		return &cached, nil
	}

	shipment, err := s.shipmentRepo.GetByTrackingNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to look up shipment: %w", err)
	}

	result := &TrackingResult{
		Shipment:          *shipment,
		Status:            tracking.Info(shipment.Status),
		Progress:          tracking.Progress(shipment.Status),
		EstimatedDelivery: tracking.EstimatedDelivery(shipment.Status, shipment.Service),
		Timeline:          tracking.Timeline(shipment.Status, shipment.CreatedAt),
	}

	if err := s.cache.SetTrackedShipment(number, result, s.cacheTTL); err != nil {
		// Cache failures must not break tracking lookups.
		log.Printf("Warning: failed to cache tracking result for %s: %v", number, err)
	}

	return result, nil
}

func (s *shipmentService) GetUserShipments(userID uint) ([]models.Shipment, error) {
	return s.shipmentRepo.GetByUserID(userID)
}

func (s *shipmentService) GetAllShipments(filter repository.ShipmentFilter) ([]models.Shipment, error) {
	return s.shipmentRepo.GetAll(filter)
}

func (s *shipmentService) UpdateStatus(id uint, status string) (*models.Shipment, error) {
	if !tracking.Known(status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	shipment, err := s.shipmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, err
	}

	if !s.allowRollback && tracking.Rank(status) < tracking.Rank(shipment.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, shipment.Status, status)
	}

	if err := s.shipmentRepo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	shipment.Status = status

	if err := s.cache.InvalidateTrackedShipment(shipment.TrackingNumber); err != nil {
		log.Printf("Warning: failed to invalidate tracking cache for %s: %v", shipment.TrackingNumber, err)
	}

	return shipment, nil
}

func (s *shipmentService) GetStats() (*ShipmentStats, error) {
	shipments, err := s.shipmentRepo.GetAll(repository.ShipmentFilter{})
	if err != nil {
		return nil, err
	}

	stats := &ShipmentStats{Total: len(shipments)}
	for _, shipment := range shipments {
		switch shipment.Status {
		case string(models.StatusEnPreparation):
			stats.EnPreparation++
		case string(models.StatusEnTransit):
			stats.EnTransit++
		case string(models.StatusEnLivraison):
			stats.EnLivraison++
		case string(models.StatusLivre):
			stats.Livre++
		}
		stats.RevenueTotal += shipment.Price
		if shipment.CODEnabled && shipment.CODAmount != nil {
			stats.RevenueCOD += *shipment.CODAmount
		}
	}
	return stats, nil
}

// ComputeUserStats derives the dashboard summary from a user's shipments.
func ComputeUserStats(shipments []models.Shipment) UserShipmentStats {
	stats := UserShipmentStats{Total: len(shipments)}
	for _, shipment := range shipments {
		if shipment.Status == string(models.StatusLivre) {
			stats.Livrees++
		} else {
			stats.EnCours++
		}
		stats.MontantTotal += shipment.Price
	}
	return stats
}

func quoteFromInput(input CreateShipmentInput) pricing.Quote {
	quote := pricing.Quote{
		WeightKg:   input.WeightKg,
		Service:    input.Service,
		CODEnabled: input.CODEnabled,
	}
	if input.LengthCm != nil {
		quote.LengthCm = *input.LengthCm
	}
	if input.WidthCm != nil {
		quote.WidthCm = *input.WidthCm
	}
	if input.HeightCm != nil {
		quote.HeightCm = *input.HeightCm
	}
	if input.CODAmount != nil {
		quote.CODAmount = *input.CODAmount
	}
	return quote
}
