package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"colis_express/internal/models"
	"colis_express/internal/repository"
	"colis_express/pkg/mobilemoney"

	"gorm.io/gorm"
)

var ErrAlreadyPaid = errors.New("shipment is already paid")

type PaymentInput struct {
	TrackingNumber string
	Operator       string // orange, mtn
	Phone          string
}

type PaymentReceipt struct {
	TransactionID  string `json:"transaction_id"`
	TrackingNumber string `json:"tracking_number"`
	Operator       string `json:"operator"`
	Phone          string `json:"phone"`
	Amount         int64  `json:"amount"`
}

type PaymentService interface {
	PayMobileMoney(input PaymentInput) (*PaymentReceipt, error)
}

type paymentService struct {
	shipmentRepo repository.ShipmentRepository
	gateway      *mobilemoney.Client
	cache        TrackingCache
}

func NewPaymentService(shipmentRepo repository.ShipmentRepository, gateway *mobilemoney.Client, cache TrackingCache) PaymentService {
	return &paymentService{
		shipmentRepo: shipmentRepo,
		gateway:      gateway,
		cache:        cache,
	}
}

// PayMobileMoney charges the shipment price through the simulated gateway
// and marks the shipment paid on success.
func (s *paymentService) PayMobileMoney(input PaymentInput) (*PaymentReceipt, error) {
	number := strings.ToUpper(strings.TrimSpace(input.TrackingNumber))

	shipment, err := s.shipmentRepo.GetByTrackingNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to look up shipment: %w", err)
	}
	if shipment.Paid {
		return nil, ErrAlreadyPaid
	}

	resp, err := s.gateway.Charge(mobilemoney.ChargeRequest{
		Operator:  mobilemoney.Operator(input.Operator),
		Phone:     input.Phone,
		Amount:    shipment.Price,
		Reference: shipment.TrackingNumber,
	})
	if err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.MarkPaid(shipment.ID, string(models.PaymentMobileMoney)); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if err := s.cache.InvalidateTrackedShipment(shipment.TrackingNumber); err != nil {
		log.Printf("Warning: failed to invalidate tracking cache for %s: %v", shipment.TrackingNumber, err)
	}

	return &PaymentReceipt{
		TransactionID:  resp.TransactionID,
		TrackingNumber: shipment.TrackingNumber,
		Operator:       string(resp.Operator),
		Phone:          resp.Phone,
		Amount:         resp.Amount,
	}, nil
}
