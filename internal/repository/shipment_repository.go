package repository

import (
	"errors"
	"strings"

	"colis_express/internal/models"

	"gorm.io/gorm"
)

// ShipmentFilter narrows admin listings. Zero value means no filtering.
type ShipmentFilter struct {
	Status string
	Search string // matched against tracking number, names and cities
}

type ShipmentRepository interface {
	Create(shipment *models.Shipment) error
	GetByID(id uint) (*models.Shipment, error)
	GetByTrackingNumber(number string) (*models.Shipment, error)
	GetByUserID(userID uint) ([]models.Shipment, error)
	GetAll(filter ShipmentFilter) ([]models.Shipment, error)
	UpdateStatus(id uint, status string) error
	MarkPaid(id uint, method string) error
}

type shipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (r *shipmentRepository) Create(shipment *models.Shipment) error {
	return r.db.Create(shipment).Error
}

func (r *shipmentRepository) GetByID(id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.First(&shipment, id).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepository) GetByTrackingNumber(number string) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.Where("tracking_number = ?", number).First(&shipment).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepository) GetByUserID(userID uint) ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&shipments).Error
	return shipments, err
}

func (r *shipmentRepository) GetAll(filter ShipmentFilter) ([]models.Shipment, error) {
	query := r.db.Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"tracking_number ILIKE ? OR sender_name ILIKE ? OR recipient_name ILIKE ? OR sender_city ILIKE ? OR recipient_city ILIKE ?",
			like, like, like, like, like,
		)
	}

	var shipments []models.Shipment
	err := query.Find(&shipments).Error
	return shipments, err
}

func (r *shipmentRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Shipment{}).Where("id = ?", id).Update("status", status).Error
}

func (r *shipmentRepository) MarkPaid(id uint, method string) error {
	return r.db.Model(&models.Shipment{}).Where("id = ?", id).
		Updates(map[string]interface{}{"paid": true, "payment_method": method}).Error
}

// IsDuplicateKey reports whether err is a unique-constraint violation. The
// string check covers drivers that bypass GORM's error translation.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "SQLSTATE 23505")
}
