package models

import (
	"time"

	"gorm.io/gorm"
)

type Shipment struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	TrackingNumber string `json:"tracking_number" gorm:"uniqueIndex;not null"`

	SenderName    string `json:"sender_name" gorm:"not null"`
	SenderPhone   string `json:"sender_phone" gorm:"not null"`
	SenderAddress string `json:"sender_address"`
	SenderCity    string `json:"sender_city" gorm:"not null"`

	RecipientName    string `json:"recipient_name" gorm:"not null"`
	RecipientPhone   string `json:"recipient_phone" gorm:"not null"`
	RecipientAddress string `json:"recipient_address"`
	RecipientCity    string `json:"recipient_city" gorm:"not null"`

	WeightKg float64  `json:"weight_kg" gorm:"not null"`
	LengthCm *float64 `json:"length_cm"`
	WidthCm  *float64 `json:"width_cm"`
	HeightCm *float64 `json:"height_cm"`

	Service    string   `json:"service" gorm:"default:'standard'"` // standard, express
	Price      int64    `json:"price" gorm:"not null"`             // GNF, computed once at creation
	CODEnabled bool     `json:"cod_enabled" gorm:"default:false"`
	CODAmount  *float64 `json:"cod_amount"`

	Status        string `json:"status" gorm:"default:'en_preparation'"` // en_preparation, en_transit, en_livraison, livre
	Paid          bool   `json:"paid" gorm:"default:false"`
	PaymentMethod string `json:"payment_method"` // mobile_money, cash_delivery

	UserID    *uint          `json:"user_id" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ShipmentStatus string

const (
	StatusEnPreparation ShipmentStatus = "en_preparation"
	StatusEnTransit     ShipmentStatus = "en_transit"
	StatusEnLivraison   ShipmentStatus = "en_livraison"
	StatusLivre         ShipmentStatus = "livre"
)

type ServiceType string

const (
	ServiceStandard ServiceType = "standard"
	ServiceExpress  ServiceType = "express"
)

type PaymentMethod string

const (
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentCashDelivery PaymentMethod = "cash_delivery"
)
