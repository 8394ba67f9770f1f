package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// QualifyingOrderStatuses son los estados que cuentan para el score RFM.
var QualifyingOrderStatuses = []OrderStatus{
	OrderStatusDelivered,
	OrderStatusPaid,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusPending,
}

type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID   `gorm:"type:uuid;index"`
	CustomerID  *uuid.UUID  `gorm:"type:uuid;index"`
	Status      OrderStatus `gorm:"type:varchar(30);index"`
	TotalAmount float64     `gorm:"type:decimal(12,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
