package models

import "time"

// ReturnRequestDB contains all return request details to be stored in the DB
type ReturnRequestDB struct {
	ID               string              `bson:"_id"`
	OrderID          string              `bson:"order_id"`
	OrderNumber      string              `bson:"order_number"`
	CustomerID       string              `bson:"customer_id"`
	CustomerName     string              `bson:"customer_name"`
	CustomerEmail    string              `bson:"customer_email"`
	CreatorID        string              `bson:"creator_id"`
	Reason           string              `bson:"reason"`
	ReasonDetails    string              `bson:"reason_details,omitempty"`
	Status           string              `bson:"status"`
	RejectionReason  string              `bson:"rejection_reason,omitempty"`
	TrackingNumber   string              `bson:"tracking_number,omitempty"`
	Carrier          string              `bson:"carrier,omitempty"`
	DeliveredAt      time.Time           `bson:"delivered_at"`
	Items            []ReturnItemDB      `bson:"items,omitempty"`
	CreatedAt        time.Time           `bson:"created_at"`
	UpdatedAt        time.Time           `bson:"updated_at"`
	ApprovedAt       *time.Time          `bson:"approved_at,omitempty"`
	RejectedAt       *time.Time          `bson:"rejected_at,omitempty"`
	ShippedAt        *time.Time          `bson:"shipped_at,omitempty"`
	ReceivedAt       *time.Time          `bson:"received_at,omitempty"`
	RefundedAt       *time.Time          `bson:"refunded_at,omitempty"`
	StockRestoration *StockRestorationDB `bson:"stock_restoration,omitempty"`
	Version          int64               `bson:"version"`
}

// ReturnItemDB is a returned line item as stored in the DB
type ReturnItemDB struct {
	ProductID string `bson:"product_id,omitempty"`
	VariantID string `bson:"variant_id"`
	Quantity  int  `bson:"quantity"`
}

// StockRestorationDB is the inventory side effect of a refunded return as stored in the DB
type StockRestorationDB struct {
	Status        string            `bson:"status"`
	Items         []StockAdjustmentDB `bson:"items"`
	Attempts      int               `bson:"attempts"`
	LastError     string            `bson:"last_error,omitempty"`
	LastAttemptAt *time.Time        `bson:"last_attempt_at,omitempty"`
	CompletedAt   *time.Time        `bson:"completed_at,omitempty"`
}

// StockAdjustmentDB is a single stock increment as stored in the DB
type StockAdjustmentDB struct {
	VariantID string `bson:"variant_id"`
	Quantity  int  `bson:"quantity"`
}
