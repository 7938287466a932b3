package models

import "time"

// CreateReturnRequest is the data received when a customer asks to return an order
type CreateReturnRequest struct {
	OrderID       string              `json:"order_id"       validate:"required"`
	OrderNumber   string              `json:"order_number"   validate:"required"`
	CustomerID    string              `json:"customer_id"    validate:"required"`
	CustomerName  string              `json:"customer_name"  validate:"required"`
	CustomerEmail string              `json:"customer_email" validate:"required,email"`
	CreatorID     string              `json:"creator_id"     validate:"required"`
	Reason        string              `json:"reason"         validate:"required"`
	ReasonDetails string              `json:"reason_details,omitempty"`
	DeliveredAt   *time.Time          `json:"delivered_at"   validate:"required"`
	Items         []ReturnItemRequest `json:"items,omitempty" validate:"dive"`
}

// ReturnItemRequest is a line item the customer sends back
type ReturnItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"gt=0"`
}

// ReturnDecisionRequest is the data received when a creator approves, receives or refunds a return
type ReturnDecisionRequest struct {
	ReturnID  string `json:"return_id"  validate:"required"`
	CreatorID string `json:"creator_id" validate:"required"`
}

// RejectReturnRequest is the data received when a creator rejects a return
type RejectReturnRequest struct {
	ReturnID  string `json:"return_id"  validate:"required"`
	CreatorID string `json:"creator_id" validate:"required"`
	Reason    string `json:"reason"`
}

// ShipBackReturnRequest is the data received when a customer posts the goods back
type ShipBackReturnRequest struct {
	ReturnID       string `json:"return_id"   validate:"required"`
	CustomerID     string `json:"customer_id" validate:"required"`
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
}

// ReturnRequestResponse is public facing return request details to be returned in the response
type ReturnRequestResponse struct {
	ID               string                    `json:"id"`
	OrderID          string                    `json:"order_id"`
	OrderNumber      string                    `json:"order_number"`
	CustomerID       string                    `json:"customer_id"`
	CustomerName     string                    `json:"customer_name"`
	CustomerEmail    string                    `json:"customer_email"`
	CreatorID        string                    `json:"creator_id"`
	Reason           string                    `json:"reason"`
	ReasonDetails    string                    `json:"reason_details,omitempty"`
	Status           string                    `json:"status"`
	RejectionReason  string                    `json:"rejection_reason,omitempty"`
	TrackingNumber   string                    `json:"tracking_number,omitempty"`
	Carrier          string                    `json:"carrier,omitempty"`
	DeliveredAt      time.Time                 `json:"delivered_at"`
	Items            []ReturnItemResponse      `json:"items,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
	ApprovedAt       *time.Time                `json:"approved_at,omitempty"`
	RejectedAt       *time.Time                `json:"rejected_at,omitempty"`
	ShippedAt        *time.Time                `json:"shipped_at,omitempty"`
	ReceivedAt       *time.Time                `json:"received_at,omitempty"`
	RefundedAt       *time.Time                `json:"refunded_at,omitempty"`
	StockRestoration *StockRestorationResponse `json:"stock_restoration,omitempty"`
}

// ReturnItemResponse is a returned line item
type ReturnItemResponse struct {
	ProductID string `json:"product_id,omitempty"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// StockRestorationResponse reports the inventory side effect of a refunded return
type StockRestorationResponse struct {
	Status      string     `json:"status"`
	Attempts    int        `json:"attempts"`
	LastError   string     `json:"last_error,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// StockRestorationSummary is the outcome of re-driving pending stock restorations
type StockRestorationSummary struct {
	Processed int      `json:"processed"`
	Completed int      `json:"completed"`
	Failed    []string `json:"failed,omitempty"`
}
