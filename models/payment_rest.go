package models

import "time"

// CreatePaymentRequest is the data received to create a payment for an order
type CreatePaymentRequest struct {
	OrderID       string `json:"order_id"       validate:"required"`
	CustomerID    string `json:"customer_id"    validate:"required"`
	CreatorID     string `json:"creator_id"     validate:"required"`
	Amount        int64  `json:"amount"         validate:"gt=0"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// MarkPaymentProcessingRequest is the data received when the processor confirms a payment is underway
type MarkPaymentProcessingRequest struct {
	PaymentID       string `json:"payment_id"       validate:"required"`
	ConfirmationRef string `json:"confirmation_ref" validate:"required"`
}

// ProcessPaymentRequest is the data received to settle, fail or refund a payment
type ProcessPaymentRequest struct {
	PaymentID       string `json:"payment_id"                 validate:"required"`
	Action          string `json:"action"                     validate:"required"`
	ConfirmationRef string `json:"confirmation_ref,omitempty"`
	RefundRef       string `json:"refund_ref,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

// PaymentResponse is public facing payment details to be returned in the response
type PaymentResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	CustomerID      string    `json:"customer_id"`
	CreatorID       string    `json:"creator_id"`
	Amount          int64     `json:"amount"`
	AmountDisplay   string    `json:"amount_display"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentMethod   string    `json:"payment_method"`
	ConfirmationRef string    `json:"confirmation_ref,omitempty"`
	RefundRef       string    `json:"refund_ref,omitempty"`
	FailureReason   string    `json:"failure_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
