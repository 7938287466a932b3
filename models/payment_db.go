package models

import "time"

// PaymentDB contains all payment details to be stored in the DB
type PaymentDB struct {
	ID              string    `bson:"_id"`
	OrderID         string    `bson:"order_id"`
	CustomerID      string    `bson:"customer_id"`
	CreatorID       string    `bson:"creator_id"`
	Amount          int64     `bson:"amount"`
	Currency        string    `bson:"currency"`
	Status          string    `bson:"status"`
	PaymentMethod   string    `bson:"payment_method"`
	ConfirmationRef string    `bson:"confirmation_ref,omitempty"`
	RefundRef       string    `bson:"refund_ref,omitempty"`
	FailureReason   string    `bson:"failure_reason,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
	Version         int64     `bson:"version"`
}
