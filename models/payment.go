package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PaymentStatus is the lifecycle state of a Payment
type PaymentStatus string

// Enumeration containing all possible payment statuses
const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentSucceeded  PaymentStatus = "SUCCEEDED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

// IsFinal reports whether the status accepts no further progress. SUCCEEDED
// is final even though a refund may still move it to REFUNDED.
func (s PaymentStatus) IsFinal() bool {
	switch s {
	case PaymentSucceeded, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// PaymentMethod is the instrument a customer pays with
type PaymentMethod string

// Recognised payment methods
const (
	CardPayment      PaymentMethod = "CARD"
	SEPAPayment      PaymentMethod = "SEPA"
	ApplePayPayment  PaymentMethod = "APPLE_PAY"
	GooglePayPayment PaymentMethod = "GOOGLE_PAY"
)

var paymentMethods = [...]PaymentMethod{
	CardPayment,
	SEPAPayment,
	ApplePayPayment,
	GooglePayPayment,
}

// ParsePaymentMethod converts raw input into a PaymentMethod, ignoring case.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	candidate := PaymentMethod(strings.ToUpper(strings.TrimSpace(raw)))
	for _, method := range paymentMethods {
		if candidate == method {
			return method, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("payment method [%s] is not recognised", raw))
}

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// PaymentState is a snapshot of a Payment, used to persist and render it
type PaymentState struct {
	ID              string
	OrderID         string
	CustomerID      string
	CreatorID       string
	Amount          int64
	Currency        string
	Status          PaymentStatus
	PaymentMethod   PaymentMethod
	ConfirmationRef string
	RefundRef       string
	FailureReason   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int64
}

// NewPaymentParams holds the values a payment is created from
type NewPaymentParams struct {
	OrderID       string
	CustomerID    string
	CreatorID     string
	Amount        int64
	Currency      string
	PaymentMethod string
}

// Payment is the money owed for one order. Its fields change only through
// its transition methods.
type Payment struct {
	state PaymentState
}

// NewPayment validates params and returns a PENDING payment.
func NewPayment(id string, params NewPaymentParams, now time.Time) (*Payment, error) {
	switch {
	case strings.TrimSpace(id) == "":
		return nil, NewValidationError("payment id is required")
	case strings.TrimSpace(params.OrderID) == "":
		return nil, NewValidationError("order id is required")
	case strings.TrimSpace(params.CustomerID) == "":
		return nil, NewValidationError("customer id is required")
	case strings.TrimSpace(params.CreatorID) == "":
		return nil, NewValidationError("creator id is required")
	case params.Amount <= 0:
		return nil, NewValidationError("amount must be greater than zero")
	}

	method, err := ParsePaymentMethod(params.PaymentMethod)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(params.Currency))
	if !currencyCode.MatchString(currency) {
		return nil, NewValidationError(fmt.Sprintf("currency [%s] is not a valid ISO code", params.Currency))
	}

	return &Payment{state: PaymentState{
		ID:            id,
		OrderID:       params.OrderID,
		CustomerID:    params.CustomerID,
		CreatorID:     params.CreatorID,
		Amount:        params.Amount,
		Currency:      currency,
		Status:        PaymentPending,
		PaymentMethod: method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}}, nil
}

// RestorePayment rebuilds a Payment from a stored snapshot
func RestorePayment(state PaymentState) *Payment {
	return &Payment{state: state}
}

// State returns a copy of the payment's current values
func (p *Payment) State() PaymentState {
	return p.state
}

func (p *Payment) ID() string              { return p.state.ID }
func (p *Payment) OrderID() string         { return p.state.OrderID }
func (p *Payment) CustomerID() string      { return p.state.CustomerID }
func (p *Payment) CreatorID() string       { return p.state.CreatorID }
func (p *Payment) Status() PaymentStatus   { return p.state.Status }
func (p *Payment) Version() int64          { return p.state.Version }
func (p *Payment) ConfirmationRef() string { return p.state.ConfirmationRef }
func (p *Payment) RefundRef() string       { return p.state.RefundRef }

// Persisted records the version the store assigned on the last save.
func (p *Payment) Persisted(version int64) {
	p.state.Version = version
}

// MarkAsProcessing moves a PENDING payment to PROCESSING.
func (p *Payment) MarkAsProcessing(confirmationRef string, now time.Time) error {
	if p.state.Status != PaymentPending {
		return newTransitionError("payment cannot be processed in current state", string(p.state.Status))
	}

	p.state.Status = PaymentProcessing
	p.state.ConfirmationRef = confirmationRef
	p.state.UpdatedAt = now
	return nil
}

// MarkAsSucceeded moves a PENDING or PROCESSING payment to SUCCEEDED. A
// confirmation reference is only stored when none was recorded yet.
func (p *Payment) MarkAsSucceeded(confirmationRef string, now time.Time) error {
	if p.state.Status.IsFinal() {
		return newTransitionError("payment is already in a final state", string(p.state.Status))
	}

	if p.state.ConfirmationRef == "" && confirmationRef != "" {
		p.state.ConfirmationRef = confirmationRef
	}
	p.state.Status = PaymentSucceeded
	p.state.UpdatedAt = now
	return nil
}

// MarkAsFailed moves a PENDING or PROCESSING payment to FAILED.
func (p *Payment) MarkAsFailed(reason string, now time.Time) error {
	if p.state.Status.IsFinal() {
		return newTransitionError("payment is already in a final state", string(p.state.Status))
	}

	p.state.Status = PaymentFailed
	p.state.FailureReason = reason
	p.state.UpdatedAt = now
	return nil
}

// Refund moves a SUCCEEDED payment to REFUNDED.
func (p *Payment) Refund(refundRef string, now time.Time) error {
	if p.state.Status != PaymentSucceeded {
		return newTransitionError("only a successful payment may be refunded", string(p.state.Status))
	}

	p.state.Status = PaymentRefunded
	p.state.RefundRef = refundRef
	p.state.UpdatedAt = now
	return nil
}
