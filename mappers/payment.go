package mappers

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/settlements.api/models"
)

// currencies without a minor unit
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"ISK": true,
	"CLP": true,
	"VND": true,
}

// FormatAmount renders an amount in minor units as a major unit string, e.g. 2599 EUR as "25.99".
func FormatAmount(amount int64, currency string) string {
	exponent := int32(2)
	if zeroDecimalCurrencies[currency] {
		exponent = 0
	}
	return decimal.New(amount, -exponent).StringFixed(exponent)
}

// MapToPaymentResponse maps a payment to its public representation
func MapToPaymentResponse(payment *models.Payment) models.PaymentResponse {
	state := payment.State()
	return models.PaymentResponse{
		ID:              state.ID,
		OrderID:         state.OrderID,
		CustomerID:      state.CustomerID,
		CreatorID:       state.CreatorID,
		Amount:          state.Amount,
		AmountDisplay:   FormatAmount(state.Amount, state.Currency),
		Currency:        state.Currency,
		Status:          string(state.Status),
		PaymentMethod:   string(state.PaymentMethod),
		ConfirmationRef: state.ConfirmationRef,
		RefundRef:       state.RefundRef,
		FailureReason:   state.FailureReason,
		CreatedAt:       state.CreatedAt,
		UpdatedAt:       state.UpdatedAt,
	}
}
