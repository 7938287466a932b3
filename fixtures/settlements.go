package fixtures

import (
	"time"

	"github.com/storefront/settlements.api/models"
)

var (
	OrderID    = "order-1"
	CustomerID = "customer-1"
	CreatorID  = "creator-1"
	PaymentID  = "payment-1"
	ReturnID   = "return-1"
	VariantID  = "v1"
)

// Now is the fixed clock used across tests
var Now = time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)

// Clock returns Now, for services that take an injectable clock
func Clock() time.Time {
	return Now
}

// GetCreatePaymentRequest returns a valid card payment request for orderID
func GetCreatePaymentRequest(orderID string) models.CreatePaymentRequest {
	return models.CreatePaymentRequest{
		OrderID:       orderID,
		CustomerID:    CustomerID,
		CreatorID:     CreatorID,
		Amount:        2999,
		Currency:      "EUR",
		PaymentMethod: "CARD",
	}
}

// GetPaymentDB returns a stored payment with the given status
func GetPaymentDB(status models.PaymentStatus) *models.PaymentDB {
	return &models.PaymentDB{
		ID:            PaymentID,
		OrderID:       OrderID,
		CustomerID:    CustomerID,
		CreatorID:     CreatorID,
		Amount:        2999,
		Currency:      "EUR",
		Status:        string(status),
		PaymentMethod: "CARD",
		CreatedAt:     Now.Add(-time.Hour),
		UpdatedAt:     Now.Add(-time.Hour),
		Version:       1,
	}
}

// GetCreateReturnRequest returns a valid return request delivered daysAgo days before Now
func GetCreateReturnRequest(orderID string, daysAgo int, items ...models.ReturnItemRequest) models.CreateReturnRequest {
	deliveredAt := Now.AddDate(0, 0, -daysAgo)
	return models.CreateReturnRequest{
		OrderID:       orderID,
		OrderNumber:   "ORD-" + orderID,
		CustomerID:    CustomerID,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CreatorID:     CreatorID,
		Reason:        "DEFECTIVE",
		DeliveredAt:   &deliveredAt,
		Items:         items,
	}
}

// GetReturnRequestDB returns a stored return request with the given status and items
func GetReturnRequestDB(status models.ReturnStatus, items ...models.ReturnItemDB) *models.ReturnRequestDB {
	return &models.ReturnRequestDB{
		ID:            ReturnID,
		OrderID:       OrderID,
		OrderNumber:   "ORD-" + OrderID,
		CustomerID:    CustomerID,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CreatorID:     CreatorID,
		Reason:        string(models.ReasonDefective),
		Status:        string(status),
		DeliveredAt:   Now.AddDate(0, 0, -2),
		Items:         items,
		CreatedAt:     Now.Add(-time.Hour),
		UpdatedAt:     Now.Add(-time.Hour),
		Version:       1,
	}
}

// GetPendingRestorationDB returns a refunded return request whose stock is still owed
func GetPendingRestorationDB(id string) models.ReturnRequestDB {
	ret := GetReturnRequestDB(models.ReturnRefunded, models.ReturnItemDB{VariantID: VariantID, Quantity: 2})
	ret.ID = id
	ret.StockRestoration = &models.StockRestorationDB{
		Status: string(models.RestorationPending),
		Items:  []models.StockAdjustmentDB{{VariantID: VariantID, Quantity: 2}},
	}
	return *ret
}
