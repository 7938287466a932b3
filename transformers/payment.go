package transformers

import (
	"github.com/storefront/settlements.api/models"
)

// PaymentTransformer transforms payments between the domain and database models
type PaymentTransformer struct{}

// TransformToDB transforms a payment into its database model
func (pt PaymentTransformer) TransformToDB(payment *models.Payment) models.PaymentDB {
	state := payment.State()
	return models.PaymentDB{
		ID:              state.ID,
		OrderID:         state.OrderID,
		CustomerID:      state.CustomerID,
		CreatorID:       state.CreatorID,
		Amount:          state.Amount,
		Currency:        state.Currency,
		Status:          string(state.Status),
		PaymentMethod:   string(state.PaymentMethod),
		ConfirmationRef: state.ConfirmationRef,
		RefundRef:       state.RefundRef,
		FailureReason:   state.FailureReason,
		CreatedAt:       state.CreatedAt,
		UpdatedAt:       state.UpdatedAt,
		Version:         state.Version,
	}
}

// TransformToDomain rebuilds a payment from its database model
func (pt PaymentTransformer) TransformToDomain(dbResource models.PaymentDB) *models.Payment {
	return models.RestorePayment(models.PaymentState{
		ID:              dbResource.ID,
		OrderID:         dbResource.OrderID,
		CustomerID:      dbResource.CustomerID,
		CreatorID:       dbResource.CreatorID,
		Amount:          dbResource.Amount,
		Currency:        dbResource.Currency,
		Status:          models.PaymentStatus(dbResource.Status),
		PaymentMethod:   models.PaymentMethod(dbResource.PaymentMethod),
		ConfirmationRef: dbResource.ConfirmationRef,
		RefundRef:       dbResource.RefundRef,
		FailureReason:   dbResource.FailureReason,
		CreatedAt:       dbResource.CreatedAt,
		UpdatedAt:       dbResource.UpdatedAt,
		Version:         dbResource.Version,
	})
}
