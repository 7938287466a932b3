package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/storefront/settlements.api/config"
	"github.com/storefront/settlements.api/dao"
	"github.com/storefront/settlements.api/mappers"
	"github.com/storefront/settlements.api/metrics"
	"github.com/storefront/settlements.api/models"
	"github.com/storefront/settlements.api/transformers"
)

const paymentEntity = "payment"

// Actions accepted by ProcessPayment
const (
	SucceedPayment = "SUCCEED"
	FailPayment    = "FAIL"
	RefundPayment  = "REFUND"
)

// DefaultFailureReason is recorded when a payment fails without a reason
const DefaultFailureReason = "payment failed"

var (
	// ErrPaymentExists is returned when an order already has a payment
	ErrPaymentExists = errors.New("a payment already exists for this order")

	// ErrPaymentNotFound is returned when no payment has the requested id
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrNotPaymentParty is returned when the caller is neither the customer nor the creator of a payment
	ErrNotPaymentParty = errors.New("not authorized to view this payment")
)

// PaymentService contains the DAO for db access
type PaymentService struct {
	DAO    dao.DAO
	Config config.Config
	Now    func() time.Time
}

func (service *PaymentService) now() time.Time {
	if service.Now != nil {
		return service.Now()
	}
	return defaultClock()
}

// To match the precision time is saved to mongo with, truncate to milliseconds
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// CreatePayment opens a PENDING payment for an order that has none yet
func (service *PaymentService) CreatePayment(ctx context.Context, input models.CreatePaymentRequest) (*models.PaymentResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}

	currency := input.Currency
	if strings.TrimSpace(currency) == "" {
		currency = service.Config.DefaultCurrency
	}

	payment, err := models.NewPayment(uuid.NewString(), models.NewPaymentParams{
		OrderID:       input.OrderID,
		CustomerID:    input.CustomerID,
		CreatorID:     input.CreatorID,
		Amount:        input.Amount,
		Currency:      currency,
		PaymentMethod: input.PaymentMethod,
	}, service.now())
	if err != nil {
		metrics.RecordTransition(paymentEntity, "create", metrics.OutcomeRejected)
		return nil, responseTypeFor(err), err
	}

	existing, err := service.DAO.GetPaymentByOrderID(ctx, input.OrderID)
	if err != nil {
		err = fmt.Errorf("error checking for an existing payment: [%w]", err)
		return nil, responseTypeFor(err), err
	}
	if existing != nil {
		metrics.RecordTransition(paymentEntity, "create", metrics.OutcomeRejected)
		return nil, Conflict, ErrPaymentExists
	}

	dbResource := transformers.PaymentTransformer{}.TransformToDB(payment)
	err = service.DAO.CreatePayment(ctx, &dbResource)
	if errors.Is(err, dao.ErrDuplicate) {
		metrics.RecordTransition(paymentEntity, "create", metrics.OutcomeRejected)
		return nil, Conflict, ErrPaymentExists
	}
	if err != nil {
		metrics.RecordTransition(paymentEntity, "create", metrics.OutcomeError)
		err = fmt.Errorf("error writing payment to DB: [%w]", err)
		return nil, responseTypeFor(err), err
	}
	payment.Persisted(dbResource.Version)

	metrics.RecordTransition(paymentEntity, "create", metrics.OutcomeSuccess)
	log.Info("payment created", log.Data{"payment_id": payment.ID(), "order_id": payment.OrderID()})

	response := mappers.MapToPaymentResponse(payment)
	return &response, Success, nil
}

// GetPayment retrieves a payment by id for its customer or its creator
func (service *PaymentService) GetPayment(ctx context.Context, paymentID, callerID string) (*models.PaymentResponse, ResponseType, error) {
	payment, responseType, err := service.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, responseType, err
	}

	if callerID != payment.CustomerID() && callerID != payment.CreatorID() {
		return nil, Forbidden, ErrNotPaymentParty
	}

	response := mappers.MapToPaymentResponse(payment)
	return &response, Success, nil
}

// MarkPaymentAsProcessing records that the processor has started handling a PENDING payment
func (service *PaymentService) MarkPaymentAsProcessing(ctx context.Context, input models.MarkPaymentProcessingRequest) (*models.PaymentResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}

	return service.transition(ctx, input.PaymentID, "processing", func(payment *models.Payment, now time.Time) error {
		return payment.MarkAsProcessing(input.ConfirmationRef, now)
	})
}

// ProcessPayment settles, fails or refunds a payment
func (service *PaymentService) ProcessPayment(ctx context.Context, input models.ProcessPaymentRequest) (*models.PaymentResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}

	switch strings.ToUpper(strings.TrimSpace(input.Action)) {
	case SucceedPayment:
		return service.transition(ctx, input.PaymentID, "succeed", func(payment *models.Payment, now time.Time) error {
			return payment.MarkAsSucceeded(input.ConfirmationRef, now)
		})

	case FailPayment:
		reason := strings.TrimSpace(input.Reason)
		if reason == "" {
			reason = DefaultFailureReason
		}
		return service.transition(ctx, input.PaymentID, "fail", func(payment *models.Payment, now time.Time) error {
			return payment.MarkAsFailed(reason, now)
		})

	case RefundPayment:
		refundRef := strings.TrimSpace(input.RefundRef)
		if refundRef == "" {
			return nil, InvalidData, models.NewValidationError("refund reference is required")
		}
		return service.transition(ctx, input.PaymentID, "refund", func(payment *models.Payment, now time.Time) error {
			return payment.Refund(refundRef, now)
		})
	}

	return nil, InvalidData, models.NewValidationError("invalid action")
}

func (service *PaymentService) loadPayment(ctx context.Context, paymentID string) (*models.Payment, ResponseType, error) {
	dbResource, err := service.DAO.GetPayment(ctx, paymentID)
	if err != nil {
		err = fmt.Errorf("error getting payment from DB: [%w]", err)
		return nil, responseTypeFor(err), err
	}
	if dbResource == nil {
		return nil, NotFound, ErrPaymentNotFound
	}

	return transformers.PaymentTransformer{}.TransformToDomain(*dbResource), Success, nil
}

// transition loads a payment, applies one state change and saves it. The save
// only lands when nobody else saved the payment since it was loaded.
func (service *PaymentService) transition(ctx context.Context, paymentID, name string, apply func(*models.Payment, time.Time) error) (*models.PaymentResponse, ResponseType, error) {
	payment, responseType, err := service.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, responseType, err
	}

	if err = apply(payment, service.now()); err != nil {
		metrics.RecordTransition(paymentEntity, name, metrics.OutcomeRejected)
		return nil, responseTypeFor(err), err
	}

	dbResource := transformers.PaymentTransformer{}.TransformToDB(payment)
	if err = service.DAO.UpdatePayment(ctx, &dbResource); err != nil {
		metrics.RecordTransition(paymentEntity, name, metrics.OutcomeError)
		err = saveError(paymentEntity, err)
		return nil, responseTypeFor(err), err
	}
	payment.Persisted(dbResource.Version)

	metrics.RecordTransition(paymentEntity, name, metrics.OutcomeSuccess)
	log.Info("payment updated", log.Data{"payment_id": payment.ID(), "status": payment.Status(), "transition": name})

	response := mappers.MapToPaymentResponse(payment)
	return &response, Success, nil
}

func saveError(entity string, err error) error {
	if errors.Is(err, dao.ErrVersionConflict) {
		return fmt.Errorf("%s was modified concurrently, retry the operation: [%w]", entity, err)
	}
	return fmt.Errorf("error updating %s in DB: [%w]", entity, err)
}
