package service

import (
	"context"
	"errors"
	"fmt"
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

const returnEntity = "return_request"

var (
	// ErrReturnExists is returned when an order already has a return that was not rejected
	ErrReturnExists = errors.New("a return request already exists for this order")

	// ErrReturnNotFound is returned when no return request has the requested id
	ErrReturnNotFound = errors.New("return request not found")

	// ErrNotReturnOwner is returned when the caller does not own the requested action
	ErrNotReturnOwner = errors.New("not authorized to modify this return request")
)

// ReturnService runs the return request lifecycle
type ReturnService struct {
	DAO       dao.DAO
	Config    config.Config
	Inventory InventoryService
	Now       func() time.Time
}

func (service *ReturnService) now() time.Time {
	if service.Now != nil {
		return service.Now()
	}
	return defaultClock()
}

// CreateReturn opens a REQUESTED return for a delivered order
func (service *ReturnService) CreateReturn(ctx context.Context, input models.CreateReturnRequest) (*models.ReturnRequestResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}

	now := service.now()

	params := models.NewReturnRequestParams{
		OrderID:       input.OrderID,
		OrderNumber:   input.OrderNumber,
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CreatorID:     input.CreatorID,
		Reason:        input.Reason,
		ReasonDetails: input.ReasonDetails,
		DeliveredAt:   input.DeliveredAt.UTC(),
	}
	for _, item := range input.Items {
		params.Items = append(params.Items, models.ReturnItem{ProductID: item.ProductID, VariantID: item.VariantID, Quantity: item.Quantity})
	}

	ret, err := models.NewReturnRequest(uuid.NewString(), params, now)
	if err != nil {
		metrics.RecordTransition(returnEntity, "create", metrics.OutcomeRejected)
		return nil, responseTypeFor(err), err
	}

	existing, err := service.DAO.GetActiveReturnRequestByOrderID(ctx, input.OrderID)
	if err != nil {
		err = fmt.Errorf("error checking for an existing return request: [%w]", err)
		return nil, responseTypeFor(err), err
	}
	if existing != nil {
		metrics.RecordTransition(returnEntity, "create", metrics.OutcomeRejected)
		return nil, Conflict, ErrReturnExists
	}

	days := models.DaysSinceDelivery(params.DeliveredAt, now)
	if days > service.Config.ReturnWindowDays {
		metrics.RecordTransition(returnEntity, "create", metrics.OutcomeRejected)
		return nil, RuleViolation, fmt.Errorf("return window exceeded: %d days since delivery, limit is %d days", days, service.Config.ReturnWindowDays)
	}

	dbResource := transformers.ReturnRequestTransformer{}.TransformToDB(ret)
	err = service.DAO.CreateReturnRequest(ctx, &dbResource)
	if errors.Is(err, dao.ErrDuplicate) {
		metrics.RecordTransition(returnEntity, "create", metrics.OutcomeRejected)
		return nil, Conflict, ErrReturnExists
	}
	if err != nil {
		metrics.RecordTransition(returnEntity, "create", metrics.OutcomeError)
		err = fmt.Errorf("error writing return request to DB: [%w]", err)
		return nil, responseTypeFor(err), err
	}
	ret.Persisted(dbResource.Version)

	metrics.RecordTransition(returnEntity, "create", metrics.OutcomeSuccess)
	log.Info("return request created", log.Data{"return_id": ret.ID(), "order_id": ret.OrderID()})

	response := mappers.MapToReturnRequestResponse(ret)
	return &response, Success, nil
}

// GetReturn retrieves a return request by id for its customer or its creator
func (service *ReturnService) GetReturn(ctx context.Context, returnID, callerID string) (*models.ReturnRequestResponse, ResponseType, error) {
	ret, responseType, err := service.loadReturn(ctx, returnID)
	if err != nil {
		return nil, responseType, err
	}

	if callerID != ret.CustomerID() && callerID != ret.CreatorID() {
		return nil, Forbidden, ErrNotReturnOwner
	}

	response := mappers.MapToReturnRequestResponse(ret)
	return &response, Success, nil
}

// ApproveReturn lets the creator accept a REQUESTED return
func (service *ReturnService) ApproveReturn(ctx context.Context, input models.ReturnDecisionRequest) (*models.ReturnRequestResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}

	return service.transition(ctx, input.ReturnID, input.CreatorID, models.ApproveReturn, func(ret *models.ReturnRequest, now time.Time) error {
		return ret.Approve(now)
	})
}

// RejectReturn lets the creator refuse a REQUESTED return
func (service *ReturnService) RejectReturn(ctx context.Context, input models.RejectReturnRequest) (*models.ReturnRequestResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}
	if err := models.ValidateRejectionReason(input.Reason); err != nil {
		return nil, responseTypeFor(err), err
	}

	return service.transition(ctx, input.ReturnID, input.CreatorID, models.RejectReturn, func(ret *models.ReturnRequest, now time.Time) error {
		return ret.Reject(input.Reason, now)
	})
}

// ShipBackReturn lets the customer record the parcel sending an APPROVED return back
func (service *ReturnService) ShipBackReturn(ctx context.Context, input models.ShipBackReturnRequest) (*models.ReturnRequestResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}
	if err := models.ValidateShipment(input.TrackingNumber, input.Carrier); err != nil {
		return nil, responseTypeFor(err), err
	}

	return service.transition(ctx, input.ReturnID, input.CustomerID, models.ShipBackReturn, func(ret *models.ReturnRequest, now time.Time) error {
		return ret.ShipBack(input.TrackingNumber, input.Carrier, now)
	})
}

// ReceiveReturn lets the creator confirm a SHIPPED_BACK return arrived
func (service *ReturnService) ReceiveReturn(ctx context.Context, input models.ReturnDecisionRequest) (*models.ReturnRequestResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}

	return service.transition(ctx, input.ReturnID, input.CreatorID, models.ReceiveReturn, func(ret *models.ReturnRequest, now time.Time) error {
		return ret.Receive(now)
	})
}

// RefundReturn lets the creator refund a RECEIVED return. The refund and the
// stock owed to inventory are saved together; the inventory call follows and
// a failure there leaves the restoration pending for a later retry.
func (service *ReturnService) RefundReturn(ctx context.Context, input models.ReturnDecisionRequest) (*models.ReturnRequestResponse, ResponseType, error) {
	if err := validateInput(input); err != nil {
		return nil, responseTypeFor(err), err
	}

	ret, responseType, err := service.apply(ctx, input.ReturnID, input.CreatorID, models.RefundReturn, func(ret *models.ReturnRequest, now time.Time) error {
		return ret.Refund(now)
	})
	if err != nil {
		return nil, responseType, err
	}

	if err = restoreStock(ctx, service.DAO, service.Inventory, ret, service.now); err != nil {
		log.Info("stock restoration left pending", log.Data{"return_id": ret.ID(), "error": err.Error()})
	}

	response := mappers.MapToReturnRequestResponse(ret)
	return &response, Success, nil
}

func (service *ReturnService) loadReturn(ctx context.Context, returnID string) (*models.ReturnRequest, ResponseType, error) {
	dbResource, err := service.DAO.GetReturnRequest(ctx, returnID)
	if err != nil {
		err = fmt.Errorf("error getting return request from DB: [%w]", err)
		return nil, responseTypeFor(err), err
	}
	if dbResource == nil {
		return nil, NotFound, ErrReturnNotFound
	}

	return transformers.ReturnRequestTransformer{}.TransformToDomain(*dbResource), Success, nil
}

// loadGuardedReturn loads a return request and checks, in order, that it
// exists, that callerID owns action and that its status allows action.
func (service *ReturnService) loadGuardedReturn(ctx context.Context, returnID, callerID string, action models.ReturnAction) (*models.ReturnRequest, ResponseType, error) {
	ret, responseType, err := service.loadReturn(ctx, returnID)
	if err != nil {
		return nil, responseType, err
	}

	if ret.OwnerOf(action) != callerID {
		return nil, Forbidden, ErrNotReturnOwner
	}

	if err = ret.CanPerform(action); err != nil {
		return nil, responseTypeFor(err), err
	}

	return ret, Success, nil
}

func (service *ReturnService) transition(ctx context.Context, returnID, callerID string, action models.ReturnAction, change func(*models.ReturnRequest, time.Time) error) (*models.ReturnRequestResponse, ResponseType, error) {
	ret, responseType, err := service.apply(ctx, returnID, callerID, action, change)
	if err != nil {
		return nil, responseType, err
	}

	response := mappers.MapToReturnRequestResponse(ret)
	return &response, Success, nil
}

// apply runs load, guard, mutate and save once. The save only lands when
// nobody else saved the return request since it was loaded.
func (service *ReturnService) apply(ctx context.Context, returnID, callerID string, action models.ReturnAction, change func(*models.ReturnRequest, time.Time) error) (*models.ReturnRequest, ResponseType, error) {
	ret, responseType, err := service.loadGuardedReturn(ctx, returnID, callerID, action)
	if err != nil {
		metrics.RecordTransition(returnEntity, string(action), metrics.OutcomeRejected)
		return nil, responseType, err
	}

	if err = change(ret, service.now()); err != nil {
		metrics.RecordTransition(returnEntity, string(action), metrics.OutcomeRejected)
		return nil, responseTypeFor(err), err
	}

	if err = saveReturn(ctx, service.DAO, ret); err != nil {
		metrics.RecordTransition(returnEntity, string(action), metrics.OutcomeError)
		return nil, responseTypeFor(err), err
	}

	metrics.RecordTransition(returnEntity, string(action), metrics.OutcomeSuccess)
	log.Info("return request updated", log.Data{"return_id": ret.ID(), "status": ret.Status(), "action": action})

	return ret, Success, nil
}

func saveReturn(ctx context.Context, store dao.DAO, ret *models.ReturnRequest) error {
	dbResource := transformers.ReturnRequestTransformer{}.TransformToDB(ret)
	if err := store.UpdateReturnRequest(ctx, &dbResource); err != nil {
		return saveError("return request", err)
	}
	ret.Persisted(dbResource.Version)
	return nil
}
