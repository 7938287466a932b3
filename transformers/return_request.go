package transformers

import (
	"github.com/storefront/settlements.api/models"
)

// ReturnRequestTransformer transforms return requests between the domain and database models
type ReturnRequestTransformer struct{}

// TransformToDB transforms a return request into its database model
func (rt ReturnRequestTransformer) TransformToDB(ret *models.ReturnRequest) models.ReturnRequestDB {
	state := ret.State()

	dbResource := models.ReturnRequestDB{
		ID:              state.ID,
		OrderID:         state.OrderID,
		OrderNumber:     state.OrderNumber,
		CustomerID:      state.CustomerID,
		CustomerName:    state.CustomerName,
		CustomerEmail:   state.CustomerEmail,
		CreatorID:       state.CreatorID,
		Reason:          string(state.Reason),
		ReasonDetails:   state.ReasonDetails,
		Status:          string(state.Status),
		RejectionReason: state.RejectionReason,
		TrackingNumber:  state.TrackingNumber,
		Carrier:         state.Carrier,
		DeliveredAt:     state.DeliveredAt,
		CreatedAt:       state.CreatedAt,
		UpdatedAt:       state.UpdatedAt,
		ApprovedAt:      state.ApprovedAt,
		RejectedAt:      state.RejectedAt,
		ShippedAt:       state.ShippedAt,
		ReceivedAt:      state.ReceivedAt,
		RefundedAt:      state.RefundedAt,
		Version:         state.Version,
	}

	for _, item := range state.Items {
		dbResource.Items = append(dbResource.Items, models.ReturnItemDB(item))
	}

	if restoration := state.StockRestoration; restoration != nil {
		restorationDB := &models.StockRestorationDB{
			Status:        string(restoration.Status),
			Attempts:      restoration.Attempts,
			LastError:     restoration.LastError,
			LastAttemptAt: restoration.LastAttemptAt,
			CompletedAt:   restoration.CompletedAt,
		}
		for _, adjustment := range restoration.Items {
			restorationDB.Items = append(restorationDB.Items, models.StockAdjustmentDB(adjustment))
		}
		dbResource.StockRestoration = restorationDB
	}

	return dbResource
}

// TransformToDomain rebuilds a return request from its database model
func (rt ReturnRequestTransformer) TransformToDomain(dbResource models.ReturnRequestDB) *models.ReturnRequest {
	state := models.ReturnRequestState{
		ID:              dbResource.ID,
		OrderID:         dbResource.OrderID,
		OrderNumber:     dbResource.OrderNumber,
		CustomerID:      dbResource.CustomerID,
		CustomerName:    dbResource.CustomerName,
		CustomerEmail:   dbResource.CustomerEmail,
		CreatorID:       dbResource.CreatorID,
		Reason:          models.ReturnReason(dbResource.Reason),
		ReasonDetails:   dbResource.ReasonDetails,
		Status:          models.ReturnStatus(dbResource.Status),
		RejectionReason: dbResource.RejectionReason,
		TrackingNumber:  dbResource.TrackingNumber,
		Carrier:         dbResource.Carrier,
		DeliveredAt:     dbResource.DeliveredAt,
		CreatedAt:       dbResource.CreatedAt,
		UpdatedAt:       dbResource.UpdatedAt,
		ApprovedAt:      dbResource.ApprovedAt,
		RejectedAt:      dbResource.RejectedAt,
		ShippedAt:       dbResource.ShippedAt,
		ReceivedAt:      dbResource.ReceivedAt,
		RefundedAt:      dbResource.RefundedAt,
		Version:         dbResource.Version,
	}

	for _, item := range dbResource.Items {
		state.Items = append(state.Items, models.ReturnItem(item))
	}

	if restorationDB := dbResource.StockRestoration; restorationDB != nil {
		restoration := &models.StockRestoration{
			Status:        models.RestorationStatus(restorationDB.Status),
			Attempts:      restorationDB.Attempts,
			LastError:     restorationDB.LastError,
			LastAttemptAt: restorationDB.LastAttemptAt,
			CompletedAt:   restorationDB.CompletedAt,
		}
		for _, adjustment := range restorationDB.Items {
			restoration.Items = append(restoration.Items, models.StockAdjustment(adjustment))
		}
		state.StockRestoration = restoration
	}

	return models.RestoreReturnRequest(state)
}
