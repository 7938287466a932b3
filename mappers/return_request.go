package mappers

import "github.com/storefront/settlements.api/models"

// MapToReturnRequestResponse maps a return request to its public representation
func MapToReturnRequestResponse(ret *models.ReturnRequest) models.ReturnRequestResponse {
	state := ret.State()

	response := models.ReturnRequestResponse{
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
	}

	for _, item := range state.Items {
		response.Items = append(response.Items, models.ReturnItemResponse(item))
	}

	if restoration := state.StockRestoration; restoration != nil {
		response.StockRestoration = &models.StockRestorationResponse{
			Status:      string(restoration.Status),
			Attempts:    restoration.Attempts,
			LastError:   restoration.LastError,
			CompletedAt: restoration.CompletedAt,
		}
	}

	return response
}
