package handlers

import (
	"context"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/storefront/settlements.api/helpers"
	"github.com/storefront/settlements.api/models"
	"github.com/storefront/settlements.api/service"
	"github.com/storefront/settlements.api/utils"
)

// HandleCreateReturn opens a return request for the calling customer
func HandleCreateReturn(w http.ResponseWriter, req *http.Request) {
	var input models.CreateReturnRequest
	if err := utils.DecodeJSONBody(req, &input); err != nil {
		writeBadRequest(w, req, err)
		return
	}
	input.CustomerID = helpers.GetCallerID(req)

	ret, responseType, err := returnService.CreateReturn(req.Context(), input)
	if err != nil {
		writeServiceError(w, req, "create return request", responseType, err)
		return
	}

	w.Header().Set("Location", "/returns/"+ret.ID)
	utils.WriteJSONWithStatus(w, req, ret, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new return request", log.Data{"return_id": ret.ID, "order_id": ret.OrderID, "status": http.StatusCreated})
}

// HandleGetReturn returns a single return request
func HandleGetReturn(w http.ResponseWriter, req *http.Request) {
	returnID := mux.Vars(req)["return_id"]

	ret, responseType, err := returnService.GetReturn(req.Context(), returnID, helpers.GetCallerID(req))
	if err != nil {
		writeServiceError(w, req, "get return request", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, ret, http.StatusOK)
}

// HandleApproveReturn approves a requested return on behalf of the store
func HandleApproveReturn(w http.ResponseWriter, req *http.Request) {
	handleReturnDecision(w, req, "approve return request", returnService.ApproveReturn)
}

// HandleReceiveReturn records that the returned goods arrived at the store
func HandleReceiveReturn(w http.ResponseWriter, req *http.Request) {
	handleReturnDecision(w, req, "receive return request", returnService.ReceiveReturn)
}

// HandleRefundReturn refunds a received return and restores the returned stock
func HandleRefundReturn(w http.ResponseWriter, req *http.Request) {
	ret, ok := handleReturnDecision(w, req, "refund return request", returnService.RefundReturn)
	if !ok {
		return
	}

	if err := handleSettlementMessage(ReturnResourceKind, ret.ID, ret.Status); err != nil {
		log.ErrorR(req, err, log.Data{"return_id": ret.ID})
	}
}

// HandleRejectReturn rejects a requested return with a reason
func HandleRejectReturn(w http.ResponseWriter, req *http.Request) {
	var input models.RejectReturnRequest
	if err := utils.DecodeJSONBody(req, &input); err != nil {
		writeBadRequest(w, req, err)
		return
	}
	input.ReturnID = mux.Vars(req)["return_id"]
	input.CreatorID = helpers.GetCallerID(req)

	ret, responseType, err := returnService.RejectReturn(req.Context(), input)
	if err != nil {
		writeServiceError(w, req, "reject return request", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, ret, http.StatusOK)
	log.InfoR(req, "Successfully rejected return request", log.Data{"return_id": ret.ID})
}

// HandleShipBackReturn records the customer's shipment of the goods back to the store
func HandleShipBackReturn(w http.ResponseWriter, req *http.Request) {
	var input models.ShipBackReturnRequest
	if err := utils.DecodeJSONBody(req, &input); err != nil {
		writeBadRequest(w, req, err)
		return
	}
	input.ReturnID = mux.Vars(req)["return_id"]
	input.CustomerID = helpers.GetCallerID(req)

	ret, responseType, err := returnService.ShipBackReturn(req.Context(), input)
	if err != nil {
		writeServiceError(w, req, "ship back return request", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, ret, http.StatusOK)
	log.InfoR(req, "Successfully shipped back return request", log.Data{"return_id": ret.ID, "carrier": ret.Carrier})
}

type returnDecision func(ctx context.Context, input models.ReturnDecisionRequest) (*models.ReturnRequestResponse, service.ResponseType, error)

// handleReturnDecision runs a store side transition that takes no body
// beyond the return id and the calling creator
func handleReturnDecision(w http.ResponseWriter, req *http.Request, operation string, decide returnDecision) (*models.ReturnRequestResponse, bool) {
	input := models.ReturnDecisionRequest{
		ReturnID:  mux.Vars(req)["return_id"],
		CreatorID: helpers.GetCallerID(req),
	}

	ret, responseType, err := decide(req.Context(), input)
	if err != nil {
		writeServiceError(w, req, operation, responseType, err)
		return nil, false
	}

	utils.WriteJSONWithStatus(w, req, ret, http.StatusOK)
	log.InfoR(req, "Successful "+operation, log.Data{"return_id": ret.ID, "return_status": ret.Status})
	return ret, true
}
