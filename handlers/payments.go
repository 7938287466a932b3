package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/storefront/settlements.api/helpers"
	"github.com/storefront/settlements.api/models"
	"github.com/storefront/settlements.api/utils"
)

// HandleCreatePayment opens a pending payment for an order
func HandleCreatePayment(w http.ResponseWriter, req *http.Request) {
	var input models.CreatePaymentRequest
	if err := utils.DecodeJSONBody(req, &input); err != nil {
		writeBadRequest(w, req, err)
		return
	}

	payment, responseType, err := paymentService.CreatePayment(req.Context(), input)
	if err != nil {
		writeServiceError(w, req, "create payment", responseType, err)
		return
	}

	w.Header().Set("Location", "/payments/"+payment.ID)
	utils.WriteJSONWithStatus(w, req, payment, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new payment", log.Data{"payment_id": payment.ID, "order_id": payment.OrderID, "status": http.StatusCreated})
}

// HandleGetPayment returns a single payment
func HandleGetPayment(w http.ResponseWriter, req *http.Request) {
	paymentID := mux.Vars(req)["payment_id"]

	payment, responseType, err := paymentService.GetPayment(req.Context(), paymentID, helpers.GetCallerID(req))
	if err != nil {
		writeServiceError(w, req, "get payment", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)
}

// HandleMarkPaymentAsProcessing records that the processor has accepted the payment
func HandleMarkPaymentAsProcessing(w http.ResponseWriter, req *http.Request) {
	var input models.MarkPaymentProcessingRequest
	if err := utils.DecodeJSONBody(req, &input); err != nil {
		writeBadRequest(w, req, err)
		return
	}
	input.PaymentID = mux.Vars(req)["payment_id"]

	payment, responseType, err := paymentService.MarkPaymentAsProcessing(req.Context(), input)
	if err != nil {
		writeServiceError(w, req, "mark payment as processing", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)
}

// HandleProcessPayment applies the processor outcome or a refund to a payment
func HandleProcessPayment(w http.ResponseWriter, req *http.Request) {
	var input models.ProcessPaymentRequest
	if err := utils.DecodeJSONBody(req, &input); err != nil {
		writeBadRequest(w, req, err)
		return
	}
	input.PaymentID = mux.Vars(req)["payment_id"]

	payment, responseType, err := paymentService.ProcessPayment(req.Context(), input)
	if err != nil {
		writeServiceError(w, req, "process payment", responseType, err)
		return
	}

	logData := log.Data{"payment_id": payment.ID, "action": input.Action, "payment_status": payment.Status}
	if payment.Status == string(models.PaymentSucceeded) || payment.Status == string(models.PaymentRefunded) {
		if err = handleSettlementMessage(PaymentResourceKind, payment.ID, payment.Status); err != nil {
			log.ErrorR(req, err, logData)
		}
	}

	utils.WriteJSONWithStatus(w, req, payment, http.StatusOK)
	log.InfoR(req, "Successfully processed payment", logData)
}
