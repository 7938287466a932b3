package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/storefront/settlements.api/config"
	"github.com/storefront/settlements.api/dao"
	"github.com/storefront/settlements.api/fixtures"
	"github.com/storefront/settlements.api/models"
	"github.com/storefront/settlements.api/service"
	"github.com/storefront/settlements.api/utils"

	. "github.com/smartystreets/goconvey/convey"
)

type settlementMessage struct {
	kind, id, status string
}

// setUpRouter registers every route against an in-memory store, a fixed
// clock and a mocked inventory, and records settlement messages instead of
// sending them to kafka
func setUpRouter(inventory service.InventoryService) (*mux.Router, *[]settlementMessage) {
	cfg := config.DefaultConfig()
	cfg.StorageBackend = config.StorageMemory

	router := mux.NewRouter()
	Register(router, *cfg, dao.NewMemoryService())

	paymentService.Now = fixtures.Clock
	returnService.Now = fixtures.Clock
	returnService.Inventory = inventory
	stockRestorationService.Now = fixtures.Clock
	stockRestorationService.Inventory = inventory

	messages := &[]settlementMessage{}
	handleSettlementMessage = func(kind, id, status string) error {
		*messages = append(*messages, settlementMessage{kind, id, status})
		return nil
	}

	return router, messages
}

func serve(router *mux.Router, method, path, identity string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if identity != "" {
		req.Header.Set("ERIC-Identity", identity)
		req.Header.Set("ERIC-Identity-Type", "oauth2")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// serveWithKey sends the request as an elevated API key
func serveWithKey(router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("ERIC-Identity", "checkout-key")
	req.Header.Set("ERIC-Identity-Type", "key")
	req.Header.Set("ERIC-Authorised-Key-Roles", "*")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func message(w *httptest.ResponseRecorder) string {
	var resource utils.ResponseResource
	_ = json.Unmarshal(w.Body.Bytes(), &resource)
	return resource.Message
}

func TestUnitRegisterRoutes(t *testing.T) {
	Convey("Register routes", t, func() {
		router, _ := setUpRouter(nil)
		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("get-metrics"), ShouldNotBeNil)
		So(router.GetRoute("create-payment"), ShouldNotBeNil)
		So(router.GetRoute("process-payment"), ShouldNotBeNil)
		So(router.GetRoute("refund-return"), ShouldNotBeNil)
		So(router.GetRoute("process-pending-stock-restorations"), ShouldNotBeNil)

		w := serve(router, http.MethodGet, "/healthcheck", "", nil)
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}

func TestUnitStatusFor(t *testing.T) {
	Convey("Response types map to http statuses", t, func() {
		So(statusFor(service.InvalidData), ShouldEqual, http.StatusBadRequest)
		So(statusFor(service.Forbidden), ShouldEqual, http.StatusForbidden)
		So(statusFor(service.NotFound), ShouldEqual, http.StatusNotFound)
		So(statusFor(service.Conflict), ShouldEqual, http.StatusConflict)
		So(statusFor(service.RuleViolation), ShouldEqual, http.StatusUnprocessableEntity)
		So(statusFor(service.Retry), ShouldEqual, http.StatusServiceUnavailable)
		So(statusFor(service.Error), ShouldEqual, http.StatusInternalServerError)
	})
}

func TestUnitPaymentHandlers(t *testing.T) {

	Convey("Create payment needs an elevated key", t, func() {
		router, _ := setUpRouter(nil)
		w := serve(router, http.MethodPost, "/payments", fixtures.CustomerID, fixtures.GetCreatePaymentRequest(fixtures.OrderID))
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Create payment with an empty body", t, func() {
		router, _ := setUpRouter(nil)
		req := httptest.NewRequest(http.MethodPost, "/payments", nil)
		req.Header.Set("ERIC-Identity-Type", "key")
		req.Header.Set("ERIC-Authorised-Key-Roles", "*")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(message(w), ShouldEqual, "request body empty")
	})

	Convey("Create payment with invalid data", t, func() {
		router, _ := setUpRouter(nil)
		input := fixtures.GetCreatePaymentRequest(fixtures.OrderID)
		input.Amount = 0
		w := serveWithKey(router, http.MethodPost, "/payments", input)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(message(w), ShouldEqual, "amount must be greater than 0")
	})

	Convey("Payment lifecycle over http", t, func() {
		router, messages := setUpRouter(nil)

		w := serveWithKey(router, http.MethodPost, "/payments", fixtures.GetCreatePaymentRequest(fixtures.OrderID))
		So(w.Code, ShouldEqual, http.StatusCreated)

		var payment models.PaymentResponse
		So(json.Unmarshal(w.Body.Bytes(), &payment), ShouldBeNil)
		So(payment.Status, ShouldEqual, "PENDING")
		So(payment.AmountDisplay, ShouldEqual, "29.99")
		So(w.Header().Get("Location"), ShouldEqual, "/payments/"+payment.ID)

		w = serveWithKey(router, http.MethodPost, "/payments", fixtures.GetCreatePaymentRequest(fixtures.OrderID))
		So(w.Code, ShouldEqual, http.StatusConflict)

		w = serve(router, http.MethodGet, "/payments/"+payment.ID, "", nil)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)

		w = serve(router, http.MethodGet, "/payments/unknown", fixtures.CustomerID, nil)
		So(w.Code, ShouldEqual, http.StatusNotFound)

		w = serve(router, http.MethodGet, "/payments/"+payment.ID, "someone-else", nil)
		So(w.Code, ShouldEqual, http.StatusForbidden)
		So(message(w), ShouldEqual, "not authorized to view this payment")

		w = serveWithKey(router, http.MethodPost, "/payments/"+payment.ID+"/processing", models.MarkPaymentProcessingRequest{ConfirmationRef: "conf-1"})
		So(w.Code, ShouldEqual, http.StatusOK)
		So(*messages, ShouldBeEmpty)

		w = serveWithKey(router, http.MethodPost, "/payments/"+payment.ID+"/actions", models.ProcessPaymentRequest{Action: "SUCCEED"})
		So(w.Code, ShouldEqual, http.StatusOK)
		So(*messages, ShouldResemble, []settlementMessage{{PaymentResourceKind, payment.ID, "SUCCEEDED"}})

		w = serveWithKey(router, http.MethodPost, "/payments/"+payment.ID+"/actions", models.ProcessPaymentRequest{Action: "FAIL"})
		So(w.Code, ShouldEqual, http.StatusConflict)

		w = serveWithKey(router, http.MethodPost, "/payments/"+payment.ID+"/actions", models.ProcessPaymentRequest{Action: "REFUND", RefundRef: "re-1"})
		So(w.Code, ShouldEqual, http.StatusOK)
		So(*messages, ShouldHaveLength, 2)
		So((*messages)[1].status, ShouldEqual, "REFUNDED")

		w = serve(router, http.MethodGet, "/payments/"+payment.ID, fixtures.CustomerID, nil)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(json.Unmarshal(w.Body.Bytes(), &payment), ShouldBeNil)
		So(payment.RefundRef, ShouldEqual, "re-1")
	})

	Convey("Payment state changes need an elevated key", t, func() {
		router, messages := setUpRouter(nil)

		w := serveWithKey(router, http.MethodPost, "/payments", fixtures.GetCreatePaymentRequest(fixtures.OrderID))
		So(w.Code, ShouldEqual, http.StatusCreated)

		var payment models.PaymentResponse
		So(json.Unmarshal(w.Body.Bytes(), &payment), ShouldBeNil)

		w = serve(router, http.MethodPost, "/payments/"+payment.ID+"/actions", "someone-else", models.ProcessPaymentRequest{Action: "SUCCEED"})
		So(w.Code, ShouldEqual, http.StatusUnauthorized)

		w = serve(router, http.MethodPost, "/payments/"+payment.ID+"/processing", fixtures.CustomerID, models.MarkPaymentProcessingRequest{ConfirmationRef: "conf-1"})
		So(w.Code, ShouldEqual, http.StatusUnauthorized)

		w = serve(router, http.MethodGet, "/payments/"+payment.ID, fixtures.CustomerID, nil)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(json.Unmarshal(w.Body.Bytes(), &payment), ShouldBeNil)
		So(payment.Status, ShouldEqual, "PENDING")
		So(*messages, ShouldBeEmpty)
	})
}

func TestUnitReturnHandlers(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	item := models.ReturnItemRequest{ProductID: "p1", VariantID: fixtures.VariantID, Quantity: 2}

	Convey("Create return outside the window", t, func() {
		router, _ := setUpRouter(nil)
		w := serve(router, http.MethodPost, "/returns", fixtures.CustomerID, fixtures.GetCreateReturnRequest(fixtures.OrderID, 15, item))
		So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
		So(message(w), ShouldEqual, "return window exceeded: 15 days since delivery, limit is 14 days")
	})

	Convey("Create return without an identity", t, func() {
		router, _ := setUpRouter(nil)
		w := serve(router, http.MethodPost, "/returns", "", fixtures.GetCreateReturnRequest(fixtures.OrderID, 3, item))
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Return lifecycle over http", t, func() {
		inventory := service.NewMockInventoryService(mockCtrl)
		router, messages := setUpRouter(inventory)

		w := serve(router, http.MethodPost, "/returns", fixtures.CustomerID, fixtures.GetCreateReturnRequest(fixtures.OrderID, 3, item))
		So(w.Code, ShouldEqual, http.StatusCreated)

		var ret models.ReturnRequestResponse
		So(json.Unmarshal(w.Body.Bytes(), &ret), ShouldBeNil)
		So(ret.Status, ShouldEqual, "REQUESTED")
		path := "/returns/" + ret.ID

		w = serve(router, http.MethodPost, "/returns", fixtures.CustomerID, fixtures.GetCreateReturnRequest(fixtures.OrderID, 3, item))
		So(w.Code, ShouldEqual, http.StatusConflict)

		w = serve(router, http.MethodPost, path+"/approve", fixtures.CustomerID, nil)
		So(w.Code, ShouldEqual, http.StatusForbidden)

		w = serve(router, http.MethodPost, path+"/reject", fixtures.CreatorID, models.RejectReturnRequest{Reason: " "})
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(message(w), ShouldEqual, "a rejection reason is required")

		w = serve(router, http.MethodPost, path+"/approve", fixtures.CreatorID, nil)
		So(w.Code, ShouldEqual, http.StatusOK)

		w = serve(router, http.MethodPost, path+"/receive", fixtures.CreatorID, nil)
		So(w.Code, ShouldEqual, http.StatusConflict)

		w = serve(router, http.MethodPost, path+"/ship-back", fixtures.CreatorID, models.ShipBackReturnRequest{TrackingNumber: "TRK1", Carrier: "DHL"})
		So(w.Code, ShouldEqual, http.StatusForbidden)

		w = serve(router, http.MethodPost, path+"/ship-back", fixtures.CustomerID, models.ShipBackReturnRequest{TrackingNumber: "TRK1", Carrier: "DHL"})
		So(w.Code, ShouldEqual, http.StatusOK)

		w = serve(router, http.MethodPost, path+"/receive", fixtures.CreatorID, nil)
		So(w.Code, ShouldEqual, http.StatusOK)

		inventory.EXPECT().IncrementStock(gomock.Any(), ret.ID, []models.StockAdjustment{{VariantID: fixtures.VariantID, Quantity: 2}}).Return(nil)

		w = serve(router, http.MethodPost, path+"/refund", fixtures.CreatorID, nil)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(json.Unmarshal(w.Body.Bytes(), &ret), ShouldBeNil)
		So(ret.Status, ShouldEqual, "REFUNDED")
		So(ret.StockRestoration.Status, ShouldEqual, "COMPLETED")
		So(*messages, ShouldResemble, []settlementMessage{{ReturnResourceKind, ret.ID, "REFUNDED"}})

		w = serve(router, http.MethodPost, path+"/refund", fixtures.CreatorID, nil)
		So(w.Code, ShouldEqual, http.StatusConflict)

		w = serve(router, http.MethodGet, path, fixtures.CustomerID, nil)
		So(w.Code, ShouldEqual, http.StatusOK)

		w = serve(router, http.MethodGet, path, "someone-else", nil)
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})
}

func TestUnitStockRestorationHandler(t *testing.T) {

	Convey("Process pending needs the admin role", t, func() {
		router, _ := setUpRouter(nil)
		w := serve(router, http.MethodPost, "/returns/stock-restorations/process-pending", fixtures.CreatorID, nil)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Process pending with nothing owed", t, func() {
		router, _ := setUpRouter(nil)
		req := httptest.NewRequest(http.MethodPost, "/returns/stock-restorations/process-pending", nil)
		req.Header.Set("ERIC-Identity", fixtures.CreatorID)
		req.Header.Set("ERIC-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-Roles", "/admin/stock-restorations")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		var summary models.StockRestorationSummary
		So(json.Unmarshal(w.Body.Bytes(), &summary), ShouldBeNil)
		So(summary.Processed, ShouldEqual, 0)
	})
}
