package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/storefront/settlements.api/config"
	"github.com/storefront/settlements.api/dao"
	"github.com/storefront/settlements.api/interceptors"
	"github.com/storefront/settlements.api/metrics"
	"github.com/storefront/settlements.api/service"
)

var paymentService *service.PaymentService
var returnService *service.ReturnService
var stockRestorationService *service.StockRestorationService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config, store dao.DAO) {
	inventory := service.NewInventoryClient(&cfg)

	paymentService = &service.PaymentService{
		DAO:    store,
		Config: cfg,
	}

	returnService = &service.ReturnService{
		DAO:       store,
		Config:    cfg,
		Inventory: inventory,
	}

	stockRestorationService = &service.StockRestorationService{
		DAO:       store,
		Config:    cfg,
		Inventory: inventory,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")
	mainRouter.Handle("/metrics", metrics.Handler()).Methods("GET").Name("get-metrics")

	// create-payment is called by the checkout with an elevated API key, so needs to be it's own subrouter
	createPaymentRouter := mainRouter.PathPrefix("/payments").Subrouter()
	createPaymentRouter.HandleFunc("", HandleCreatePayment).Methods("POST").Name("create-payment")

	// payment state changes come from the payment provider callback, which holds an elevated API key
	paymentActionsRouter := mainRouter.PathPrefix("/payments/{payment_id}").Subrouter()
	paymentActionsRouter.HandleFunc("/processing", HandleMarkPaymentAsProcessing).Methods("POST").Name("mark-payment-processing")
	paymentActionsRouter.HandleFunc("/actions", HandleProcessPayment).Methods("POST").Name("process-payment")

	paymentRouter := mainRouter.PathPrefix("/payments/{payment_id}").Subrouter()
	paymentRouter.HandleFunc("", HandleGetPayment).Methods("GET").Name("get-payment")

	// process-pending is registered ahead of the {return_id} routes so the literal path wins
	stockRestorationRouter := mainRouter.PathPrefix("/returns/stock-restorations").Subrouter()
	stockRestorationRouter.HandleFunc("/process-pending", HandleProcessPendingStockRestorations).Methods("POST").Name("process-pending-stock-restorations")

	returnRouter := mainRouter.PathPrefix("/returns").Subrouter()
	returnRouter.HandleFunc("", HandleCreateReturn).Methods("POST").Name("create-return")
	returnRouter.HandleFunc("/{return_id}", HandleGetReturn).Methods("GET").Name("get-return")
	returnRouter.HandleFunc("/{return_id}/approve", HandleApproveReturn).Methods("POST").Name("approve-return")
	returnRouter.HandleFunc("/{return_id}/reject", HandleRejectReturn).Methods("POST").Name("reject-return")
	returnRouter.HandleFunc("/{return_id}/ship-back", HandleShipBackReturn).Methods("POST").Name("ship-back-return")
	returnRouter.HandleFunc("/{return_id}/receive", HandleReceiveReturn).Methods("POST").Name("receive-return")
	returnRouter.HandleFunc("/{return_id}/refund", HandleRefundReturn).Methods("POST").Name("refund-return")

	// Set middleware for subrouters
	createPaymentRouter.Use(log.Handler, metrics.Middleware, authentication.ElevatedPrivilegesInterceptor)
	paymentActionsRouter.Use(log.Handler, metrics.Middleware, authentication.ElevatedPrivilegesInterceptor)
	paymentRouter.Use(log.Handler, metrics.Middleware, interceptors.IdentityInterceptor)
	stockRestorationRouter.Use(log.Handler, metrics.Middleware, interceptors.StockRestorationAdminIntercept)
	returnRouter.Use(log.Handler, metrics.Middleware, interceptors.IdentityInterceptor)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
