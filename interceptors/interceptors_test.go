package interceptors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storefront/settlements.api/helpers"

	. "github.com/smartystreets/goconvey/convey"
)

// GetTestHandler returns a http.HandlerFunc for testing http middleware
func GetTestHandler() http.HandlerFunc {
	fn := func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	return http.HandlerFunc(fn)
}

func TestUnitIdentityInterceptor(t *testing.T) {

	Convey("Incorrect identity type", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/returns/1234", nil)
		req.Header.Set("ERIC-Identity", "customer-1")
		req.Header.Set("ERIC-Identity-Type", "notoauth2")

		w := httptest.NewRecorder()
		IdentityInterceptor(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("No identity in request", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/returns/1234", nil)
		req.Header.Set("ERIC-Identity-Type", "oauth2")

		w := httptest.NewRecorder()
		IdentityInterceptor(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Identity is passed on in the context", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/returns/1234", nil)
		req.Header.Set("ERIC-Identity", "customer-1")
		req.Header.Set("ERIC-Identity-Type", "oauth2")

		var callerID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerID = helpers.GetCallerID(r)
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		IdentityInterceptor(next).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(callerID, ShouldEqual, "customer-1")
	})
}

func TestUnitStockRestorationAdminIntercept(t *testing.T) {

	Convey("Key without elevated privileges", t, func() {
		req := httptest.NewRequest(http.MethodPost, "/returns/stock-restorations/process-pending", nil)
		req.Header.Set("ERIC-Identity-Type", "key")

		w := httptest.NewRecorder()
		StockRestorationAdminIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Elevated key", t, func() {
		req := httptest.NewRequest(http.MethodPost, "/returns/stock-restorations/process-pending", nil)
		req.Header.Set("ERIC-Identity-Type", "key")
		req.Header.Set("ERIC-Authorised-Key-Roles", "*")

		w := httptest.NewRecorder()
		StockRestorationAdminIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Oauth2 user without the admin role", t, func() {
		req := httptest.NewRequest(http.MethodPost, "/returns/stock-restorations/process-pending", nil)
		req.Header.Set("ERIC-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-Roles", "/admin/payment-lookup")

		w := httptest.NewRecorder()
		StockRestorationAdminIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Oauth2 user with the admin role", t, func() {
		req := httptest.NewRequest(http.MethodPost, "/returns/stock-restorations/process-pending", nil)
		req.Header.Set("ERIC-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-Roles", "/admin/stock-restorations")

		w := httptest.NewRecorder()
		StockRestorationAdminIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
