package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitIsRoleAuthorised(t *testing.T) {
	Convey("Roles are matched exactly", t, func() {
		req := httptest.NewRequest(http.MethodPost, "/returns/stock-restorations/process-pending", nil)
		req.Header.Set("ERIC-Authorised-Roles", "/admin/payment-lookup  /admin/stock-restorations")

		So(IsRoleAuthorised(req, AdminStockRestorationRole), ShouldBeTrue)
		So(IsRoleAuthorised(req, "/admin"), ShouldBeFalse)
		So(IsRoleAuthorised(req, ""), ShouldBeFalse)
	})

	Convey("No roles header", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/returns/1", nil)
		So(IsRoleAuthorised(req, AdminStockRestorationRole), ShouldBeFalse)
	})
}

func TestUnitGetCallerID(t *testing.T) {
	Convey("Identity header is trimmed", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/returns/1", nil)
		req.Header.Set("ERIC-Identity", " user-1 ")
		So(GetAuthorisedIdentity(req), ShouldEqual, "user-1")
	})

	Convey("Caller id comes from the context", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/returns/1", nil)
		So(GetCallerID(req), ShouldEqual, "")

		req = req.WithContext(context.WithValue(req.Context(), ContextKeyCallerID, "user-1"))
		So(GetCallerID(req), ShouldEqual, "user-1")
	})
}
