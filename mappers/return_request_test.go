package mappers

import (
	"testing"
	"time"

	"github.com/storefront/settlements.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMapToReturnRequestResponse(t *testing.T) {
	Convey("Maps successfully to return request response", t, func() {
		now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
		ret := models.RestoreReturnRequest(models.ReturnRequestState{
			ID:         "return-1",
			OrderID:    "order-1",
			CustomerID: "customer-1",
			CreatorID:  "creator-1",
			Reason:     models.ReasonDamagedInTransit,
			Status:     models.ReturnRefunded,
			Items:      []models.ReturnItem{{VariantID: "variant-1", Quantity: 3}},
			RefundedAt: &now,
			StockRestoration: &models.StockRestoration{
				Status:      models.RestorationCompleted,
				Items:       []models.StockAdjustment{{VariantID: "variant-1", Quantity: 3}},
				Attempts:    1,
				CompletedAt: &now,
			},
		})

		response := MapToReturnRequestResponse(ret)

		So(response.Status, ShouldEqual, "REFUNDED")
		So(response.Reason, ShouldEqual, "DAMAGED_IN_TRANSIT")
		So(response.Items, ShouldResemble, []models.ReturnItemResponse{{VariantID: "variant-1", Quantity: 3}})
		So(response.StockRestoration.Status, ShouldEqual, "COMPLETED")
		So(*response.RefundedAt, ShouldEqual, now)
	})

	Convey("Return without a stock restoration omits it", t, func() {
		ret := models.RestoreReturnRequest(models.ReturnRequestState{ID: "return-1", Status: models.ReturnRequested})
		So(MapToReturnRequestResponse(ret).StockRestoration, ShouldBeNil)
	})
}
