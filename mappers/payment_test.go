package mappers

import (
	"testing"

	"github.com/storefront/settlements.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitFormatAmount(t *testing.T) {
	Convey("Two decimal currencies", t, func() {
		So(FormatAmount(2599, "EUR"), ShouldEqual, "25.99")
		So(FormatAmount(5, "GBP"), ShouldEqual, "0.05")
		So(FormatAmount(100000, "USD"), ShouldEqual, "1000.00")
	})

	Convey("Zero decimal currencies", t, func() {
		So(FormatAmount(1500, "JPY"), ShouldEqual, "1500")
	})
}

func TestUnitMapToPaymentResponse(t *testing.T) {
	Convey("Maps successfully to payment response", t, func() {
		payment := models.RestorePayment(models.PaymentState{
			ID:            "payment-1",
			OrderID:       "order-1",
			Amount:        2599,
			Currency:      "EUR",
			Status:        models.PaymentFailed,
			PaymentMethod: models.ApplePayPayment,
			FailureReason: "payment failed",
		})

		response := MapToPaymentResponse(payment)

		So(response.ID, ShouldEqual, "payment-1")
		So(response.AmountDisplay, ShouldEqual, "25.99")
		So(response.Status, ShouldEqual, "FAILED")
		So(response.PaymentMethod, ShouldEqual, "APPLE_PAY")
		So(response.FailureReason, ShouldEqual, "payment failed")
	})
}
