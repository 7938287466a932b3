package transformers

import (
	"testing"
	"time"

	"github.com/storefront/settlements.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitPaymentTransformToDB(t *testing.T) {
	Convey("Payment converted to DB", t, func() {
		now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
		payment := models.RestorePayment(models.PaymentState{
			ID:              "payment-1",
			OrderID:         "order-1",
			CustomerID:      "customer-1",
			CreatorID:       "creator-1",
			Amount:          1250,
			Currency:        "EUR",
			Status:          models.PaymentSucceeded,
			PaymentMethod:   models.SEPAPayment,
			ConfirmationRef: "conf-1",
			CreatedAt:       now,
			UpdatedAt:       now,
			Version:         3,
		})

		dbResource := PaymentTransformer{}.TransformToDB(payment)

		So(dbResource.ID, ShouldEqual, "payment-1")
		So(dbResource.Amount, ShouldEqual, 1250)
		So(dbResource.Status, ShouldEqual, "SUCCEEDED")
		So(dbResource.PaymentMethod, ShouldEqual, "SEPA")
		So(dbResource.ConfirmationRef, ShouldEqual, "conf-1")
		So(dbResource.Version, ShouldEqual, 3)
	})
}

func TestUnitPaymentTransformToDomain(t *testing.T) {
	Convey("DB converted to payment", t, func() {
		dbResource := models.PaymentDB{
			ID:            "payment-1",
			OrderID:       "order-1",
			Amount:        1250,
			Currency:      "EUR",
			Status:        "PROCESSING",
			PaymentMethod: "CARD",
			Version:       2,
		}

		payment := PaymentTransformer{}.TransformToDomain(dbResource)

		So(payment.ID(), ShouldEqual, "payment-1")
		So(payment.Status(), ShouldEqual, models.PaymentProcessing)
		So(payment.State().PaymentMethod, ShouldEqual, models.CardPayment)
		So(payment.Version(), ShouldEqual, 2)
		So(PaymentTransformer{}.TransformToDB(payment), ShouldResemble, dbResource)
	})
}
