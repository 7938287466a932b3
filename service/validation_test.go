package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/storefront/settlements.api/dao"
	"github.com/storefront/settlements.api/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitValidateInput(t *testing.T) {
	Convey("Field errors use the json name", t, func() {
		err := validateInput(models.CreatePaymentRequest{CustomerID: "c", CreatorID: "c", Amount: 1, PaymentMethod: "CARD"})
		So(err.Error(), ShouldEqual, "order_id is required")

		var validationErr *models.ValidationError
		So(errors.As(err, &validationErr), ShouldBeTrue)
	})

	Convey("Email format is checked", t, func() {
		input := models.CreateReturnRequest{
			OrderID:       "o",
			OrderNumber:   "n",
			CustomerID:    "c",
			CustomerName:  "name",
			CustomerEmail: "not-an-email",
			CreatorID:     "c",
			Reason:        "OTHER",
		}
		So(validateInput(input).Error(), ShouldEqual, "customer_email must be a valid email address")
	})
}

func TestUnitResponseTypeFor(t *testing.T) {
	Convey("Errors map to response types", t, func() {
		So(responseTypeFor(models.NewValidationError("bad")), ShouldEqual, InvalidData)
		So(responseTypeFor(fmt.Errorf("wrapped: [%w]", dao.ErrVersionConflict)), ShouldEqual, Retry)
		So(responseTypeFor(context.Canceled), ShouldEqual, Retry)
		So(responseTypeFor(errors.New("boom")), ShouldEqual, Error)

		payment := models.RestorePayment(models.PaymentState{Status: models.PaymentFailed})
		So(responseTypeFor(payment.Refund("r", payment.State().UpdatedAt)), ShouldEqual, Conflict)
	})

	Convey("Response types have names", t, func() {
		So(RuleViolation.String(), ShouldEqual, "rule-violation")
		So(Retry.String(), ShouldEqual, "retry")
	})
}
