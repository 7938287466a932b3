package dao

import (
	"context"
	"testing"
	"time"

	"github.com/storefront/settlements.api/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMemoryServicePayments(t *testing.T) {
	ctx := context.Background()

	Convey("Payments are versioned and unique per order", t, func() {
		store := NewMemoryService()

		payment := models.PaymentDB{ID: "payment-1", OrderID: "order-1", Status: "PENDING"}
		So(store.CreatePayment(ctx, &payment), ShouldBeNil)
		So(payment.Version, ShouldEqual, 1)

		duplicate := models.PaymentDB{ID: "payment-2", OrderID: "order-1"}
		So(store.CreatePayment(ctx, &duplicate), ShouldEqual, ErrDuplicate)

		byOrder, err := store.GetPaymentByOrderID(ctx, "order-1")
		So(err, ShouldBeNil)
		So(byOrder.ID, ShouldEqual, "payment-1")

		stale := payment
		payment.Status = "PROCESSING"
		So(store.UpdatePayment(ctx, &payment), ShouldBeNil)
		So(payment.Version, ShouldEqual, 2)

		stale.Status = "FAILED"
		So(store.UpdatePayment(ctx, &stale), ShouldEqual, ErrVersionConflict)

		stored, err := store.GetPayment(ctx, "payment-1")
		So(err, ShouldBeNil)
		So(stored.Status, ShouldEqual, "PROCESSING")
		So(stored.Version, ShouldEqual, 2)
	})

	Convey("Missing payments are nil", t, func() {
		store := NewMemoryService()

		payment, err := store.GetPayment(ctx, "missing")
		So(payment, ShouldBeNil)
		So(err, ShouldBeNil)

		So(store.UpdatePayment(ctx, &models.PaymentDB{ID: "missing"}), ShouldEqual, ErrVersionConflict)
	})
}

func TestUnitMemoryServiceReturnRequests(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)

	Convey("Active return for an order is found past rejected ones", t, func() {
		store := NewMemoryService()

		rejected := models.ReturnRequestDB{ID: "return-1", OrderID: "order-1", Status: "REJECTED", CreatedAt: now}
		open := models.ReturnRequestDB{ID: "return-2", OrderID: "order-1", Status: "REQUESTED", CreatedAt: now}
		So(store.CreateReturnRequest(ctx, &rejected), ShouldBeNil)
		So(store.CreateReturnRequest(ctx, &open), ShouldBeNil)

		active, err := store.GetActiveReturnRequestByOrderID(ctx, "order-1")
		So(err, ShouldBeNil)
		So(active.ID, ShouldEqual, "return-2")

		none, err := store.GetActiveReturnRequestByOrderID(ctx, "order-2")
		So(err, ShouldBeNil)
		So(none, ShouldBeNil)
	})

	Convey("A second active return for an order is a duplicate", t, func() {
		store := NewMemoryService()

		first := models.ReturnRequestDB{ID: "return-1", OrderID: "order-1", Status: "APPROVED"}
		second := models.ReturnRequestDB{ID: "return-2", OrderID: "order-1", Status: "REQUESTED"}
		So(store.CreateReturnRequest(ctx, &first), ShouldBeNil)
		So(store.CreateReturnRequest(ctx, &second), ShouldEqual, ErrDuplicate)

		missing, _ := store.GetReturnRequest(ctx, "return-2")
		So(missing, ShouldBeNil)

		first.Status = "REJECTED"
		So(store.UpdateReturnRequest(ctx, &first), ShouldBeNil)
		So(store.CreateReturnRequest(ctx, &second), ShouldBeNil)
	})

	Convey("Stored return requests are isolated from callers", t, func() {
		store := NewMemoryService()

		ret := models.ReturnRequestDB{ID: "return-1", Items: []models.ReturnItemDB{{VariantID: "variant-1", Quantity: 1}}}
		So(store.CreateReturnRequest(ctx, &ret), ShouldBeNil)
		ret.Items[0].Quantity = 50

		stored, _ := store.GetReturnRequest(ctx, "return-1")
		So(stored.Items[0].Quantity, ShouldEqual, 1)
	})

	Convey("Pending stock restorations are listed oldest first", t, func() {
		store := NewMemoryService()

		pending := func(id string, updatedAt time.Time) *models.ReturnRequestDB {
			return &models.ReturnRequestDB{
				ID:               id,
				UpdatedAt:        updatedAt,
				StockRestoration: &models.StockRestorationDB{Status: "PENDING"},
			}
		}
		So(store.CreateReturnRequest(ctx, pending("return-late", now.Add(time.Hour))), ShouldBeNil)
		So(store.CreateReturnRequest(ctx, pending("return-early", now)), ShouldBeNil)
		So(store.CreateReturnRequest(ctx, &models.ReturnRequestDB{
			ID:               "return-done",
			StockRestoration: &models.StockRestorationDB{Status: "COMPLETED"},
		}), ShouldBeNil)
		So(store.CreateReturnRequest(ctx, &models.ReturnRequestDB{ID: "return-open"}), ShouldBeNil)

		returns, err := store.GetPendingStockRestorations(ctx, 0)
		So(err, ShouldBeNil)
		So(returns, ShouldHaveLength, 2)
		So(returns[0].ID, ShouldEqual, "return-early")
		So(returns[1].ID, ShouldEqual, "return-late")

		limited, _ := store.GetPendingStockRestorations(ctx, 1)
		So(limited, ShouldHaveLength, 1)
	})
}
