package models

import (
	"fmt"
	"strings"
	"time"
)

// ReturnStatus is the lifecycle state of a ReturnRequest
type ReturnStatus string

// Enumeration containing all possible return statuses
const (
	ReturnRequested   ReturnStatus = "REQUESTED"
	ReturnApproved    ReturnStatus = "APPROVED"
	ReturnRejected    ReturnStatus = "REJECTED"
	ReturnShippedBack ReturnStatus = "SHIPPED_BACK"
	ReturnReceived    ReturnStatus = "RECEIVED"
	ReturnRefunded    ReturnStatus = "REFUNDED"
)

// IsTerminal reports whether no further transition is accepted
func (s ReturnStatus) IsTerminal() bool {
	return s == ReturnRejected || s == ReturnRefunded
}

// ActiveReturnStatuses are the statuses that block another return for the same order
var ActiveReturnStatuses = []ReturnStatus{ReturnRequested, ReturnApproved, ReturnShippedBack, ReturnReceived, ReturnRefunded}

// IsActive reports whether a return in this status blocks another return for its order
func (s ReturnStatus) IsActive() bool {
	for _, active := range ActiveReturnStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// ReturnReason is why the customer is sending goods back
type ReturnReason string

// Recognised return reasons
const (
	ReasonDefective        ReturnReason = "DEFECTIVE"
	ReasonWrongItem        ReturnReason = "WRONG_ITEM"
	ReasonNotAsDescribed   ReturnReason = "NOT_AS_DESCRIBED"
	ReasonNoLongerNeeded   ReturnReason = "NO_LONGER_NEEDED"
	ReasonDamagedInTransit ReturnReason = "DAMAGED_IN_TRANSIT"
	ReasonOther            ReturnReason = "OTHER"
)

var returnReasons = [...]ReturnReason{
	ReasonDefective,
	ReasonWrongItem,
	ReasonNotAsDescribed,
	ReasonNoLongerNeeded,
	ReasonDamagedInTransit,
	ReasonOther,
}

// ParseReturnReason converts raw input into a ReturnReason, ignoring case.
func ParseReturnReason(raw string) (ReturnReason, error) {
	candidate := ReturnReason(strings.ToUpper(strings.TrimSpace(raw)))
	for _, reason := range returnReasons {
		if candidate == reason {
			return reason, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("return reason [%s] is not recognised", raw))
}

// ReturnAction names a guarded transition of a ReturnRequest
type ReturnAction string

// Return actions
const (
	ApproveReturn  ReturnAction = "approve"
	RejectReturn   ReturnAction = "reject"
	ShipBackReturn ReturnAction = "ship-back"
	ReceiveReturn  ReturnAction = "receive"
	RefundReturn   ReturnAction = "refund"
)

// PerformedByCustomer reports whether the customer, rather than the creator,
// owns the action.
func (a ReturnAction) PerformedByCustomer() bool {
	return a == ShipBackReturn
}

// ReturnItem is one returned line used to restore inventory
type ReturnItem struct {
	ProductID string
	VariantID string
	Quantity  int
}

// StockAdjustment is one stock increment sent to the inventory collaborator
type StockAdjustment struct {
	VariantID string
	Quantity  int
}

// RestorationStatus tracks the inventory side effect of a refunded return
type RestorationStatus string

// Restoration statuses
const (
	RestorationPending   RestorationStatus = "PENDING"
	RestorationCompleted RestorationStatus = "COMPLETED"
)

// StockRestoration is the pending or completed inventory increment recorded
// with the REFUNDED transition.
type StockRestoration struct {
	Status        RestorationStatus
	Items         []StockAdjustment
	Attempts      int
	LastError     string
	LastAttemptAt *time.Time
	CompletedAt   *time.Time
}

// ReturnRequestState is a snapshot of a ReturnRequest, used to persist and render it
type ReturnRequestState struct {
	ID               string
	OrderID          string
	OrderNumber      string
	CustomerID       string
	CustomerName     string
	CustomerEmail    string
	CreatorID        string
	Reason           ReturnReason
	ReasonDetails    string
	Status           ReturnStatus
	RejectionReason  string
	TrackingNumber   string
	Carrier          string
	DeliveredAt      time.Time
	Items            []ReturnItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ApprovedAt       *time.Time
	RejectedAt       *time.Time
	ShippedAt        *time.Time
	ReceivedAt       *time.Time
	RefundedAt       *time.Time
	StockRestoration *StockRestoration
	Version          int64
}

// NewReturnRequestParams holds the values a return request is created from
type NewReturnRequestParams struct {
	OrderID       string
	OrderNumber   string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CreatorID     string
	Reason        string
	ReasonDetails string
	DeliveredAt   time.Time
	Items         []ReturnItem
}

// ReturnRequest is a customer's request to send goods back after delivery
type ReturnRequest struct {
	state ReturnRequestState
}

// DaysSinceDelivery returns the number of whole days elapsed between
// deliveredAt and now.
func DaysSinceDelivery(deliveredAt, now time.Time) int {
	elapsed := now.Sub(deliveredAt)
	days := int(elapsed / (24 * time.Hour))
	if elapsed < 0 && elapsed%(24*time.Hour) != 0 {
		days--
	}
	return days
}

// NewReturnRequest validates params and returns a REQUESTED return. The
// return window is checked by the caller, which knows the configured limit.
func NewReturnRequest(id string, params NewReturnRequestParams, now time.Time) (*ReturnRequest, error) {
	switch {
	case strings.TrimSpace(id) == "":
		return nil, NewValidationError("return request id is required")
	case strings.TrimSpace(params.OrderID) == "":
		return nil, NewValidationError("order id is required")
	case strings.TrimSpace(params.CustomerID) == "":
		return nil, NewValidationError("customer id is required")
	case strings.TrimSpace(params.CreatorID) == "":
		return nil, NewValidationError("creator id is required")
	}

	reason, err := ParseReturnReason(params.Reason)
	if err != nil {
		return nil, err
	}

	if params.DeliveredAt.IsZero() {
		return nil, NewValidationError("delivery date is required")
	}
	if params.DeliveredAt.After(now) {
		return nil, NewValidationError("delivery date cannot be in the future")
	}

	items := make([]ReturnItem, 0, len(params.Items))
	for _, item := range params.Items {
		if strings.TrimSpace(item.VariantID) == "" {
			return nil, NewValidationError("return item variant id is required")
		}
		if item.Quantity <= 0 {
			return nil, NewValidationError(fmt.Sprintf("return item [%s] quantity must be greater than zero", item.VariantID))
		}
		items = append(items, item)
	}

	return &ReturnRequest{state: ReturnRequestState{
		ID:            id,
		OrderID:       params.OrderID,
		OrderNumber:   params.OrderNumber,
		CustomerID:    params.CustomerID,
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		CreatorID:     params.CreatorID,
		Reason:        reason,
		ReasonDetails: strings.TrimSpace(params.ReasonDetails),
		Status:        ReturnRequested,
		DeliveredAt:   params.DeliveredAt,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}}, nil
}

// RestoreReturnRequest rebuilds a ReturnRequest from a stored snapshot
func RestoreReturnRequest(state ReturnRequestState) *ReturnRequest {
	return &ReturnRequest{state: state.clone()}
}

// State returns a copy of the return request's current values
func (r *ReturnRequest) State() ReturnRequestState {
	return r.state.clone()
}

func (s ReturnRequestState) clone() ReturnRequestState {
	if s.Items != nil {
		s.Items = append([]ReturnItem(nil), s.Items...)
	}
	if s.StockRestoration != nil {
		restoration := *s.StockRestoration
		restoration.Items = append([]StockAdjustment(nil), restoration.Items...)
		s.StockRestoration = &restoration
	}
	return s
}

func (r *ReturnRequest) ID() string           { return r.state.ID }
func (r *ReturnRequest) OrderID() string      { return r.state.OrderID }
func (r *ReturnRequest) CustomerID() string   { return r.state.CustomerID }
func (r *ReturnRequest) CreatorID() string    { return r.state.CreatorID }
func (r *ReturnRequest) Status() ReturnStatus { return r.state.Status }
func (r *ReturnRequest) Version() int64       { return r.state.Version }

// Persisted records the version the store assigned on the last save.
func (r *ReturnRequest) Persisted(version int64) {
	r.state.Version = version
}

// OwnerOf returns the id of the party entitled to perform action.
func (r *ReturnRequest) OwnerOf(action ReturnAction) string {
	if action.PerformedByCustomer() {
		return r.state.CustomerID
	}
	return r.state.CreatorID
}

// CanPerform returns a TransitionError when the current status is not the
// one action requires.
func (r *ReturnRequest) CanPerform(action ReturnAction) error {
	switch action {
	case ApproveReturn:
		return r.requireStatus(ReturnRequested, "only pending return requests may be approved")
	case RejectReturn:
		return r.requireStatus(ReturnRequested, "only pending return requests may be rejected")
	case ShipBackReturn:
		return r.requireStatus(ReturnApproved, "only approved returns may be shipped back")
	case ReceiveReturn:
		return r.requireStatus(ReturnShippedBack, "only shipped returns may be received")
	case RefundReturn:
		return r.requireStatus(ReturnReceived, "only received returns may be refunded")
	}
	return fmt.Errorf("unknown return action [%s]", action)
}

func (r *ReturnRequest) requireStatus(expected ReturnStatus, reason string) error {
	if r.state.Status != expected {
		return newTransitionError(reason, string(r.state.Status))
	}
	return nil
}

// ValidateRejectionReason rejects a blank rejection reason.
func ValidateRejectionReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return NewValidationError("a rejection reason is required")
	}
	return nil
}

// ValidateShipment rejects blank tracking details.
func ValidateShipment(trackingNumber, carrier string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return NewValidationError("a tracking number is required")
	}
	if strings.TrimSpace(carrier) == "" {
		return NewValidationError("a carrier is required")
	}
	return nil
}

// Approve moves a REQUESTED return to APPROVED.
func (r *ReturnRequest) Approve(now time.Time) error {
	if err := r.CanPerform(ApproveReturn); err != nil {
		return err
	}

	r.state.Status = ReturnApproved
	r.state.ApprovedAt = stamp(r.state.ApprovedAt, now)
	r.state.UpdatedAt = now
	return nil
}

// Reject moves a REQUESTED return to REJECTED, storing the trimmed reason.
func (r *ReturnRequest) Reject(reason string, now time.Time) error {
	if err := ValidateRejectionReason(reason); err != nil {
		return err
	}
	if err := r.CanPerform(RejectReturn); err != nil {
		return err
	}

	r.state.Status = ReturnRejected
	r.state.RejectionReason = strings.TrimSpace(reason)
	r.state.RejectedAt = stamp(r.state.RejectedAt, now)
	r.state.UpdatedAt = now
	return nil
}

// ShipBack moves an APPROVED return to SHIPPED_BACK.
func (r *ReturnRequest) ShipBack(trackingNumber, carrier string, now time.Time) error {
	if err := ValidateShipment(trackingNumber, carrier); err != nil {
		return err
	}
	if err := r.CanPerform(ShipBackReturn); err != nil {
		return err
	}

	r.state.Status = ReturnShippedBack
	r.state.TrackingNumber = strings.TrimSpace(trackingNumber)
	r.state.Carrier = strings.TrimSpace(carrier)
	r.state.ShippedAt = stamp(r.state.ShippedAt, now)
	r.state.UpdatedAt = now
	return nil
}

// Receive moves a SHIPPED_BACK return to RECEIVED.
func (r *ReturnRequest) Receive(now time.Time) error {
	if err := r.CanPerform(ReceiveReturn); err != nil {
		return err
	}

	r.state.Status = ReturnReceived
	r.state.ReceivedAt = stamp(r.state.ReceivedAt, now)
	r.state.UpdatedAt = now
	return nil
}

// Refund moves a RECEIVED return to REFUNDED. When the return carries items a
// pending stock restoration is recorded in the same change.
func (r *ReturnRequest) Refund(now time.Time) error {
	if err := r.CanPerform(RefundReturn); err != nil {
		return err
	}

	r.state.Status = ReturnRefunded
	r.state.RefundedAt = stamp(r.state.RefundedAt, now)
	r.state.UpdatedAt = now

	if len(r.state.Items) > 0 {
		adjustments := make([]StockAdjustment, 0, len(r.state.Items))
		for _, item := range r.state.Items {
			adjustments = append(adjustments, StockAdjustment{VariantID: item.VariantID, Quantity: item.Quantity})
		}
		r.state.StockRestoration = &StockRestoration{
			Status: RestorationPending,
			Items:  adjustments,
		}
	}
	return nil
}

// PendingStockAdjustments returns the increments still owed to inventory, or
// nil when nothing is pending.
func (r *ReturnRequest) PendingStockAdjustments() []StockAdjustment {
	restoration := r.state.StockRestoration
	if restoration == nil || restoration.Status != RestorationPending {
		return nil
	}
	return restoration.Items
}

// CompleteStockRestoration marks the pending restoration as delivered.
func (r *ReturnRequest) CompleteStockRestoration(now time.Time) {
	restoration := r.state.StockRestoration
	if restoration == nil || restoration.Status != RestorationPending {
		return
	}

	restoration.Attempts++
	restoration.LastError = ""
	restoration.LastAttemptAt = &now
	restoration.Status = RestorationCompleted
	restoration.CompletedAt = &now
	r.state.UpdatedAt = now
}

// RecordStockRestorationFailure keeps the restoration pending and notes the attempt.
func (r *ReturnRequest) RecordStockRestorationFailure(cause error, now time.Time) {
	restoration := r.state.StockRestoration
	if restoration == nil || restoration.Status != RestorationPending {
		return
	}

	restoration.Attempts++
	restoration.LastError = cause.Error()
	restoration.LastAttemptAt = &now
	r.state.UpdatedAt = now
}

// milestone timestamps are written once
func stamp(current *time.Time, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	return &now
}
