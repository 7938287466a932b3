package dao

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/storefront/settlements.api/models"
)

const (
	paymentKeyPrefix = "payment:"
	returnKeyPrefix  = "return:"
)

// MemoryService is an in-process implementation of the DAO interface. It
// keeps the same version and uniqueness rules as MongoService.
type MemoryService struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewMemoryService returns an empty MemoryService whose entries never expire
func NewMemoryService() *MemoryService {
	return &MemoryService{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// CreatePayment stores a new payment, refusing a second payment for the same order
func (m *MemoryService) CreatePayment(ctx context.Context, payment *models.PaymentDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing := m.paymentWhere(func(p models.PaymentDB) bool { return p.OrderID == payment.OrderID }); existing != nil {
		return ErrDuplicate
	}

	document := *payment
	document.Version = 1
	if err := m.cache.Add(paymentKeyPrefix+payment.ID, document, cache.NoExpiration); err != nil {
		return ErrDuplicate
	}

	payment.Version = document.Version
	return nil
}

// GetPayment gets a payment by id
func (m *MemoryService) GetPayment(ctx context.Context, id string) (*models.PaymentDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if x, found := m.cache.Get(paymentKeyPrefix + id); found {
		payment := x.(models.PaymentDB)
		return &payment, nil
	}
	return nil, nil
}

// GetPaymentByOrderID gets the payment for an order
func (m *MemoryService) GetPaymentByOrderID(ctx context.Context, orderID string) (*models.PaymentDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.paymentWhere(func(p models.PaymentDB) bool { return p.OrderID == orderID }), nil
}

// UpdatePayment replaces a payment when its stored version matches
func (m *MemoryService) UpdatePayment(ctx context.Context, payment *models.PaymentDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	x, found := m.cache.Get(paymentKeyPrefix + payment.ID)
	if !found || x.(models.PaymentDB).Version != payment.Version {
		return ErrVersionConflict
	}

	document := *payment
	document.Version = payment.Version + 1
	m.cache.Set(paymentKeyPrefix+payment.ID, document, cache.NoExpiration)

	payment.Version = document.Version
	return nil
}

// CreateReturnRequest stores a new return request, refusing a second active
// return request for the same order
func (m *MemoryService) CreateReturnRequest(ctx context.Context, ret *models.ReturnRequestDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.activeReturnFor(ret.OrderID) != nil {
		return ErrDuplicate
	}

	document := copyReturnRequest(*ret)
	document.Version = 1
	if err := m.cache.Add(returnKeyPrefix+ret.ID, document, cache.NoExpiration); err != nil {
		return ErrDuplicate
	}

	ret.Version = document.Version
	return nil
}

// GetReturnRequest gets a return request by id
func (m *MemoryService) GetReturnRequest(ctx context.Context, id string) (*models.ReturnRequestDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if x, found := m.cache.Get(returnKeyPrefix + id); found {
		ret := copyReturnRequest(x.(models.ReturnRequestDB))
		return &ret, nil
	}
	return nil, nil
}

// GetActiveReturnRequestByOrderID gets the return request for an order that is not rejected
func (m *MemoryService) GetActiveReturnRequestByOrderID(ctx context.Context, orderID string) (*models.ReturnRequestDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.activeReturnFor(orderID), nil
}

// callers hold m.mu
func (m *MemoryService) activeReturnFor(orderID string) *models.ReturnRequestDB {
	active := m.returnsWhere(func(r models.ReturnRequestDB) bool {
		return r.OrderID == orderID && models.ReturnStatus(r.Status).IsActive()
	})
	if len(active) == 0 {
		return nil
	}
	return &active[0]
}

// UpdateReturnRequest replaces a return request when its stored version matches
func (m *MemoryService) UpdateReturnRequest(ctx context.Context, ret *models.ReturnRequestDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	x, found := m.cache.Get(returnKeyPrefix + ret.ID)
	if !found || x.(models.ReturnRequestDB).Version != ret.Version {
		return ErrVersionConflict
	}

	document := copyReturnRequest(*ret)
	document.Version = ret.Version + 1
	m.cache.Set(returnKeyPrefix+ret.ID, document, cache.NoExpiration)

	ret.Version = document.Version
	return nil
}

// GetPendingStockRestorations gets refunded return requests whose stock has not been restored, oldest first
func (m *MemoryService) GetPendingStockRestorations(ctx context.Context, limit int) ([]models.ReturnRequestDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := m.returnsWhere(func(r models.ReturnRequestDB) bool {
		return r.StockRestoration != nil && r.StockRestoration.Status == string(models.RestorationPending)
	})

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].UpdatedAt.Before(pending[j].UpdatedAt)
	})

	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

// callers hold m.mu
func (m *MemoryService) paymentWhere(match func(models.PaymentDB) bool) *models.PaymentDB {
	for key, item := range m.cache.Items() {
		if !strings.HasPrefix(key, paymentKeyPrefix) {
			continue
		}
		payment := item.Object.(models.PaymentDB)
		if match(payment) {
			return &payment
		}
	}
	return nil
}

// callers hold m.mu
func (m *MemoryService) returnsWhere(match func(models.ReturnRequestDB) bool) []models.ReturnRequestDB {
	var returns []models.ReturnRequestDB
	for key, item := range m.cache.Items() {
		if !strings.HasPrefix(key, returnKeyPrefix) {
			continue
		}
		ret := item.Object.(models.ReturnRequestDB)
		if match(ret) {
			returns = append(returns, copyReturnRequest(ret))
		}
	}
	return returns
}

func copyReturnRequest(ret models.ReturnRequestDB) models.ReturnRequestDB {
	if ret.Items != nil {
		ret.Items = append([]models.ReturnItemDB(nil), ret.Items...)
	}
	if ret.StockRestoration != nil {
		restoration := *ret.StockRestoration
		restoration.Items = append([]models.StockAdjustmentDB(nil), restoration.Items...)
		ret.StockRestoration = &restoration
	}
	return ret
}
