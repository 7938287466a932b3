package dao

import (
	"context"
	"errors"

	"github.com/storefront/settlements.api/config"
	"github.com/storefront/settlements.api/models"
)

//go:generate mockgen -destination mock_dao.go -package dao github.com/storefront/settlements.api/dao DAO

// ErrVersionConflict is returned when a record changed since it was loaded
var ErrVersionConflict = errors.New("version conflict")

// ErrDuplicate is returned when a unique key is already taken
var ErrDuplicate = errors.New("duplicate key")

// DAO is an interface for accessing settlement records from a backend store.
// Get methods return nil, nil when nothing matches. Create methods store the
// record at version 1 and Update methods only apply when the stored version
// equals the given one, writing the new version back to the record. An order
// holds at most one payment and at most one active (not rejected) return
// request; a Create breaking that returns ErrDuplicate.
type DAO interface {
	CreatePayment(ctx context.Context, payment *models.PaymentDB) error
	GetPayment(ctx context.Context, id string) (*models.PaymentDB, error)
	GetPaymentByOrderID(ctx context.Context, orderID string) (*models.PaymentDB, error)
	UpdatePayment(ctx context.Context, payment *models.PaymentDB) error
	CreateReturnRequest(ctx context.Context, ret *models.ReturnRequestDB) error
	GetReturnRequest(ctx context.Context, id string) (*models.ReturnRequestDB, error)
	GetActiveReturnRequestByOrderID(ctx context.Context, orderID string) (*models.ReturnRequestDB, error)
	UpdateReturnRequest(ctx context.Context, ret *models.ReturnRequestDB) error
	GetPendingStockRestorations(ctx context.Context, limit int) ([]models.ReturnRequestDB, error)
}

// Indexer is implemented by stores that need indexes created before serving
type Indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// NewDAO will create a new instance of the DAO interface for the configured storage backend
func NewDAO(cfg *config.Config) DAO {
	if cfg.StorageBackend == config.StorageMemory {
		return NewMemoryService()
	}

	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                 database,
		PaymentsCollection: cfg.PaymentsCollection,
		ReturnsCollection:  cfg.ReturnsCollection,
	}
}
