// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Storage backends supported by the service.
const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                string   `env:"BIND_ADDR"                 flag:"bind-addr"                 flagDesc:"Bind address"`
	MongoDBURL              string   `env:"MONGODB_URL"               flag:"mongodb-url"               flagDesc:"MongoDB server URL"`
	Database                string   `env:"MONGODB_DATABASE"          flag:"mongodb-database"          flagDesc:"MongoDB database for data"`
	PaymentsCollection      string   `env:"PAYMENTS_COLLECTION"       flag:"payments-collection"       flagDesc:"MongoDB collection for payments"`
	ReturnsCollection       string   `env:"RETURNS_COLLECTION"        flag:"returns-collection"        flagDesc:"MongoDB collection for return requests"`
	StorageBackend          string   `env:"STORAGE_BACKEND"           flag:"storage-backend"           flagDesc:"Storage backend, mongo or memory"`
	DefaultCurrency         string   `env:"DEFAULT_CURRENCY"          flag:"default-currency"          flagDesc:"ISO currency code used when a payment has none"`
	ReturnWindowDays        int      `env:"RETURN_WINDOW_DAYS"        flag:"return-window-days"        flagDesc:"Days after delivery during which a return may be requested"`
	InventoryAPIURL         string   `env:"INVENTORY_API_URL"         flag:"inventory-api-url"         flagDesc:"Base URL of the inventory API"`
	InventoryTimeoutSeconds int      `env:"INVENTORY_TIMEOUT_SECONDS" flag:"inventory-timeout-seconds" flagDesc:"Timeout for calls to the inventory API"`
	RestorationWorkers      int      `env:"RESTORATION_WORKERS"       flag:"restoration-workers"       flagDesc:"Concurrent workers re-driving pending stock restorations"`
	RestorationBatchSize    int      `env:"RESTORATION_BATCH_SIZE"    flag:"restoration-batch-size"    flagDesc:"Maximum pending stock restorations processed per run"`
	BrokerAddr              []string `env:"KAFKA_BROKER_ADDR"         flag:"kafka-broker-addr"         flagDesc:"Kafka broker address"`
	SchemaRegistryURL       string   `env:"SCHEMA_REGISTRY_URL"       flag:"schema-registry-url"       flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                "settlements",
		PaymentsCollection:      "payments",
		ReturnsCollection:       "return_requests",
		StorageBackend:          StorageMongo,
		DefaultCurrency:         "EUR",
		ReturnWindowDays:        14,
		InventoryTimeoutSeconds: 10,
		RestorationWorkers:      4,
		RestorationBatchSize:    100,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
