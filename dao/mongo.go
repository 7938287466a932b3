package dao

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/storefront/settlements.api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Error(errors.New("failed to connect to mongodb"), log.Data{"error": err})
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash.
	err = mongoClient.Ping(ctx, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"), log.Data{"error": err})
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB
type MongoService struct {
	db                 MongoDatabaseInterface
	PaymentsCollection string
	ReturnsCollection  string
}

// EnsureIndexes creates the indexes the settlement queries rely on. The unique
// order index on payments enforces one payment per order and the partial
// unique order index on returns enforces one active return per order.
func (m *MongoService) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(m.PaymentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating payment order index: [%w]", err)
	}

	// $in inside a partial filter needs MongoDB 6.0 or later
	activeOrder := options.Index().
		SetName("active_order_id").
		SetUnique(true).
		SetPartialFilterExpression(bson.M{"status": bson.M{"$in": activeReturnStatuses()}})

	_, err = m.db.Collection(m.ReturnsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: activeOrder},
		{Keys: bson.D{{Key: "stock_restoration.status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("error creating return request indexes: [%w]", err)
	}

	return nil
}

// CreatePayment writes a new payment to the DB
func (m *MongoService) CreatePayment(ctx context.Context, payment *models.PaymentDB) error {
	document := *payment
	document.Version = 1

	collection := m.db.Collection(m.PaymentsCollection)
	_, err := collection.InsertOne(ctx, document)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}

	payment.Version = document.Version
	return nil
}

// GetPayment gets a payment from the DB. If the payment is not found, nil is returned.
func (m *MongoService) GetPayment(ctx context.Context, id string) (*models.PaymentDB, error) {
	return m.findPayment(ctx, bson.M{"_id": id})
}

// GetPaymentByOrderID gets the payment for an order from the DB
func (m *MongoService) GetPaymentByOrderID(ctx context.Context, orderID string) (*models.PaymentDB, error) {
	return m.findPayment(ctx, bson.M{"order_id": orderID})
}

func (m *MongoService) findPayment(ctx context.Context, filter bson.M) (*models.PaymentDB, error) {
	var resource models.PaymentDB

	collection := m.db.Collection(m.PaymentsCollection)
	dbResource := collection.FindOne(ctx, filter)

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Info("no payment found", log.Data{"filter": filter})
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// UpdatePayment replaces a payment in the DB when its stored version matches
func (m *MongoService) UpdatePayment(ctx context.Context, payment *models.PaymentDB) error {
	document := *payment
	document.Version = payment.Version + 1

	collection := m.db.Collection(m.PaymentsCollection)
	if err := replaceVersioned(ctx, collection, payment.ID, payment.Version, document); err != nil {
		return err
	}

	payment.Version = document.Version
	return nil
}

// CreateReturnRequest writes a new return request to the DB
func (m *MongoService) CreateReturnRequest(ctx context.Context, ret *models.ReturnRequestDB) error {
	document := *ret
	document.Version = 1

	collection := m.db.Collection(m.ReturnsCollection)
	_, err := collection.InsertOne(ctx, document)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}

	ret.Version = document.Version
	return nil
}

// GetReturnRequest gets a return request from the DB. If it is not found, nil is returned.
func (m *MongoService) GetReturnRequest(ctx context.Context, id string) (*models.ReturnRequestDB, error) {
	return m.findReturnRequest(ctx, bson.M{"_id": id}, options.FindOne())
}

// GetActiveReturnRequestByOrderID gets the return request for an order that is not rejected
func (m *MongoService) GetActiveReturnRequestByOrderID(ctx context.Context, orderID string) (*models.ReturnRequestDB, error) {
	filter := bson.M{"order_id": orderID, "status": bson.M{"$in": activeReturnStatuses()}}
	return m.findReturnRequest(ctx, filter, options.FindOne())
}

func activeReturnStatuses() bson.A {
	statuses := bson.A{}
	for _, status := range models.ActiveReturnStatuses {
		statuses = append(statuses, string(status))
	}
	return statuses
}

func (m *MongoService) findReturnRequest(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*models.ReturnRequestDB, error) {
	var resource models.ReturnRequestDB

	collection := m.db.Collection(m.ReturnsCollection)
	dbResource := collection.FindOne(ctx, filter, opts)

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Info("no return request found", log.Data{"filter": filter})
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// UpdateReturnRequest replaces a return request in the DB when its stored version matches
func (m *MongoService) UpdateReturnRequest(ctx context.Context, ret *models.ReturnRequestDB) error {
	document := *ret
	document.Version = ret.Version + 1

	collection := m.db.Collection(m.ReturnsCollection)
	if err := replaceVersioned(ctx, collection, ret.ID, ret.Version, document); err != nil {
		return err
	}

	ret.Version = document.Version
	return nil
}

// GetPendingStockRestorations gets refunded return requests whose stock has not been restored yet
func (m *MongoService) GetPendingStockRestorations(ctx context.Context, limit int) ([]models.ReturnRequestDB, error) {
	filter := bson.M{"stock_restoration.status": string(models.RestorationPending)}
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	collection := m.db.Collection(m.ReturnsCollection)
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding pending stock restorations: [%w]", err)
	}

	var returns []models.ReturnRequestDB
	if err = cursor.All(ctx, &returns); err != nil {
		return nil, fmt.Errorf("error decoding pending stock restorations: [%w]", err)
	}

	return returns, nil
}

func replaceVersioned(ctx context.Context, collection *mongo.Collection, id string, version int64, document interface{}) error {
	filter := bson.M{"_id": id, "version": version}

	result, err := collection.ReplaceOne(ctx, filter, document)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrVersionConflict
	}

	return nil
}
