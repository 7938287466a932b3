package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/storefront/settlements.api/config"
)

// ProducerTopic is the topic to which the settlement processed kafka message is sent
const ProducerTopic = "settlement-processed"

// ProducerSchemaName is the schema which will be used to send the settlement processed kafka message with
const ProducerSchemaName = "settlement-processed"

// Kinds of resource a settlement message can refer to
const (
	PaymentResourceKind = "payment"
	ReturnResourceKind  = "return_request"
)

// settlementProcessed represents the avro schema registered as settlement-processed
type settlementProcessed struct {
	ResourceKind string `avro:"resource_kind"`
	ResourceID   string `avro:"resource_id"`
	Status       string `avro:"status"`
}

// handleSettlementMessage is a package var so tests can stub out kafka
var handleSettlementMessage = produceSettlementMessage

// produceSettlementMessage handles creating a producer, marshalling the settlement into the correct avro schema and
// sending the message to the topic defined in ProducerTopic
func produceSettlementMessage(resourceKind, resourceID, status string) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config for kafka message production: [%v]", err)
	}

	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}

	settlementSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: settlementSchema,
	}

	message, err := prepareKafkaMessage(settlementProcessed{ResourceKind: resourceKind, ResourceID: resourceID, Status: status}, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceSettlementMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(settlement settlementProcessed, settlementSchema avro.Schema) (*producer.Message, error) {
	messageBytes, err := settlementSchema.Marshal(settlement)
	if err != nil {
		return nil, fmt.Errorf("error marshalling settlement processed message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}, nil
}
