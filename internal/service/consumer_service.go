package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/unitofwork"
	"estateflow-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService turns domain events into audit rows. Price changes append
// to pricing_history so listing pages can show the trend without the write
// path blocking on it.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope struct {
		Type       string                 `json:"type"`
		Data       map[string]interface{} `json:"data"`
		OccurredAt time.Time              `json:"occurred_at"`
	}
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		log.Printf("[ERROR] Failed to unmarshal event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	switch envelope.Type {
	case events.PropertyPriceChanged:
		cs.handlePriceChanged(ctx, msg, envelope.Data, envelope.OccurredAt)
	default:
		// Login and registration events are informational for now.
		msg.Ack()
	}
}

func (cs *consumerService) handlePriceChanged(ctx context.Context, msg *message.Message, data map[string]interface{}, occurredAt time.Time) {
	rawId, _ := data["property_id"].(string)
	propertyId, err := uuid.Parse(rawId)
	if err != nil {
		log.Printf("[ERROR] Price change event with bad property id %q: %v", rawId, err)
		msg.Ack()
		return
	}

	price, _ := data["new_price"].(float64)
	currency, _ := data["currency"].(string)
	if currency == "" {
		currency = "USD"
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	record := &entity.PricingHistory{
		Id:            uuid.New(),
		PropertyId:    propertyId,
		Price:         price,
		Currency:      currency,
		EffectiveDate: occurredAt,
		CreatedAt:     time.Now(),
	}
	if err := uow.PropertyRepository().AddPricingHistory(ctx, record); err != nil {
		log.Printf("[ERROR] Failed to append pricing history for %s: %v", propertyId, err)
		msg.Nack() // Retriable
		return
	}

	log.Printf("[INFO] Recorded price change for property %s: %.2f %s", propertyId, price, currency)
	msg.Ack()
}
