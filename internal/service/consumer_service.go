package service

import (
	"context"
	"encoding/json"
	"log"

	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/unitofwork"
	pktNats "hr-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the interaction log topic and persists each
// interaction. Persistence failures are Nacked for redelivery; malformed
// payloads are Acked so they cannot poison the queue.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
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
	var payload dto.PublishInteractionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal interaction message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	interaction := &entity.ChatInteraction{
		Id:             uuid.New(),
		OrganizationId: payload.OrganizationId,
		UserId:         payload.UserId,
		Query:          payload.Query,
		Answer:         payload.Answer,
		Intent:         payload.Intent,
		Confidence:     payload.Confidence,
		Source:         payload.Source,
		LatencyMs:      payload.LatencyMs,
		CreatedAt:      payload.AskedAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatInteractionRepository().Create(ctx, interaction); err != nil {
		log.Printf("[ERROR] Failed to persist chat interaction: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	// Mirror onto the event bus for downstream consumers.
	if cs.eventPublisher != nil {
		if err := cs.eventPublisher.Publish(ctx, "chat.interaction_logged", payload); err != nil {
			log.Printf("[WARN] Failed to mirror interaction event: %v", err)
		}
	}

	msg.Ack()
}
