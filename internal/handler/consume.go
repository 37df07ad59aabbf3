package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/edutech-lab/school-library-service/internal/model"
)

type recordReturn func(ctx context.Context, username string) error

// Consumer advances reading-challenge progress from book-returned events.
type Consumer struct {
	recordReturnHandler recordReturn
	log                 *zap.Logger
}

func NewConsumer(recordReturn recordReturn, log *zap.Logger) *Consumer {
	return &Consumer{
		recordReturnHandler: recordReturn,
		log:                 log.Named("consumer"),
	}
}

// Setup runs at the start of every session. The consumer group loop reuses the
// handler across sessions, so Setup must stay repeatable.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event model.BookReturnedEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordReturnHandler(context.Background(), event.Username); err != nil {
				consumer.log.Error("consumer.recordReturnHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
