package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads booking events until ctx is done or the reader fails.
// Undecodable messages and handler failures are logged and skipped.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		handleMessage(ctx, msg, handler)
	}
}

func handleMessage(ctx context.Context, msg kafka.Message, handler func(context.Context, BookingEvent) error) {
	var event BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("[KAFKA] decode event topic=%s offset=%d: %v", msg.Topic, msg.Offset, err)
		return
	}
	if err := handler(ctx, event); err != nil {
		log.Printf("[KAFKA] handle event type=%s booking_id=%d: %v", event.Type, event.BookingID, err)
	}
}
