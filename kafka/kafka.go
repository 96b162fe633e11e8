package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"fitapi/config"
	"fitapi/logger"
	"fitapi/metrics"
	"fitapi/models"
)

func newWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(config.KafkaBroker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// PublishChat writes a chat message to the chat topic.
func PublishChat(ctx context.Context, msg models.ChatMessage) error {
	w := newWriter(config.ChatTopic)
	defer w.Close()

	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{Key: []byte(msg.MessageID), Value: value})
}

// PublishActivity writes a fire-and-forget activity event to the activity topic.
func PublishActivity(ctx context.Context, ev models.ActivityEvent) error {
	w := newWriter(config.ActivityTopic)
	defer w.Close()

	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := w.WriteMessages(ctx, kafka.Message{Key: []byte(ev.Kind), Value: value}); err != nil {
		metrics.IncActivityPublishFail()
		return err
	}
	metrics.IncActivityPublished()
	return nil
}

// DLQWriter routes a chat message that could not be persisted to the dead
// letter topic, tagging the failure reason in a header.
func DLQWriter(ctx context.Context, msg models.ChatMessage, reason string) error {
	w := newWriter(config.DLQTopic)
	defer w.Close()

	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	metrics.IncDLQWrite()
	return w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(msg.MessageID),
		Value:   value,
		Headers: []kafka.Header{{Key: "reason", Value: []byte(reason)}},
	})
}

// Reader consumes the chat topic and forwards messages to the broadcast
// channel until the context is canceled.
func Reader(ctx context.Context, broadcast chan<- models.ChatMessage) {
	logger.Info("starting kafka chat reader", logger.FieldKV("topic", config.ChatTopic))
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{config.KafkaBroker},
		Topic:     config.ChatTopic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	defer func() {
		if err := r.Close(); err != nil {
			logger.Error("failed to close kafka reader", err)
		}
	}()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("kafka chat reader stopping")
				return
			}
			logger.Error("error reading chat message from kafka", err)
			return
		}

		var msg models.ChatMessage
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			logger.Error("error unmarshalling chat message from kafka", err, logger.FieldKV("offset", m.Offset))
			continue
		}

		select {
		case broadcast <- msg:
		case <-ctx.Done():
			return
		}
	}
}
