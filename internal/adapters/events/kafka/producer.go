package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-company-registry/internal/platform/config"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope は Kafka に書き込むイベントの形式です。
type Envelope struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// Producer はドメインイベントを Kafka に発行します。
type Producer struct {
	writer messageWriter
	now    func() time.Time
	logger *zap.Logger
}

// NewProducer は Producer を生成します。
func NewProducer(cfg config.KafkaConfig, logger *zap.Logger) *Producer {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	if cfg.WriteTimeout > 0 {
		w.WriteTimeout = cfg.WriteTimeout
	}
	return newProducer(w, logger)
}

func newProducer(w messageWriter, logger *zap.Logger) *Producer {
	return &Producer{
		writer: w,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Publish はイベントを書き込みます。キーはイベント種別です。
func (p *Producer) Publish(ctx context.Context, eventType string, payload any) error {
	value, err := encodeEvent(eventType, payload, p.now())
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventType),
		Value: value,
	}); err != nil {
		return fmt.Errorf("kafka: write %s: %w", eventType, err)
	}

	p.logger.Debug("event published", zap.String("event", eventType))
	return nil
}

// Close は Writer を閉じます。
func (p *Producer) Close() error {
	return p.writer.Close()
}

func encodeEvent(eventType string, payload any, at time.Time) ([]byte, error) {
	value, err := json.Marshal(Envelope{Type: eventType, Payload: payload, Timestamp: at})
	if err != nil {
		return nil, fmt.Errorf("kafka: encode %s: %w", eventType, err)
	}
	return value, nil
}

// NoopPublisher はイベント発行が無効な場合に利用します。
type NoopPublisher struct{}

// Publish は何もしません。
func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

// Close は何もしません。
func (NoopPublisher) Close() error { return nil }
