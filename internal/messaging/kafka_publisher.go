package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
)

// KafkaPublisher publishes placed-bet receipts to Kafka
type KafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
	now    func() time.Time
}

// KafkaPublisherConfig holds Kafka producer configuration
type KafkaPublisherConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "bet_receipts"
}

// NewKafkaPublisher creates a new Kafka publisher
func NewKafkaPublisher(config KafkaPublisherConfig, logger zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{}, // Receipts for one bet stay on one partition
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger.With().Str("component", "kafka_publisher").Logger(),
		now:    time.Now,
	}
}

// PublishReceipt publishes a receipt keyed by bet id
func (p *KafkaPublisher) PublishReceipt(ctx context.Context, receipt models.DecimalPlacedBet, sent models.FractionalOdds) error {
	msg, err := p.buildMessage(receipt, sent)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	p.logger.Debug().
		Str("topic", p.writer.Topic).
		Str("key", string(msg.Key)).
		Int64("transaction_id", receipt.TransactionID).
		Msg("published bet receipt")

	return nil
}

// buildMessage wraps the receipt in a BetPlacedEvent
func (p *KafkaPublisher) buildMessage(receipt models.DecimalPlacedBet, sent models.FractionalOdds) (kafka.Message, error) {
	event := models.BetPlacedEvent{
		ID:             uuid.New(),
		BetID:          receipt.BetID,
		TransactionID:  receipt.TransactionID,
		Event:          receipt.Event,
		Name:           receipt.Name,
		Odds:           receipt.Odds,
		FractionalOdds: sent,
		Stake:          receipt.Stake,
		PlacedAt:       p.now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(receipt.BetID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("bet_placed")},
		},
	}, nil
}

// Close flushes pending messages and closes the Kafka writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
