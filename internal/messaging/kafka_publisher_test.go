package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/odds-translation-proxy/internal/models"
)

func newTestPublisher(brokers ...string) *KafkaPublisher {
	return NewKafkaPublisher(KafkaPublisherConfig{
		Brokers: brokers,
		Topic:   "bet_receipts",
	}, zerolog.Nop())
}

func testReceipt() models.DecimalPlacedBet {
	return models.DecimalPlacedBet{
		BetID:         42,
		Event:         "World Cup 2018",
		Name:          "England",
		Odds:          models.NewDecimalOdds(decimal.NewFromInt(11)),
		Stake:         10,
		TransactionID: 12345,
	}
}

// TestNewKafkaPublisher tests publisher creation
func TestNewKafkaPublisher(t *testing.T) {
	publisher := newTestPublisher("localhost:9092")
	defer publisher.Close()

	assert.NotNil(t, publisher.writer)
	assert.Equal(t, "bet_receipts", publisher.writer.Topic)
	assert.Equal(t, "localhost:9092", publisher.writer.Addr.String())
}

// TestKafkaPublisherConfig tests different broker configurations
func TestKafkaPublisherConfig(t *testing.T) {
	tests := []struct {
		name    string
		brokers []string
	}{
		{name: "Single broker", brokers: []string{"localhost:9092"}},
		{name: "Multiple brokers", brokers: []string{"broker1:9092", "broker2:9092", "broker3:9092"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := newTestPublisher(tt.brokers...)

			assert.NotNil(t, publisher.writer.Addr)
			assert.Equal(t, "bet_receipts", publisher.writer.Topic)

			assert.NoError(t, publisher.Close())
		})
	}
}

// TestBuildMessage tests the published event shape
func TestBuildMessage(t *testing.T) {
	publisher := newTestPublisher("localhost:9092")
	defer publisher.Close()

	placedAt := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	publisher.now = func() time.Time { return placedAt }

	msg, err := publisher.buildMessage(testReceipt(), models.FractionalOdds{Numerator: 10, Denominator: 1})
	require.NoError(t, err)

	assert.Equal(t, "42", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "bet_placed", string(msg.Headers[0].Value))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &raw))
	assert.Equal(t, 11.0, raw["odds"])
	assert.Equal(t, 12345.0, raw["transaction_id"])
	assert.Equal(t, "2026-10-17T12:00:00Z", raw["placed_at"])

	var event models.BetPlacedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, int64(42), event.BetID)
	assert.Equal(t, "England", event.Name)
	assert.Equal(t, models.FractionalOdds{Numerator: 10, Denominator: 1}, event.FractionalOdds)
	assert.True(t, decimal.NewFromInt(11).Equal(event.Odds.Decimal))
}

// TestBuildMessage_UniqueIDs tests that every event gets its own id
func TestBuildMessage_UniqueIDs(t *testing.T) {
	publisher := newTestPublisher("localhost:9092")
	defer publisher.Close()

	first, err := publisher.buildMessage(testReceipt(), models.FractionalOdds{Numerator: 10, Denominator: 1})
	require.NoError(t, err)
	second, err := publisher.buildMessage(testReceipt(), models.FractionalOdds{Numerator: 10, Denominator: 1})
	require.NoError(t, err)

	var a, b models.BetPlacedEvent
	require.NoError(t, json.Unmarshal(first.Value, &a))
	require.NoError(t, json.Unmarshal(second.Value, &b))
	assert.NotEqual(t, a.ID, b.ID)
}

// TestPublishReceipt_ContextCanceled tests publishing with a canceled context
func TestPublishReceipt_ContextCanceled(t *testing.T) {
	publisher := newTestPublisher("localhost:9092")
	defer publisher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.PublishReceipt(ctx, testReceipt(), models.FractionalOdds{Numerator: 10, Denominator: 1})

	assert.Error(t, err)
}

// TestKafkaPublisher_Close tests publisher closing
func TestKafkaPublisher_Close(t *testing.T) {
	publisher := newTestPublisher("localhost:9092")

	assert.NoError(t, publisher.Close())
}
