package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/shareit/server/internal/model"
)

func TestPublisher_Publish(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true

	event := model.BookingEvent{
		EventID:   "e1",
		Type:      model.EventBookingApproved,
		BookingID: 7,
		ItemID:    10,
		BookerID:  2,
		OwnerID:   1,
		Status:    model.StatusApproved,
		Timestamp: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("ok", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, cfg)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			if msg.Topic != "shareit.bookings" {
				return errors.Errorf("unexpected topic %s", msg.Topic)
			}
			key, _ := msg.Key.Encode()
			if string(key) != "7" {
				return errors.Errorf("unexpected key %s", key)
			}
			value, _ := msg.Value.Encode()
			var got model.BookingEvent
			if err := json.Unmarshal(value, &got); err != nil {
				return err
			}
			if !got.Timestamp.Equal(event.Timestamp) {
				return errors.Errorf("unexpected timestamp %s", got.Timestamp)
			}
			got.Timestamp = event.Timestamp
			if got != event {
				return errors.Errorf("unexpected event %+v", got)
			}
			return nil
		})

		p := NewPublisher(producer, "shareit.bookings")
		require.NoError(t, p.Publish(context.Background(), event))
		require.NoError(t, p.Close())
	})

	t.Run("broker error", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, cfg)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		p := NewPublisher(producer, "shareit.bookings")
		err := p.Publish(context.Background(), event)
		require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		assert.Contains(t, err.Error(), "send booking_approved")
		require.NoError(t, p.Close())
	})
}

func TestNoop(t *testing.T) {
	require.NoError(t, Noop{}.Publish(context.Background(), model.BookingEvent{}))
	require.NoError(t, Noop{}.Close())
}
