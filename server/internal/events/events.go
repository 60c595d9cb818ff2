package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/Astemirdum/shareit/server/internal/model"
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewPublisher(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// Publish sends the event keyed by booking id so events of one booking keep their order.
func (p *Publisher) Publish(_ context.Context, event model.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.BookingID, 10)),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(event.Type)},
		},
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return errors.Wrapf(err, "send %s", event.Type)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Noop drops events when Kafka is disabled.
type Noop struct{}

func (Noop) Publish(context.Context, model.BookingEvent) error { return nil }
func (Noop) Close() error                                     { return nil }
