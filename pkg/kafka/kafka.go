package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Enabled bool     `yaml:"enabled" envconfig:"KAFKA_ENABLED" default:"false"`
	Addrs   []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Topic   string   `yaml:"topic" envconfig:"KAFKA_TOPIC" default:"shareit.bookings"`
}

// NewProducer returns a sync producer that waits for all in-sync replicas.
func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	return sarama.NewSyncProducer(cfg.Addrs, producerConfig())
}

func producerConfig() *sarama.Config {
	c := sarama.NewConfig()
	c.ClientID = "shareit-server"
	c.Producer.RequiredAcks = sarama.WaitForAll
	c.Producer.Return.Successes = true
	c.Producer.Retry.Max = 3
	c.Producer.Retry.Backoff = 200 * time.Millisecond
	c.Producer.Partitioner = sarama.NewHashPartitioner
	return c
}
