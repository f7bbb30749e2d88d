package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/config"
	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
	retrierconfig "github.com/ifybugsy/odiya-store-sub002/pkg/retrier"
	"github.com/ifybugsy/odiya-store-sub002/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// Producer publishes relayed event envelopes to the broker. Sends are
// synchronous with acks from all in-sync replicas, so a returned nil means the
// batch is durably accepted.
type Producer struct {
	log   logger.Logger
	conn  sarama.SyncProducer
	topic string
}

func NewSaramaConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := strings.Split(cfg.Brokers, ",")

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.EventsTopic),
	)

	client, err := connectWithRetry(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, err
	}

	conn, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		clientCloseErr := client.Close()
		if clientCloseErr != nil {
			return nil, fmt.Errorf("create producer: %w (failed to close: %w)", err, clientCloseErr)
		}
		return nil, fmt.Errorf("create producer: %w", err)
	}

	return &Producer{
		log:   kafkaLog,
		conn:  conn,
		topic: cfg.EventsTopic,
	}, nil
}

func (p *Producer) Push(messages [][]byte) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]*sarama.ProducerMessage, 0, len(messages))
	for _, message := range messages {
		batch = append(batch, &sarama.ProducerMessage{
			Topic: p.topic,
			Value: sarama.ByteEncoder(message),
		})
	}

	return p.conn.SendMessages(batch)
}

func (p *Producer) Close() error {
	return p.conn.Close()
}

func connectWithRetry(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) (sarama.Client, error) {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // retry all errors
	}

	retrier := backoff_adapter.New(retryConfig)

	var client sarama.Client
	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Kafka connection")

		var err error
		client, err = sarama.NewClient(brokers, cfg)
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return client, nil
}
