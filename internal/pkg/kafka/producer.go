package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"quickhaul/internal/pkg/config"
	"quickhaul/pkg/logger"
)

const producerRetryMax = 5

// NewSyncProducer ждёт подтверждения от всех реплик, ключ сообщения
// определяет партицию.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = producerRetryMax
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	brokers := ParseBrokers(cfg.Brokers)

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer created")
	return producer, nil
}
