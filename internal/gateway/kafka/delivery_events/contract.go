package delivery_events

import "github.com/IBM/sarama"

// producer - sarama.SyncProducer, в тестах mocks.SyncProducer.
type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
