package producer

import (
	"fmt"

	"github.com/IBM/sarama"
)

// NewSyncProducer builds a producer that waits for full ISR acknowledgement.
func NewSyncProducer(brokerList []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	syncProducer, err := sarama.NewSyncProducer(brokerList, cfg)
	if err != nil {
		return nil, fmt.Errorf("start sarama producer: %w", err)
	}

	return syncProducer, nil
}
