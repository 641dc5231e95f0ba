package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/restomenu/menu_service/internal/config"
	"github.com/restomenu/menu_service/internal/domain/models"
	"github.com/restomenu/menu_service/pkg/logger"
)

const messageSendLimit = 100

// Publisher drains the outbox table into the menu event topic. Rows are
// marked sent inside the same transaction before the broker send, so a
// database failure aborts the batch without duplicating deliveries.
type Publisher struct {
	log logger.Logger

	producer    sarama.SyncProducer
	db          *sqlx.DB
	kafkaConfig config.KafkaConfig
}

type eventEnvelope struct {
	EventUUID uuid.UUID        `db:"event_uuid" json:"event_uuid"`
	EventType models.EventType `db:"event_type" json:"event_type"`
	Payload   json.RawMessage  `db:"payload" json:"payload"`
}

func NewPublisher(
	log logger.Logger,
	producer sarama.SyncProducer,
	db *sqlx.DB,
	kafkaConfig config.KafkaConfig,
) *Publisher {
	return &Publisher{
		log:         log,
		producer:    producer,
		db:          db,
		kafkaConfig: kafkaConfig,
	}
}

func (p *Publisher) PublishPending(ctx context.Context) (err error) {
	const op = "outbox.PublishPending"

	tx, err := p.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	const selectQuery = `
		SELECT event_uuid, event_type, payload
			FROM "outbox"
			WHERE sent = FALSE
			ORDER BY id
			LIMIT $1
	`

	var envelopes []eventEnvelope
	if err = tx.SelectContext(ctx, &envelopes, selectQuery, messageSendLimit); err != nil {
		return fmt.Errorf("%s: query outbox: %w", op, err)
	}

	if len(envelopes) == 0 {
		return tx.Commit()
	}

	eventUUIDs := make([]uuid.UUID, 0, len(envelopes))
	saramaMessages := make([]*sarama.ProducerMessage, 0, len(envelopes))

	for _, envelope := range envelopes {
		bytes, marshalErr := json.Marshal(envelope)
		if marshalErr != nil {
			err = fmt.Errorf("%s: marshal event %s: %w", op, envelope.EventUUID, marshalErr)
			return err
		}

		saramaMessages = append(saramaMessages, &sarama.ProducerMessage{
			Topic: p.kafkaConfig.MenuEventTopic,
			Key:   sarama.StringEncoder(envelope.EventUUID.String()),
			Value: sarama.ByteEncoder(bytes),
		})

		eventUUIDs = append(eventUUIDs, envelope.EventUUID)
	}

	// Marking rows before the broker send keeps the failure mode on the
	// safe side: a dead database rolls the batch back unsent.
	const updateQuery = `UPDATE "outbox" SET sent = TRUE WHERE event_uuid = ANY($1)`

	if _, err = tx.ExecContext(ctx, updateQuery, pq.Array(eventUUIDs)); err != nil {
		return fmt.Errorf("%s: update outbox: %w", op, err)
	}

	if err = p.producer.SendMessages(saramaMessages); err != nil {
		return fmt.Errorf("%s: send messages: %w", op, err)
	}

	p.log.InfoContext(ctx, op, logger.Int("published", len(saramaMessages)))

	return tx.Commit()
}
