package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/restomenu/menu_service/internal/domain/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Insert writes one entity-change event. It is called with the transaction
// of the mutation it describes, so the event and the mutation commit or roll
// back together.
func Insert(ctx context.Context, db execer, eventType models.EventType, payload any) error {
	const op = "repository.outbox.Insert"

	eventUUID, err := uuid.NewUUID()
	if err != nil {
		return fmt.Errorf("%s: event_uuid generate error: %w", op, err)
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal payload: %w", op, err)
	}

	const query = `INSERT INTO "outbox" (event_uuid, event_type, payload) VALUES ($1, $2, $3)`

	if _, err = db.ExecContext(ctx, query, eventUUID, string(eventType), bytes); err != nil {
		return fmt.Errorf("%s: outbox insert error: %w", op, err)
	}

	return nil
}
