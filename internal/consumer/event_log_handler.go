package consumer

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgconn"

	"example.com/healthrecords/internal/events"
	"example.com/healthrecords/internal/records"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EventLogHandler appends consumed record events to the record_events table.
// Redelivered offsets are ignored.
type EventLogHandler struct {
	db execer
}

// NewEventLogHandler constructs a handler backed by db, typically a *pgxpool.Pool.
func NewEventLogHandler(db execer) *EventLogHandler {
	return &EventLogHandler{db: db}
}

// Handle validates the event body and stores it.
func (h *EventLogHandler) Handle(ctx context.Context, msg Message) error {
	switch msg.EventType {
	case events.TypeRecordInserted, events.TypeRecordReplaced:
	default:
		return fmt.Errorf("unsupported event type %q", msg.EventType)
	}

	var event events.RecordChanged
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("decode %s: %w", msg.EventType, err)
	}
	if _, err := records.ParseRecordType(event.RecordType); err != nil {
		return err
	}
	if event.RecordID == "" || event.TenantID == "" {
		return fmt.Errorf("%s: record_id and tenant_id are required", msg.EventType)
	}

	_, err := h.db.Exec(ctx,
		`INSERT INTO record_events (topic, kafka_partition, kafka_offset, event_type, record_id, tenant_id, record_type, client_record_version, start_time, end_time, payload)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
         ON CONFLICT (topic, kafka_partition, kafka_offset) DO NOTHING`,
		msg.Topic,
		msg.Partition,
		msg.Offset,
		msg.EventType,
		event.RecordID,
		event.TenantID,
		event.RecordType,
		event.ClientRecordVersion,
		event.StartTime,
		event.EndTime,
		[]byte(msg.Payload),
	)
	return err
}
