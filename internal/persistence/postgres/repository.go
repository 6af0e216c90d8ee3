package postgres

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/healthrecords/internal/domain"
	"example.com/healthrecords/internal/events"
	"example.com/healthrecords/internal/observability"
	"example.com/healthrecords/internal/records"
	"example.com/healthrecords/internal/wire"
)

const recordColumns = `record_id::text, tenant_id, record_type, package_name, client_record_id, client_record_version,
        start_time, end_time, body, internal, route, created_at, updated_at`

// Repository provides Postgres-backed persistence for health records and
// outbox events.
type Repository struct {
	pool       *pgxpool.Pool
	compressor *wire.Compressor
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool, compressor *wire.Compressor) *Repository {
	return &Repository{pool: pool, compressor: compressor}
}

// inTenant runs fn in a transaction scoped to tenantID by row level security.
func (r *Repository) inTenant(ctx context.Context, tenantID string, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT set_config('app.tenant_id', $1, true)", tenantID); err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// FindByClientID looks up the record stored under a client-assigned id.
func (r *Repository) FindByClientID(ctx context.Context, tenantID, packageName string, recordType records.RecordType, clientRecordID string) (*domain.StoredRecord, error) {
	if clientRecordID == "" {
		return nil, nil
	}
	query := `SELECT ` + recordColumns + `
        FROM health_records WHERE tenant_id=$1 AND package_name=$2 AND record_type=$3 AND client_record_id=$4`

	var found *domain.StoredRecord
	err := r.inTenant(ctx, tenantID, func(tx pgx.Tx) error {
		rec, err := r.scanRecord(tx.QueryRow(ctx, query, tenantID, packageName, recordType.String(), clientRecordID))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = &rec
		return nil
	})
	return found, err
}

// Create persists a new record and its outbox event inside a single transaction.
func (r *Repository) Create(ctx context.Context, rec domain.StoredRecord) error {
	row, err := r.encode(rec)
	if err != nil {
		return err
	}
	const stmt = `INSERT INTO health_records (record_id, tenant_id, record_type, package_name, client_record_id, client_record_version,
            start_time, end_time, body, internal, route, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`

	err = r.inTenant(ctx, rec.TenantID, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, stmt,
			rec.ID,
			rec.TenantID,
			rec.RecordType.String(),
			rec.PackageName,
			nullIfEmpty(rec.ClientRecordID),
			rec.ClientRecordVersion,
			rec.StartTime,
			rec.EndTime,
			row.body,
			row.internal,
			row.route,
			rec.CreatedAt,
			rec.UpdatedAt,
		); err != nil {
			return err
		}
		return r.insertOutbox(ctx, tx, rec, events.TypeRecordInserted)
	})
	if err != nil {
		return err
	}
	observability.RecordPersisted(rec.UpdatedAt)
	return nil
}

// Replace overwrites a stored record with a newer client version.
func (r *Repository) Replace(ctx context.Context, rec domain.StoredRecord) error {
	row, err := r.encode(rec)
	if err != nil {
		return err
	}
	// the version guard keeps a slower writer from overwriting a newer row
	const stmt = `UPDATE health_records
           SET client_record_version=$3, start_time=$4, end_time=$5, body=$6, internal=$7, route=$8, updated_at=$9
         WHERE tenant_id=$1 AND record_id=$2 AND client_record_version < $3`

	err = r.inTenant(ctx, rec.TenantID, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, stmt,
			rec.TenantID,
			rec.ID,
			rec.ClientRecordVersion,
			rec.StartTime,
			rec.EndTime,
			row.body,
			row.internal,
			row.route,
			rec.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("replace %s: %w", rec.ID, domain.ErrRecordNotFound)
		}
		return r.insertOutbox(ctx, tx, rec, events.TypeRecordReplaced)
	})
	if err != nil {
		return err
	}
	observability.RecordPersisted(rec.UpdatedAt)
	return nil
}

func (r *Repository) insertOutbox(ctx context.Context, tx pgx.Tx, rec domain.StoredRecord, eventType string) error {
	meta, ok := eventCatalog[eventType]
	if !ok {
		return fmt.Errorf("unknown event type: %s", eventType)
	}

	internal := rec.Internal
	internal.Route = nil
	body, err := json.Marshal(events.RecordChanged{
		RecordID:            rec.ID,
		TenantID:            rec.TenantID,
		RecordType:          rec.RecordType.String(),
		PackageName:         rec.PackageName,
		ClientRecordID:      rec.ClientRecordID,
		ClientRecordVersion: rec.ClientRecordVersion,
		StartTime:           rec.StartTime,
		EndTime:             rec.EndTime,
		OccurredAt:          rec.UpdatedAt,
		Internal:            internal,
	})
	if err != nil {
		return err
	}

	dedupeKey := fmt.Sprintf("%s:%s:%d", rec.ID, eventType, rec.ClientRecordVersion)
	const stmt = `INSERT INTO outbox (tenant_id, aggregate_type, aggregate_id, event_type, topic, schema_subject, partition_key, payload, dedupe_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	_, err = tx.Exec(ctx, stmt,
		rec.TenantID,
		"health_record",
		rec.ID,
		eventType,
		meta.Topic,
		meta.SchemaSubject,
		meta.PartitionKeyFn(rec),
		body,
		dedupeKey,
	)
	return err
}

// Get retrieves a record by ID.
func (r *Repository) Get(ctx context.Context, tenantID, recordID string) (*domain.StoredRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM health_records WHERE tenant_id=$1 AND record_id=$2`

	var found *domain.StoredRecord
	err := r.inTenant(ctx, tenantID, func(tx pgx.Tx) error {
		rec, err := r.scanRecord(tx.QueryRow(ctx, query, tenantID, recordID))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = &rec
		return nil
	})
	if found != nil {
		observability.RecordUncheckedBuilds(1)
	}
	return found, err
}

// ListByType returns records of one type, newest first.
func (r *Repository) ListByType(ctx context.Context, tenantID string, recordType records.RecordType, cursor *domain.Cursor, limit int) ([]domain.StoredRecord, *domain.Cursor, error) {
	args := []any{tenantID, recordType.String(), limit}
	query := `SELECT ` + recordColumns + ` FROM health_records WHERE tenant_id=$1 AND record_type=$2`
	if cursor != nil {
		query += ` AND (start_time, record_id) < ($4, $5::uuid)`
		args = append(args, cursor.StartTime, cursor.ID)
	}
	query += ` ORDER BY start_time DESC, record_id DESC LIMIT $3`

	results := make([]domain.StoredRecord, 0, limit)
	err := r.inTenant(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			rec, err := r.scanRecord(rows)
			if err != nil {
				return err
			}
			results = append(results, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, nil, err
	}
	observability.RecordUncheckedBuilds(len(results))

	var next *domain.Cursor
	if limit > 0 && len(results) == limit {
		last := results[len(results)-1]
		next = &domain.Cursor{StartTime: last.StartTime, ID: last.ID}
	}
	return results, next, nil
}

type encodedRow struct {
	body     []byte
	internal []byte
	route    []byte
}

func (r *Repository) encode(rec domain.StoredRecord) (encodedRow, error) {
	if rec.Record == nil {
		return encodedRow{}, domain.ErrNilRecord
	}
	body, err := rec.Record.MarshalJSON()
	if err != nil {
		return encodedRow{}, fmt.Errorf("encode record body: %w", err)
	}
	route, err := r.compressor.CompressRoute(rec.Internal.Route)
	if err != nil {
		return encodedRow{}, fmt.Errorf("encode route: %w", err)
	}
	internal := rec.Internal
	internal.Route = nil
	internalJSON, err := json.Marshal(internal)
	if err != nil {
		return encodedRow{}, fmt.Errorf("encode internal record: %w", err)
	}
	return encodedRow{body: body, internal: internalJSON, route: route}, nil
}

// scanRecord rebuilds a stored row. Records are rehydrated unchecked: they
// were validated on the way in and the clock has moved since.
func (r *Repository) scanRecord(row pgx.Row) (domain.StoredRecord, error) {
	var (
		rec            domain.StoredRecord
		recordType     string
		clientRecordID *string
		body, internal []byte
		route          []byte
	)
	if err := row.Scan(&rec.ID, &rec.TenantID, &recordType, &rec.PackageName, &clientRecordID, &rec.ClientRecordVersion,
		&rec.StartTime, &rec.EndTime, &body, &internal, &route, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return domain.StoredRecord{}, err
	}

	rt, err := records.ParseRecordType(recordType)
	if err != nil {
		return domain.StoredRecord{}, err
	}
	rec.RecordType = rt
	if clientRecordID != nil {
		rec.ClientRecordID = *clientRecordID
	}

	if rec.Record, err = records.DecodeUnchecked(body); err != nil {
		return domain.StoredRecord{}, fmt.Errorf("decode record %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal(internal, &rec.Internal); err != nil {
		return domain.StoredRecord{}, fmt.Errorf("decode internal record %s: %w", rec.ID, err)
	}
	if rec.Internal.Route, err = r.compressor.DecompressRoute(route); err != nil {
		return domain.StoredRecord{}, fmt.Errorf("decode route %s: %w", rec.ID, err)
	}
	rec.StartTime = rec.StartTime.UTC()
	rec.EndTime = rec.EndTime.UTC()
	return rec, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// EventMetadata describes how to route an outbox event.
type EventMetadata struct {
	Topic          string
	SchemaSubject  string
	PartitionKeyFn func(domain.StoredRecord) string
}

func recordPartitionKey(rec domain.StoredRecord) string {
	return fmt.Sprintf("%s:%s", rec.TenantID, rec.RecordType)
}

var eventCatalog = map[string]EventMetadata{
	events.TypeRecordInserted: {
		Topic:          "health_record_events",
		SchemaSubject:  "health_record_events-value",
		PartitionKeyFn: recordPartitionKey,
	},
	events.TypeRecordReplaced: {
		Topic:          "health_record_events",
		SchemaSubject:  "health_record_events-value",
		PartitionKeyFn: recordPartitionKey,
	},
}
