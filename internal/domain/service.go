// Package domain defines the ingestion workflow for validated health records.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"example.com/healthrecords/internal/records"
)

var (
	// ErrRecordNotFound is returned when a record cannot be located.
	ErrRecordNotFound = errors.New("record not found")
	// ErrNilRecord is returned when Insert is called without a record.
	ErrNilRecord = errors.New("record is required")
)

// RecordRepository captures persistence operations.
type RecordRepository interface {
	FindByClientID(ctx context.Context, tenantID, packageName string, recordType records.RecordType, clientRecordID string) (*StoredRecord, error)
	Create(ctx context.Context, rec StoredRecord) error
	Replace(ctx context.Context, rec StoredRecord) error
	Get(ctx context.Context, tenantID, recordID string) (*StoredRecord, error)
	ListByType(ctx context.Context, tenantID string, recordType records.RecordType, cursor *Cursor, limit int) ([]StoredRecord, *Cursor, error)
}

// Service orchestrates record workflows.
type Service struct {
	repo  RecordRepository
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the record id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService constructs a Service.
func NewService(repo RecordRepository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert stores rec for tenantID. Records that carry a client record id are
// upserted on (tenant, package, type, client id): when the stored version is
// at least the incoming one the stored row is returned with replay=true,
// otherwise the stored row is replaced and keeps its id.
func (s *Service) Insert(ctx context.Context, tenantID string, rec records.Record) (*StoredRecord, bool, error) {
	if rec == nil {
		return nil, false, ErrNilRecord
	}
	meta := rec.Metadata()
	packageName := meta.DataOrigin().PackageName
	clientID, hasClientID := meta.ClientRecordID()

	var existing *StoredRecord
	if hasClientID {
		found, err := s.repo.FindByClientID(ctx, tenantID, packageName, rec.RecordType(), clientID)
		if err != nil {
			return nil, false, err
		}
		if found != nil && found.ClientRecordVersion >= meta.ClientRecordVersion() {
			return found, true, nil
		}
		existing = found
	}

	now := s.now().UTC()
	stored := StoredRecord{
		ID:                  s.newID(),
		TenantID:            tenantID,
		RecordType:          rec.RecordType(),
		PackageName:         packageName,
		ClientRecordID:      clientID,
		ClientRecordVersion: meta.ClientRecordVersion(),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if existing != nil {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	}
	stored.Record = records.Stamp(rec, stored.ID, now)
	stored.Internal = stored.Record.ToInternal()
	start, end := recordSpan(rec)
	stored.StartTime, stored.EndTime = start.UTC(), end.UTC()

	if existing != nil {
		if err := s.repo.Replace(ctx, stored); err != nil {
			return nil, false, err
		}
		return &stored, false, nil
	}
	if err := s.repo.Create(ctx, stored); err != nil {
		return nil, false, err
	}
	return &stored, false, nil
}

// Get fetches by ID.
func (s *Service) Get(ctx context.Context, tenantID, recordID string) (*StoredRecord, error) {
	rec, err := s.repo.Get(ctx, tenantID, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	return rec, nil
}

// ListByType fetches records of one type with cursor pagination.
func (s *Service) ListByType(ctx context.Context, tenantID string, recordType records.RecordType, cursor *Cursor, limit int) ([]StoredRecord, *Cursor, error) {
	return s.repo.ListByType(ctx, tenantID, recordType, cursor, limit)
}
